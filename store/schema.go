package store

const Schema = `
CREATE TABLE IF NOT EXISTS transactions (
	id TEXT PRIMARY KEY,
	account_id TEXT NOT NULL,
	symbol TEXT NOT NULL,
	class TEXT NOT NULL,
	market TEXT NOT NULL,
	action TEXT NOT NULL,
	quantity REAL NOT NULL,
	price REAL NOT NULL,
	fee REAL NOT NULL,
	currency TEXT NOT NULL,
	leverage REAL NOT NULL,
	unit TEXT NOT NULL,
	timestamp DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_time ON transactions(timestamp);
CREATE INDEX IF NOT EXISTS idx_transactions_account ON transactions(account_id);
`
