package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS accounts (
    position   INTEGER PRIMARY KEY,
    bank_name  TEXT NOT NULL,
    balance    TEXT NOT NULL,
    color      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
    name       TEXT PRIMARY KEY,
    color      TEXT NOT NULL,
    position   INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
    id         TEXT PRIMARY KEY,
    merchant   TEXT NOT NULL,
    category   TEXT NOT NULL,
    amount     TEXT NOT NULL,
    type       TEXT NOT NULL CHECK (type IN ('income', 'expense')),
    date       TEXT NOT NULL,
    position   INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS chart_points (
    day        INTEGER PRIMARY KEY,
    amount     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category);
`
