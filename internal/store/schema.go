package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    key      TEXT PRIMARY KEY,
    payload  BLOB NOT NULL,
    saved_at TEXT NOT NULL
);
`
