package store

const journalSQL = `
CREATE TABLE IF NOT EXISTS meals (
    id           TEXT PRIMARY KEY,
    logged_at    TEXT NOT NULL,
    description  TEXT NOT NULL,
    calories     REAL NOT NULL,
    source       TEXT NOT NULL DEFAULT 'manual'
);

CREATE INDEX IF NOT EXISTS idx_meals_logged_at ON meals(logged_at);
`
