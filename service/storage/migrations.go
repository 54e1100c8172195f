package storage

const schemaV1 = `
CREATE TABLE IF NOT EXISTS settings (
    scope       TEXT NOT NULL,
    key         TEXT NOT NULL,
    value       TEXT NOT NULL,
    updated_at  TEXT NOT NULL,
    PRIMARY KEY (scope, key)
);

CREATE INDEX IF NOT EXISTS idx_settings_updated ON settings(updated_at DESC);
`
