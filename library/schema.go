package library

// Schema holds the product index tables.
const Schema = `
CREATE TABLE IF NOT EXISTS products (
    path            TEXT PRIMARY KEY,
    content_hash    TEXT NOT NULL,
    gldf_id         TEXT NOT NULL DEFAULT '',
    manufacturer    TEXT NOT NULL DEFAULT '',
    name            TEXT NOT NULL DEFAULT '',
    product_number  TEXT NOT NULL DEFAULT '',
    author          TEXT NOT NULL DEFAULT '',
    variant_count   INTEGER NOT NULL DEFAULT 0,
    error_count     INTEGER NOT NULL DEFAULT 0,
    file_count      INTEGER NOT NULL DEFAULT 0,
    size_bytes      INTEGER NOT NULL DEFAULT 0,
    indexed_at      INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_products_manufacturer ON products(manufacturer);
CREATE INDEX IF NOT EXISTS idx_products_name ON products(name);
`
