package sqlite

// Schema DDL. The store is a single key-value table; statements are
// idempotent because the database persists across attaches.
const (
	createStorage = `CREATE TABLE IF NOT EXISTS storage (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`
)

// schemaDDL lists all schema statements in order.
var schemaDDL = []string{
	createStorage,
}

// Queries against the storage table.
const (
	selectValue = `SELECT value FROM storage WHERE key = ?`
	selectAll   = `SELECT key, value FROM storage ORDER BY key`
	upsertValue = `INSERT INTO storage (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	deleteAll = `DELETE FROM storage`
)
