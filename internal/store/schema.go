package store

// schemaVersionV1 is the only schema so far.
const schemaVersionV1 = 1

// currentSchemaVersion is the target schema version for this build.
const currentSchemaVersion = schemaVersionV1

// schemaV1 holds advisor results. seq keeps insertion order for history
// listings since created_at has second resolution.
var schemaV1 = `
CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL);

CREATE TABLE IF NOT EXISTS records (
	seq         INTEGER PRIMARY KEY AUTOINCREMENT,
	id          TEXT NOT NULL UNIQUE,
	kind        TEXT NOT NULL,
	plant_name  TEXT NOT NULL,
	plant_key   TEXT NOT NULL,
	query       TEXT,
	status      TEXT NOT NULL,
	payload     BLOB NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_records_plant_key ON records(plant_key);
`
