package postgres

// Queries
const (
	queryLoadSave = `SELECT data FROM garden_saves WHERE profile_id = $1`

	queryUpsertSave = `
INSERT INTO garden_saves (profile_id, data, schema_version, updated_at)
VALUES ($1, $2, $3, NOW())
ON CONFLICT (profile_id) DO UPDATE
SET data = EXCLUDED.data,
    schema_version = EXCLUDED.schema_version,
    updated_at = NOW()`

	queryDeleteSave = `DELETE FROM garden_saves WHERE profile_id = $1`

	queryListSaves = `SELECT profile_id FROM garden_saves ORDER BY profile_id`
)
