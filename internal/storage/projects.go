package storage

import (
	"strings"
	"time"

	"depnav/internal/paths"
)

// ProjectRecord is one registered project.
type ProjectRecord struct {
	Key            string    `json:"key"`
	URI            string    `json:"uri"`
	RootPath       string    `json:"rootPath"`
	DescriptorPath string    `json:"descriptorPath"`
	RegisteredAt   time.Time `json:"registeredAt"`
}

// RegisterProject inserts or replaces a project registration. The record
// key is derived from the canonical root path, so re-registering the same
// root updates in place.
func (db *DB) RegisterProject(rootPath, descriptorPath string) (*ProjectRecord, error) {
	canonical := paths.Canonicalize(rootPath)
	rec := &ProjectRecord{
		Key:            paths.Key(canonical),
		URI:            "file://" + canonical,
		RootPath:       canonical,
		DescriptorPath: descriptorPath,
		RegisteredAt:   time.Now().UTC(),
	}
	_, err := db.conn.Exec(`
		INSERT INTO projects (key, uri, root_path, descriptor_path, registered_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			uri = excluded.uri,
			root_path = excluded.root_path,
			descriptor_path = excluded.descriptor_path,
			registered_at = excluded.registered_at
	`, rec.Key, rec.URI, rec.RootPath, rec.DescriptorPath, rec.RegisteredAt.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListProjects returns all registered projects ordered by root path.
func (db *DB) ListProjects() ([]ProjectRecord, error) {
	rows, err := db.conn.Query(`
		SELECT key, uri, root_path, descriptor_path, registered_at
		FROM projects ORDER BY root_path
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ProjectRecord
	for rows.Next() {
		var rec ProjectRecord
		var registeredAt string
		if err := rows.Scan(&rec.Key, &rec.URI, &rec.RootPath, &rec.DescriptorPath, &registeredAt); err != nil {
			return nil, err
		}
		if ts, err := time.Parse(time.RFC3339, registeredAt); err == nil {
			rec.RegisteredAt = ts
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// DescriptorFor resolves a project URI to its descriptor path by
// workspace-root containment: the registered project whose root contains
// the URI path wins, longest root first so nested projects shadow their
// parents. ok is false when no registered root contains the URI.
func (db *DB) DescriptorFor(uri string) (string, bool) {
	target := uriToPath(uri)
	if target == "" {
		return "", false
	}

	records, err := db.ListProjects()
	if err != nil {
		db.logger.Warn("Project registry lookup failed", map[string]any{
			"uri":   uri,
			"error": err.Error(),
		})
		return "", false
	}

	bestLen := -1
	best := ""
	for _, rec := range records {
		if paths.HasPathPrefix(target, rec.RootPath) && len(rec.RootPath) > bestLen {
			bestLen = len(rec.RootPath)
			best = rec.DescriptorPath
		}
	}
	return best, bestLen >= 0
}

// uriToPath strips the file scheme off a project URI. Bare paths are
// accepted as-is so CLI callers can pass either form.
func uriToPath(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		return paths.Normalize(strings.TrimPrefix(uri, "file://"))
	}
	if strings.HasPrefix(uri, "/") {
		return paths.Normalize(uri)
	}
	return ""
}
