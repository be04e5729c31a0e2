package store

import (
	"time"

	"github.com/autotroph/gamecheck/internal/report"
)

// SaveScan persists a file report and its per-object rows, returning the
// new scan ID. The timestamp is applied here; the report itself carries
// none so identical scans stay byte-identical.
func (db *DB) SaveScan(r *report.FileReport, sceneFile, version string) (int64, error) {
	result, err := db.conn.Exec(
		`INSERT INTO scans
		(taken_at, scene_file, scope, status, object_count, error_count, warn_count, info_count, version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), sceneFile, r.Scope, r.Status.String(),
		len(r.Objects), r.TotalCount(report.Error), r.TotalCount(report.Warning),
		r.TotalCount(report.Info), version,
	)
	if err != nil {
		return 0, err
	}

	scanID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	for i := range r.Objects {
		obj := &r.Objects[i]
		if _, err := db.conn.Exec(
			`INSERT INTO scan_objects
			(scan_id, object_name, status, error_count, warn_count, excluded)
			VALUES (?, ?, ?, ?, ?, ?)`,
			scanID, obj.Name, obj.Status().String(),
			obj.Count(report.Error), obj.Count(report.Warning), obj.Excluded,
		); err != nil {
			return 0, err
		}
	}

	return scanID, nil
}

// ListScans returns the most recent scans, newest first.
func (db *DB) ListScans(limit int) ([]Scan, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.conn.Query(
		`SELECT id, taken_at, scene_file, scope, status, object_count,
		        error_count, warn_count, info_count, version
		 FROM scans ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var scans []Scan
	for rows.Next() {
		var s Scan
		var takenAt string
		if err := rows.Scan(&s.ID, &takenAt, &s.SceneFile, &s.Scope, &s.Status,
			&s.ObjectCount, &s.ErrorCount, &s.WarnCount, &s.InfoCount, &s.Version); err != nil {
			return nil, err
		}
		s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		scans = append(scans, s)
	}
	return scans, rows.Err()
}

// ScanObjects returns the per-object rows for one scan in insertion order.
func (db *DB) ScanObjects(scanID int64) ([]ScanObject, error) {
	rows, err := db.conn.Query(
		`SELECT id, scan_id, object_name, status, error_count, warn_count, excluded
		 FROM scan_objects WHERE scan_id = ? ORDER BY id`, scanID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var objects []ScanObject
	for rows.Next() {
		var o ScanObject
		if err := rows.Scan(&o.ID, &o.ScanID, &o.ObjectName, &o.Status,
			&o.ErrorCount, &o.WarnCount, &o.Excluded); err != nil {
			return nil, err
		}
		objects = append(objects, o)
	}
	return objects, rows.Err()
}
