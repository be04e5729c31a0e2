package store

import "time"

// Scan is one persisted scan verdict.
type Scan struct {
	ID          int64     `json:"id"`
	TakenAt     time.Time `json:"taken_at"`
	SceneFile   string    `json:"scene_file"`
	Scope       string    `json:"scope"`
	Status      string    `json:"status"`
	ObjectCount int       `json:"object_count"`
	ErrorCount  int       `json:"error_count"`
	WarnCount   int       `json:"warn_count"`
	InfoCount   int       `json:"info_count"`
	Version     string    `json:"version"`
}

// ScanObject is one per-object row belonging to a persisted scan.
type ScanObject struct {
	ID         int64  `json:"id"`
	ScanID     int64  `json:"scan_id"`
	ObjectName string `json:"object_name"`
	Status     string `json:"status"`
	ErrorCount int    `json:"error_count"`
	WarnCount  int    `json:"warn_count"`
	Excluded   bool   `json:"excluded"`
}
