package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// High-poly naming markers. Objects carrying either marker are flagged once
// at load; the engine treats the flag as immutable afterwards.
const (
	// HighPolySuffix marks sculpt/bake source objects by name.
	HighPolySuffix = "_high"

	// HighPolyCollection is the collection name (case-insensitive) whose
	// members are treated as high-poly.
	HighPolyCollection = "high poly"
)

// Load reads a scene description from a JSON file.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scene file: %w", err)
	}
	defer func() { _ = f.Close() }()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing scene file %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene description and applies high-poly flagging.
func Parse(r io.Reader) (*Scene, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var s Scene
	if err := dec.Decode(&s); err != nil {
		return nil, err
	}

	FlagHighPoly(&s)
	return &s, nil
}

// FlagHighPoly sets IsHighPoly on every object whose name ends in the
// high-poly suffix or that belongs to a high-poly-named collection.
// Explicit adapter-set flags are preserved.
func FlagHighPoly(s *Scene) {
	for i := range s.Objects {
		obj := &s.Objects[i]
		if obj.IsHighPoly {
			continue
		}
		if strings.HasSuffix(strings.ToLower(obj.Name), HighPolySuffix) {
			obj.IsHighPoly = true
			continue
		}
		for _, col := range obj.Collections {
			if strings.ToLower(col) == HighPolyCollection {
				obj.IsHighPoly = true
				break
			}
		}
	}
}
