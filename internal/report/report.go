// Package report defines the structured result model produced by a scan:
// findings, per-object reports, and the merged file-level report consumed
// by the presentation layer.
package report

import (
	"encoding/json"
	"fmt"
)

// Severity classifies a finding. Ordering matters: the file-level status is
// the maximum severity found anywhere in the report.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// String returns the canonical upper-case label used in rendered reports.
func (s Severity) String() string {
	switch s {
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// MarshalJSON emits the severity label rather than the numeric value so the
// serialized report is readable without this package.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts the labels produced by MarshalJSON.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	switch label {
	case "INFO":
		*s = Info
	case "WARNING":
		*s = Warning
	case "ERROR":
		*s = Error
	default:
		return fmt.Errorf("unknown severity %q", label)
	}
	return nil
}

// Section groups findings by the domain of the rule that produced them.
type Section string

const (
	SectionGeometry  Section = "Geometry"
	SectionTextures  Section = "Textures"
	SectionUVs       Section = "UVs"
	SectionModifiers Section = "Modifiers"
	SectionRigging   Section = "Rigging"

	// SectionFile holds findings that belong to the scan as a whole rather
	// than to any single object (empty scope, malformed objects, collection
	// structure notes).
	SectionFile Section = "File"
)

// Sections lists the per-object sections in evaluation order.
var Sections = []Section{
	SectionGeometry,
	SectionTextures,
	SectionUVs,
	SectionModifiers,
	SectionRigging,
}

// Finding is a single check result. Findings are append-only within one
// evaluation pass; their order is the order rules were registered.
type Finding struct {
	Section  Section  `json:"section"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`

	// Metric carries the raw measured value for checks that have one
	// (counts, ratios, resolutions). Nil when the check is purely boolean.
	Metric *float64 `json:"metric,omitempty"`
}

// NewFinding builds a finding without a metric value.
func NewFinding(section Section, severity Severity, message string) Finding {
	return Finding{Section: section, Severity: severity, Message: message}
}

// NewMetricFinding builds a finding carrying a measured value.
func NewMetricFinding(section Section, severity Severity, message string, metric float64) Finding {
	return Finding{Section: section, Severity: severity, Message: message, Metric: &metric}
}

// Metrics is the raw measurement snapshot captured for an evaluated object,
// kept alongside the findings so the presentation layer can show numbers
// without re-deriving them.
type Metrics struct {
	VertexCount      int `json:"vertex_count"`
	FaceCount        int `json:"face_count"`
	EdgeCount        int `json:"edge_count"`
	NGonCount        int `json:"ngon_count"`
	NonManifoldEdges int `json:"non_manifold_edges"`
	StrayVertices    int `json:"stray_vertices"`
	DoubleVertices   int `json:"double_vertices"`

	UVIslandCount  int     `json:"uv_island_count"`
	UVUtilization  float64 `json:"uv_utilization"`
	DensityRatio   float64 `json:"density_ratio"`
	DensityAverage float64 `json:"density_average"`
	DensityStdDev  float64 `json:"density_std_dev"`

	TextureCount int `json:"texture_count"`
	BoneCount    int `json:"bone_count"`
}

// ObjectReport owns the ordered findings plus the metrics snapshot for one
// evaluated object. It is created once per object and never mutated after
// the evaluator returns it.
type ObjectReport struct {
	Name     string    `json:"name"`
	Excluded bool      `json:"excluded,omitempty"`
	Findings []Finding `json:"findings"`
	Metrics  Metrics   `json:"metrics"`
}

// Status returns the maximum severity among the object's findings.
func (r *ObjectReport) Status() Severity {
	return MaxSeverity(r.Findings)
}

// SectionFindings returns the object's findings for one section, in
// registration order.
func (r *ObjectReport) SectionFindings(section Section) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Section == section {
			out = append(out, f)
		}
	}
	return out
}

// Count returns the number of findings at the given severity.
func (r *ObjectReport) Count(severity Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == severity {
			n++
		}
	}
	return n
}

// FileReport merges per-object results across one scan scope. Objects appear
// in traversal order; the report carries no timestamps so scanning an
// unchanged scene twice yields byte-identical output.
type FileReport struct {
	Scope string `json:"scope"`

	// Findings are file-level findings: empty scan scope, malformed
	// objects, and collection structure notes.
	Findings []Finding `json:"findings,omitempty"`

	Objects []ObjectReport `json:"objects"`

	// Status is the maximum severity across all contained findings.
	Status Severity `json:"status"`
}

// Recompute derives Status from the contained findings. The aggregator calls
// this once before returning; the result is then immutable.
func (r *FileReport) Recompute() {
	status := MaxSeverity(r.Findings)
	for i := range r.Objects {
		if s := r.Objects[i].Status(); s > status {
			status = s
		}
	}
	r.Status = status
}

// TotalCount returns the number of findings at the given severity across the
// whole report, file-level findings included.
func (r *FileReport) TotalCount(severity Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == severity {
			n++
		}
	}
	for i := range r.Objects {
		n += r.Objects[i].Count(severity)
	}
	return n
}

// MaxSeverity returns the highest severity among the findings, or Info for
// an empty slice.
func MaxSeverity(findings []Finding) Severity {
	max := Info
	for _, f := range findings {
		if f.Severity > max {
			max = f.Severity
		}
	}
	return max
}
