// Package engine runs the rule catalog against scene objects and merges the
// results into a file-level report.
package engine

import (
	"errors"

	"github.com/autotroph/gamecheck/internal/checks"
	"github.com/autotroph/gamecheck/internal/config"
	"github.com/autotroph/gamecheck/internal/report"
	"github.com/autotroph/gamecheck/internal/scene"
)

// ErrMalformedObject marks a scene object that cannot be evaluated because
// its mandatory identity is absent. The aggregator converts it into a
// file-level finding; it never aborts a scan.
var ErrMalformedObject = errors.New("malformed scene object: missing name")

// EvaluateObject runs the applicable rule subset against one object and
// returns its report. Rules run in catalog order (Geometry → Textures →
// UVs → Modifiers → Rigging); the atlas heuristic is applied last. Missing
// optional data is handled by the rules themselves — only a missing name
// is an error.
func EvaluateObject(obj *scene.Object, cfg *config.Config) (report.ObjectReport, error) {
	if obj == nil || obj.Name == "" {
		return report.ObjectReport{}, ErrMalformedObject
	}

	rep := report.ObjectReport{
		Name:    obj.Name,
		Metrics: snapshotMetrics(obj),
	}

	if cfg.ExcludeHighPoly && obj.IsHighPoly {
		rep.Excluded = true
		rep.Findings = []report.Finding{report.NewFinding(report.SectionFile, report.Info,
			"Excluded from checks: high-poly object")}
		return rep, nil
	}

	for _, rule := range checks.Catalog() {
		if rule.Applies != nil && !rule.Applies(obj, cfg) {
			continue
		}
		rep.Findings = append(rep.Findings, rule.Check(obj, cfg)...)
	}

	if f, ok := checks.AtlasFinding(checks.ComputeAtlasScore(obj)); ok {
		rep.Findings = append(rep.Findings, f)
	}

	return rep, nil
}

// snapshotMetrics copies the raw measurements into the report so the
// presentation layer never needs the scene again.
func snapshotMetrics(obj *scene.Object) report.Metrics {
	var m report.Metrics
	if g := obj.Geometry; g != nil {
		m.VertexCount = g.VertexCount
		m.FaceCount = g.FaceCount
		m.EdgeCount = g.EdgeCount
		m.NGonCount = g.NGonCount
		m.NonManifoldEdges = g.NonManifoldEdges
		m.StrayVertices = g.StrayVertices
		m.DoubleVertices = g.DoubleVertices
	}
	if uv := obj.UV; uv != nil {
		m.UVIslandCount = uv.IslandCount
		m.UVUtilization = uv.Utilization
		m.DensityRatio = uv.DensityRatio
		m.DensityAverage = uv.DensityAverage
		m.DensityStdDev = uv.DensityStdDev
	}
	m.TextureCount = len(obj.Textures)
	if obj.Armature != nil {
		m.BoneCount = obj.Armature.BoneCount
	}
	return m
}
