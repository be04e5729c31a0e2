package checks

import (
	"fmt"
	"strings"

	"github.com/autotroph/gamecheck/internal/config"
	"github.com/autotroph/gamecheck/internal/report"
	"github.com/autotroph/gamecheck/internal/scene"
)

// checkCounts records the raw mesh counts as informational findings so the
// report shows the numbers without a separate metrics view.
func checkCounts(obj *scene.Object, _ *config.Config) []report.Finding {
	g := obj.Geometry
	return []report.Finding{
		report.NewMetricFinding(report.SectionGeometry, report.Info,
			fmt.Sprintf("Vertex count: %d", g.VertexCount), float64(g.VertexCount)),
		report.NewMetricFinding(report.SectionGeometry, report.Info,
			fmt.Sprintf("Face count: %d", g.FaceCount), float64(g.FaceCount)),
		report.NewMetricFinding(report.SectionGeometry, report.Info,
			fmt.Sprintf("Edge count: %d", g.EdgeCount), float64(g.EdgeCount)),
	}
}

// checkTopology flags hard geometry defects. Non-manifold edges, stray and
// double vertices are always errors; a small n-gon count is downgraded to a
// warning on hero assets, where cosmetic-only strictness is relaxed.
func checkTopology(obj *scene.Object, cfg *config.Config) []report.Finding {
	g := obj.Geometry
	var findings []report.Finding

	if g.NGonCount > 0 {
		severity := report.Error
		if cfg.HeroAsset && g.NGonCount <= cfg.Thresholds.HeroNGonAllowance {
			severity = report.Warning
		}
		findings = append(findings, report.NewMetricFinding(report.SectionGeometry, severity,
			fmt.Sprintf("N-gons: %d faces with more than four sides", g.NGonCount), float64(g.NGonCount)))
	}

	if g.NonManifoldEdges > 0 {
		findings = append(findings, report.NewMetricFinding(report.SectionGeometry, report.Error,
			fmt.Sprintf("Non-manifold edges: %d", g.NonManifoldEdges), float64(g.NonManifoldEdges)))
	}

	if g.StrayVertices > 0 {
		findings = append(findings, report.NewMetricFinding(report.SectionGeometry, report.Error,
			fmt.Sprintf("Stray vertices: %d", g.StrayVertices), float64(g.StrayVertices)))
	}

	if g.DoubleVertices > 0 {
		findings = append(findings, report.NewMetricFinding(report.SectionGeometry, report.Error,
			fmt.Sprintf("Double vertices: %d", g.DoubleVertices), float64(g.DoubleVertices)))
	}

	return findings
}

// checkTransforms warns on unapplied transforms. In asset-collection mode
// the location check is skipped: modular assets may legitimately sit away
// from the origin.
func checkTransforms(obj *scene.Object, cfg *config.Config) []report.Finding {
	g := obj.Geometry

	var unapplied []string
	if !g.ScaleApplied {
		unapplied = append(unapplied, "scale")
	}
	if !g.RotationApplied {
		unapplied = append(unapplied, "rotation")
	}
	if !g.LocationApplied && !cfg.AssetCollectionMode {
		unapplied = append(unapplied, "location")
	}

	if len(unapplied) == 0 {
		return []report.Finding{report.NewFinding(report.SectionGeometry, report.Info,
			"Transforms applied")}
	}

	return []report.Finding{report.NewFinding(report.SectionGeometry, report.Warning,
		"Unapplied transforms: "+strings.Join(unapplied, ", "))}
}

// checkNormals flags inward-facing geometry.
func checkNormals(obj *scene.Object, _ *config.Config) []report.Finding {
	if !obj.Geometry.FlippedNormals {
		return nil
	}
	return []report.Finding{report.NewFinding(report.SectionGeometry, report.Error,
		"Flipped normals detected")}
}
