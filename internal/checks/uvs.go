package checks

import (
	"fmt"

	"github.com/autotroph/gamecheck/internal/config"
	"github.com/autotroph/gamecheck/internal/report"
	"github.com/autotroph/gamecheck/internal/scene"
)

// checkUVPresence is the gatekeeper for the UV section: a mesh without a UV
// map cannot be textured at all.
func checkUVPresence(obj *scene.Object, _ *config.Config) []report.Finding {
	if obj.UV == nil || !obj.UV.HasUV {
		return []report.Finding{report.NewFinding(report.SectionUVs, report.Error,
			"Missing UV map")}
	}
	return nil
}

// checkSeams flags unwraps that carry no marked seams. These are usually
// auto-generated default UVs rather than deliberate layouts; final judgment
// on intentional atlas layouts is deferred to the atlas heuristic.
func checkSeams(obj *scene.Object, _ *config.Config) []report.Finding {
	if obj.UV.SeamsMarked {
		return nil
	}
	return []report.Finding{report.NewFinding(report.SectionUVs, report.Warning,
		"No marked seams: likely default UVs")}
}

// checkIslands examines the island count. A single island is fine on a
// simple mesh; on anything bigger it signals either an atlas layout or a
// poor unwrap, so it is flagged and left to the atlas heuristic to resolve.
func checkIslands(obj *scene.Object, cfg *config.Config) []report.Finding {
	uv := obj.UV
	if uv.IslandCount != 1 {
		return nil
	}

	if obj.Geometry.FaceCount < cfg.Thresholds.SimpleMeshFaceLimit {
		return []report.Finding{report.NewMetricFinding(report.SectionUVs, report.Info,
			"Single UV island on a simple mesh", 1)}
	}
	return []report.Finding{report.NewMetricFinding(report.SectionUVs, report.Warning,
		fmt.Sprintf("Single UV island on a %d-face mesh: possible atlas or poor unwrap", obj.Geometry.FaceCount), 1)}
}

// checkTexelDensity validates the density ratio band and the per-island
// consistency. Inconsistent density across islands makes texture budgets
// unpredictable.
func checkTexelDensity(obj *scene.Object, cfg *config.Config) []report.Finding {
	uv := obj.UV
	t := cfg.Thresholds

	var findings []report.Finding

	inBand := uv.DensityRatio >= t.TexelDensityMin && uv.DensityRatio <= t.TexelDensityMax
	if cfg.AAACheck {
		inBand = uv.DensityRatio >= t.TexelDensityMinAAA
	}
	severity := report.Info
	if !inBand {
		severity = report.Warning
	}
	findings = append(findings, report.NewMetricFinding(report.SectionUVs, severity,
		fmt.Sprintf("Texel density ratio: %.2f px/cm", uv.DensityRatio), uv.DensityRatio))

	findings = append(findings, report.NewMetricFinding(report.SectionUVs, report.Info,
		fmt.Sprintf("Texel density average: %.2f", uv.DensityAverage), uv.DensityAverage))

	deviationSeverity := report.Info
	if uv.DensityStdDev > t.TexelDeviation*uv.DensityAverage {
		deviationSeverity = report.Warning
	}
	findings = append(findings, report.NewMetricFinding(report.SectionUVs, deviationSeverity,
		fmt.Sprintf("Texel density deviation: %.2f", uv.DensityStdDev), uv.DensityStdDev))

	return findings
}

// checkUVUtilization bands the 0-1 space coverage: at or above the pass
// mark is fine, within ten points is suboptimal, anything lower wastes
// texture memory outright.
func checkUVUtilization(obj *scene.Object, cfg *config.Config) []report.Finding {
	uv := obj.UV
	_, pass := cfg.Thresholds.UVTarget(cfg.AAACheck)

	switch {
	case uv.Utilization == 0:
		return []report.Finding{report.NewFinding(report.SectionUVs, report.Warning,
			"UV layer exists but contains no data")}
	case uv.Overflow:
		return []report.Finding{report.NewMetricFinding(report.SectionUVs, report.Warning,
			fmt.Sprintf("UV space utilization %.2f%% with coordinates outside 0-1 space", uv.Utilization), uv.Utilization)}
	case uv.Utilization >= pass:
		return []report.Finding{report.NewMetricFinding(report.SectionUVs, report.Info,
			fmt.Sprintf("UV space utilization %.2f%%", uv.Utilization), uv.Utilization)}
	case uv.Utilization >= pass-10:
		return []report.Finding{report.NewMetricFinding(report.SectionUVs, report.Warning,
			fmt.Sprintf("UV space utilization %.2f%% (suboptimal)", uv.Utilization), uv.Utilization)}
	default:
		return []report.Finding{report.NewMetricFinding(report.SectionUVs, report.Error,
			fmt.Sprintf("UV space utilization %.2f%% (too low)", uv.Utilization), uv.Utilization)}
	}
}
