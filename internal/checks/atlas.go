package checks

import (
	"fmt"

	"github.com/autotroph/gamecheck/internal/report"
	"github.com/autotroph/gamecheck/internal/scene"
)

// Atlas signal cutoffs. These define the heuristic itself rather than a
// tunable policy, so they are fixed here and not part of the configuration.
const (
	// atlasUtilizationMax: atlas layouts pack many islands into a tiny
	// corner of UV space.
	atlasUtilizationMax = 10.0

	// atlasDensityRatioMax: shared flat-color texels mean almost no UV
	// area per unit of surface.
	atlasDensityRatioMax = 0.1

	// atlasIslandMax: stacked atlas islands collapse into few distinct
	// regions.
	atlasIslandMax = 10

	// atlasScoreThreshold is the minimum score for a likely-atlas verdict.
	atlasScoreThreshold = 5
)

// AtlasSignals is the 6-bit signal vector behind the color-atlas verdict.
type AtlasSignals struct {
	LowUtilization  bool `json:"low_utilization"`
	LowDensityRatio bool `json:"low_density_ratio"`
	FewIslands      bool `json:"few_islands"`
	NoMarkedSeams   bool `json:"no_marked_seams"`
	NoNormalMap     bool `json:"no_normal_map"`
	NoRoughnessMap  bool `json:"no_roughness_map"`
}

// AtlasScore is the combined confidence that an object uses color-atlas
// texturing. It is always recomputed from the object's UV and texture
// metrics, never stored.
type AtlasScore struct {
	Signals AtlasSignals `json:"signals"`

	// Score counts the true signals (0-6).
	Score int `json:"score"`

	// IsLikelyAtlas is set when the score reaches the threshold.
	IsLikelyAtlas bool `json:"is_likely_atlas"`
}

// ComputeAtlasScore evaluates the six atlas signals for an object. The
// function is pure and idempotent: identical metrics always yield the same
// score. An object without UV data cannot be an atlas and scores zero.
func ComputeAtlasScore(obj *scene.Object) AtlasScore {
	if obj.UV == nil || !obj.UV.HasUV {
		return AtlasScore{}
	}

	found := FoundMapTypes(obj)
	signals := AtlasSignals{
		LowUtilization:  obj.UV.Utilization < atlasUtilizationMax,
		LowDensityRatio: obj.UV.DensityRatio < atlasDensityRatioMax,
		FewIslands:      obj.UV.IslandCount < atlasIslandMax,
		NoMarkedSeams:   !obj.UV.SeamsMarked,
		NoNormalMap:     !found["Normal"],
		NoRoughnessMap:  !found["Roughness"],
	}

	score := 0
	for _, on := range []bool{
		signals.LowUtilization,
		signals.LowDensityRatio,
		signals.FewIslands,
		signals.NoMarkedSeams,
		signals.NoNormalMap,
		signals.NoRoughnessMap,
	} {
		if on {
			score++
		}
	}

	return AtlasScore{
		Signals:       signals,
		Score:         score,
		IsLikelyAtlas: score >= atlasScoreThreshold,
	}
}

// AtlasFinding converts a likely-atlas score into the single informational
// finding appended after all rules. Color-atlas texturing is a valid,
// intentional workflow, so the verdict is never more than INFO; a score
// below the threshold produces no finding at all.
func AtlasFinding(score AtlasScore) (report.Finding, bool) {
	if !score.IsLikelyAtlas {
		return report.Finding{}, false
	}
	return report.NewMetricFinding(report.SectionUVs, report.Info,
		fmt.Sprintf("Color-atlas texturing detected (%d/6 signals)", score.Score),
		float64(score.Score)), true
}
