package checks

import (
	"testing"

	"github.com/autotroph/gamecheck/internal/report"
	"github.com/autotroph/gamecheck/internal/scene"
)

// atlasObject triggers all six atlas signals: tiny utilization, near-zero
// density ratio, few islands, no seams, and no normal or roughness map.
func atlasObject() *scene.Object {
	return &scene.Object{
		Name:     "Kit",
		Geometry: cleanGeometry(),
		UV: &scene.UV{
			HasUV:        true,
			SeamsMarked:  false,
			IslandCount:  4,
			DensityRatio: 0.05,
			Utilization:  2.0,
		},
		Textures: []scene.Texture{{Name: "kit_c.png", Width: 256, Height: 256}},
	}
}

func TestComputeAtlasScoreAllSignals(t *testing.T) {
	score := ComputeAtlasScore(atlasObject())

	if score.Score != 6 {
		t.Fatalf("Score = %d, want 6: %+v", score.Score, score.Signals)
	}
	if !score.IsLikelyAtlas {
		t.Error("IsLikelyAtlas = false with all signals on")
	}
}

func TestComputeAtlasScoreNoUV(t *testing.T) {
	obj := &scene.Object{Name: "Crate", Geometry: cleanGeometry()}

	score := ComputeAtlasScore(obj)
	if score.Score != 0 || score.IsLikelyAtlas {
		t.Errorf("no-UV object scored %+v, want zero score", score)
	}
}

func TestComputeAtlasScoreThreshold(t *testing.T) {
	// Turning off two signals drops the score to 4, below the threshold.
	obj := atlasObject()
	obj.UV.SeamsMarked = true
	obj.Textures = append(obj.Textures, scene.Texture{Name: "kit_n.png", Width: 256, Height: 256})

	score := ComputeAtlasScore(obj)
	if score.Score != 4 {
		t.Fatalf("Score = %d, want 4: %+v", score.Score, score.Signals)
	}
	if score.IsLikelyAtlas {
		t.Error("IsLikelyAtlas = true below the threshold")
	}

	// One signal back on reaches the threshold exactly.
	obj.UV.SeamsMarked = false
	score = ComputeAtlasScore(obj)
	if score.Score != 5 || !score.IsLikelyAtlas {
		t.Errorf("Score = %d IsLikelyAtlas = %v, want 5/true", score.Score, score.IsLikelyAtlas)
	}
}

func TestComputeAtlasScoreIdempotent(t *testing.T) {
	obj := atlasObject()
	first := ComputeAtlasScore(obj)
	second := ComputeAtlasScore(obj)
	if first != second {
		t.Errorf("repeated scoring diverged: %+v vs %+v", first, second)
	}
}

func TestAtlasFinding(t *testing.T) {
	f, ok := AtlasFinding(ComputeAtlasScore(atlasObject()))
	if !ok {
		t.Fatal("expected a finding for a likely atlas")
	}
	if f.Severity != report.Info {
		t.Errorf("severity = %v, want Info", f.Severity)
	}
	if f.Section != report.SectionUVs {
		t.Errorf("section = %v, want UVs", f.Section)
	}
	if f.Metric == nil || *f.Metric != 6 {
		t.Errorf("metric = %v, want 6", f.Metric)
	}

	if _, ok := AtlasFinding(AtlasScore{Score: 4}); ok {
		t.Error("below-threshold score produced a finding")
	}
}
