package checks

import (
	"testing"

	"github.com/autotroph/gamecheck/internal/report"
	"github.com/autotroph/gamecheck/internal/scene"
)

func goodUV() *scene.UV {
	return &scene.UV{
		HasUV:          true,
		SeamsMarked:    true,
		IslandCount:    12,
		DensityRatio:   5.0,
		DensityAverage: 5.0,
		DensityStdDev:  0.2,
		Utilization:    82.5,
	}
}

func TestCheckUVPresence(t *testing.T) {
	obj := &scene.Object{Name: "Crate", Geometry: cleanGeometry()}

	findings := checkUVPresence(obj, testConfig())
	if len(findings) != 1 || findings[0].Severity != report.Error {
		t.Fatalf("nil UV = %v, want one Error", findings)
	}

	obj.UV = &scene.UV{HasUV: false}
	findings = checkUVPresence(obj, testConfig())
	if len(findings) != 1 || findings[0].Severity != report.Error {
		t.Fatalf("empty UV layer = %v, want one Error", findings)
	}

	obj.UV = goodUV()
	if findings = checkUVPresence(obj, testConfig()); len(findings) != 0 {
		t.Errorf("present UV produced findings: %v", findings)
	}
}

func TestCheckSeams(t *testing.T) {
	obj := &scene.Object{Name: "Crate", Geometry: cleanGeometry(), UV: goodUV()}

	if findings := checkSeams(obj, testConfig()); len(findings) != 0 {
		t.Errorf("marked seams produced findings: %v", findings)
	}

	obj.UV.SeamsMarked = false
	findings := checkSeams(obj, testConfig())
	if len(findings) != 1 || findings[0].Severity != report.Warning {
		t.Errorf("unmarked seams = %v, want one Warning", findings)
	}
}

func TestCheckIslands(t *testing.T) {
	tests := []struct {
		name      string
		islands   int
		faceCount int
		want      []report.Severity
	}{
		{"multiple islands", 12, 500, nil},
		{"single island simple mesh", 1, 99, []report.Severity{report.Info}},
		{"single island at the limit", 1, 100, []report.Severity{report.Warning}},
		{"single island complex mesh", 1, 5000, []report.Severity{report.Warning}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := cleanGeometry()
			g.FaceCount = tt.faceCount
			uv := goodUV()
			uv.IslandCount = tt.islands
			obj := &scene.Object{Name: "Crate", Geometry: g, UV: uv}

			findings := checkIslands(obj, testConfig())
			if len(findings) != len(tt.want) {
				t.Fatalf("findings = %v, want severities %v", findings, tt.want)
			}
			for i, severity := range tt.want {
				if findings[i].Severity != severity {
					t.Errorf("finding %d = %v, want %v", i, findings[i].Severity, severity)
				}
			}
		})
	}
}

func TestCheckTexelDensity(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*scene.UV)
		aaa    bool
		want   []report.Severity // ratio, average, deviation
	}{
		{"in band", func(uv *scene.UV) {}, false,
			[]report.Severity{report.Info, report.Info, report.Info}},
		{"below band", func(uv *scene.UV) { uv.DensityRatio = 1.0 }, false,
			[]report.Severity{report.Warning, report.Info, report.Info}},
		{"above band", func(uv *scene.UV) { uv.DensityRatio = 20.0 }, false,
			[]report.Severity{report.Warning, report.Info, report.Info}},
		{"aaa raises the floor", func(uv *scene.UV) { uv.DensityRatio = 5.0 }, true,
			[]report.Severity{report.Warning, report.Info, report.Info}},
		{"aaa satisfied", func(uv *scene.UV) { uv.DensityRatio = 14.0 }, true,
			[]report.Severity{report.Info, report.Info, report.Info}},
		{"inconsistent islands", func(uv *scene.UV) { uv.DensityStdDev = 1.0 }, false,
			[]report.Severity{report.Info, report.Info, report.Warning}}, // 1.0 > 0.15 * 5.0
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uv := goodUV()
			tt.mutate(uv)
			obj := &scene.Object{Name: "Crate", Geometry: cleanGeometry(), UV: uv}

			cfg := testConfig()
			cfg.AAACheck = tt.aaa

			findings := checkTexelDensity(obj, cfg)
			if len(findings) != len(tt.want) {
				t.Fatalf("findings = %v, want severities %v", findings, tt.want)
			}
			for i, severity := range tt.want {
				if findings[i].Severity != severity {
					t.Errorf("finding %d = %v, want %v", i, findings[i].Severity, severity)
				}
			}
		})
	}
}

func TestCheckUVUtilization(t *testing.T) {
	tests := []struct {
		name        string
		utilization float64
		overflow    bool
		aaa         bool
		want        report.Severity
	}{
		{"passes", 75.0, false, false, report.Info},         // pass mark 70
		{"at the pass mark", 70.0, false, false, report.Info},
		{"suboptimal", 65.0, false, false, report.Warning},  // within 10 of the mark
		{"too low", 50.0, false, false, report.Error},
		{"no data", 0, false, false, report.Warning},
		{"overflow", 80.0, true, false, report.Warning},
		{"aaa pass mark is higher", 80.0, false, true, report.Warning}, // AAA pass mark 85
		{"aaa passes", 90.0, false, true, report.Info},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uv := goodUV()
			uv.Utilization = tt.utilization
			uv.Overflow = tt.overflow
			obj := &scene.Object{Name: "Crate", Geometry: cleanGeometry(), UV: uv}

			cfg := testConfig()
			cfg.AAACheck = tt.aaa

			findings := checkUVUtilization(obj, cfg)
			if len(findings) != 1 {
				t.Fatalf("findings = %v, want exactly one", findings)
			}
			if findings[0].Severity != tt.want {
				t.Errorf("severity = %v, want %v", findings[0].Severity, tt.want)
			}
		})
	}
}
