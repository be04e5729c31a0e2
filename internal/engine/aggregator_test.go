package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autotroph/gamecheck/internal/config"
	"github.com/autotroph/gamecheck/internal/report"
	"github.com/autotroph/gamecheck/internal/scene"
)

func testScene() *scene.Scene {
	return &scene.Scene{
		ActiveObject: "Crate",
		Collections: []scene.Collection{
			{Name: "Props", Children: []string{"Crates", "Rocks"}},
			{Name: "Crates"},
			{Name: "Rocks"},
		},
		Objects: []scene.Object{
			*meshObject("Crate"),
			*meshObject("Rock"),
			*meshObject("Barrel"),
		},
	}
}

func sceneWithCollections() *scene.Scene {
	s := testScene()
	s.Objects[0].Collections = []string{"Crates"}
	s.Objects[1].Collections = []string{"Rocks"}
	s.Objects[2].Collections = []string{"Loose"}
	return s
}

func TestAggregateFileScope(t *testing.T) {
	cfg := testConfig()
	cfg.ScanMode = config.ModeFile

	rep, err := Aggregate(context.Background(), testScene(), cfg)
	require.NoError(t, err)

	assert.Equal(t, "FILE", rep.Scope)
	require.Len(t, rep.Objects, 3)

	// Scene listing order is preserved.
	assert.Equal(t, "Crate", rep.Objects[0].Name)
	assert.Equal(t, "Rock", rep.Objects[1].Name)
	assert.Equal(t, "Barrel", rep.Objects[2].Name)
}

func TestAggregateObjectScope(t *testing.T) {
	cfg := testConfig()
	cfg.ScanMode = config.ModeObject
	cfg.TargetObject = "Rock"

	rep, err := Aggregate(context.Background(), testScene(), cfg)
	require.NoError(t, err)
	require.Len(t, rep.Objects, 1)
	assert.Equal(t, "Rock", rep.Objects[0].Name)
}

func TestAggregateObjectScopeActiveFallback(t *testing.T) {
	cfg := testConfig()
	cfg.ScanMode = config.ModeObject

	rep, err := Aggregate(context.Background(), testScene(), cfg)
	require.NoError(t, err)
	require.Len(t, rep.Objects, 1)
	assert.Equal(t, "Crate", rep.Objects[0].Name)
}

func TestAggregateEmptyScope(t *testing.T) {
	cfg := testConfig()
	cfg.ScanMode = config.ModeObject
	cfg.TargetObject = "Missing"

	rep, err := Aggregate(context.Background(), testScene(), cfg)
	require.NoError(t, err, "an empty scope is reported, not returned as an error")

	assert.Empty(t, rep.Objects)
	require.Len(t, rep.Findings, 1)
	assert.Equal(t, report.Error, rep.Findings[0].Severity)
	assert.Equal(t, report.SectionFile, rep.Findings[0].Section)
	assert.Equal(t, report.Error, rep.Status)
}

func TestAggregateStatusIsMaxSeverity(t *testing.T) {
	s := testScene()
	cfg := testConfig()
	cfg.ScanMode = config.ModeFile

	rep, err := Aggregate(context.Background(), s, cfg)
	require.NoError(t, err)
	assert.Equal(t, report.Warning, rep.Status, "clean fixtures still warn on missing optional maps")

	// Introduce a hard defect on one object.
	s.Objects[1].Geometry.NonManifoldEdges = 4
	rep, err = Aggregate(context.Background(), s, cfg)
	require.NoError(t, err)
	assert.Equal(t, report.Error, rep.Status)
}

func TestAggregateMalformedObjectSkipped(t *testing.T) {
	s := testScene()
	s.Objects[1].Name = ""

	cfg := testConfig()
	cfg.ScanMode = config.ModeFile

	rep, err := Aggregate(context.Background(), s, cfg)
	require.NoError(t, err, "a malformed object never aborts the scan")

	require.Len(t, rep.Objects, 2, "the malformed object is skipped")
	assert.Equal(t, "Crate", rep.Objects[0].Name)
	assert.Equal(t, "Barrel", rep.Objects[1].Name)

	var skipped []report.Finding
	for _, f := range rep.Findings {
		if strings.HasPrefix(f.Message, "Skipped") {
			skipped = append(skipped, f)
		}
	}
	require.Len(t, skipped, 1)
	assert.Equal(t, report.Error, skipped[0].Severity)
	assert.Contains(t, skipped[0].Message, "object #1")
	assert.Equal(t, report.Error, rep.Status)
}

func TestAggregateCollectionScope(t *testing.T) {
	cfg := testConfig()
	cfg.ScanMode = config.ModeCollection
	cfg.TargetCollection = "Props"

	rep, err := Aggregate(context.Background(), sceneWithCollections(), cfg)
	require.NoError(t, err)

	// Props reaches Crates and Rocks; Barrel sits in an unrelated collection.
	require.Len(t, rep.Objects, 2)
	assert.Equal(t, "Crate", rep.Objects[0].Name)
	assert.Equal(t, "Rock", rep.Objects[1].Name)

	var notes []string
	for _, f := range rep.Findings {
		notes = append(notes, f.Message)
	}
	assert.Contains(t, strings.Join(notes, "\n"), "nested collections")
	assert.Contains(t, strings.Join(notes, "\n"), "No armature present")
}

func TestAggregateCollectionLeafOnlyMembership(t *testing.T) {
	// A collection may exist purely as object memberships without a node in
	// the collection graph.
	cfg := testConfig()
	cfg.ScanMode = config.ModeCollection
	cfg.TargetCollection = "Loose"

	rep, err := Aggregate(context.Background(), sceneWithCollections(), cfg)
	require.NoError(t, err)
	require.Len(t, rep.Objects, 1)
	assert.Equal(t, "Barrel", rep.Objects[0].Name)
}

func TestAggregateCollectionCycle(t *testing.T) {
	s := sceneWithCollections()
	// Props -> Crates -> Props forms a cycle.
	s.Collections[1].Children = []string{"Props"}

	cfg := testConfig()
	cfg.ScanMode = config.ModeCollection
	cfg.TargetCollection = "Props"

	rep, err := Aggregate(context.Background(), s, cfg)
	require.NoError(t, err, "traversal must terminate on cyclic graphs")

	// Each reachable object appears exactly once.
	seen := map[string]int{}
	for _, obj := range rep.Objects {
		seen[obj.Name]++
	}
	for name, n := range seen {
		assert.Equal(t, 1, n, "object %s evaluated %d times", name, n)
	}
	require.Len(t, rep.Objects, 2)
}

func TestAggregateUnknownCollection(t *testing.T) {
	cfg := testConfig()
	cfg.ScanMode = config.ModeCollection
	cfg.TargetCollection = "Nowhere"

	rep, err := Aggregate(context.Background(), sceneWithCollections(), cfg)
	require.NoError(t, err)
	assert.Empty(t, rep.Objects)
	assert.Equal(t, report.Error, rep.Status)
}

func TestAggregateIdempotent(t *testing.T) {
	s := testScene()
	s.Objects[1].Geometry.NGonCount = 3
	s.Objects[2].UV.Utilization = 40

	cfg := testConfig()
	cfg.ScanMode = config.ModeFile

	first, err := Aggregate(context.Background(), s, cfg)
	require.NoError(t, err)
	second, err := Aggregate(context.Background(), s, cfg)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b), "unchanged input must serialize byte-identically")
}

func TestAggregateParallelMatchesSerial(t *testing.T) {
	s := testScene()
	for i := 0; i < 20; i++ {
		obj := *meshObject(fmt.Sprintf("Extra%02d", i))
		s.Objects = append(s.Objects, obj)
	}

	serial := testConfig()
	serial.ScanMode = config.ModeFile
	serial.Workers = 1

	parallel := testConfig()
	parallel.ScanMode = config.ModeFile
	parallel.Workers = 8

	a, err := Aggregate(context.Background(), s, serial)
	require.NoError(t, err)
	b, err := Aggregate(context.Background(), s, parallel)
	require.NoError(t, err)

	aj, err := json.Marshal(a)
	require.NoError(t, err)
	bj, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, string(aj), string(bj), "worker count must not change the report")
}

func TestAggregateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := testConfig()
	cfg.ScanMode = config.ModeFile

	_, err := Aggregate(ctx, testScene(), cfg)
	assert.Error(t, err)
}
