// Package checks defines the rule catalog: one pure function per check,
// registered in a single explicit, ordered table. Rules read the scene
// object and configuration, never mutate either, and report everything as
// findings; registration order is the output order and is part of the
// engine's contract.
package checks

import (
	"github.com/autotroph/gamecheck/internal/config"
	"github.com/autotroph/gamecheck/internal/report"
	"github.com/autotroph/gamecheck/internal/scene"
)

// CheckFunc runs one check against an object and returns its findings.
type CheckFunc func(obj *scene.Object, cfg *config.Config) []report.Finding

// Rule is one catalog entry. Applies gates the rule without running it;
// a rule that does not apply contributes no findings at all.
type Rule struct {
	Name    string
	Section report.Section
	Applies func(obj *scene.Object, cfg *config.Config) bool
	Check   CheckFunc
}

// isMesh gates rules that need geometry data.
func isMesh(obj *scene.Object, _ *config.Config) bool {
	return obj.Geometry != nil
}

// hasUnwrap gates UV-quality rules that need an actual UV layer.
func hasUnwrap(obj *scene.Object, _ *config.Config) bool {
	return obj.Geometry != nil && obj.UV != nil && obj.UV.HasUV
}

// isRigged gates rigging rules.
func isRigged(obj *scene.Object, _ *config.Config) bool {
	return obj.HasArmature()
}

// Catalog returns the full ordered rule table. The evaluator runs entries
// front to back, which fixes the documented section order
// Geometry → Textures → UVs → Modifiers → Rigging.
func Catalog() []Rule {
	return []Rule{
		{Name: "geometry-counts", Section: report.SectionGeometry, Applies: isMesh, Check: checkCounts},
		{Name: "geometry-topology", Section: report.SectionGeometry, Applies: isMesh, Check: checkTopology},
		{Name: "geometry-transforms", Section: report.SectionGeometry, Applies: isMesh, Check: checkTransforms},
		{Name: "geometry-normals", Section: report.SectionGeometry, Applies: isMesh, Check: checkNormals},

		{Name: "texture-names", Section: report.SectionTextures, Applies: isMesh, Check: checkTextureNames},
		{Name: "texture-resolution", Section: report.SectionTextures, Applies: isMesh, Check: checkTextureResolution},
		{Name: "texture-required-maps", Section: report.SectionTextures, Applies: isMesh, Check: checkRequiredMaps},
		{Name: "texture-optional-maps", Section: report.SectionTextures, Applies: isMesh, Check: checkOptionalMaps},

		{Name: "uv-presence", Section: report.SectionUVs, Applies: isMesh, Check: checkUVPresence},
		{Name: "uv-seams", Section: report.SectionUVs, Applies: hasUnwrap, Check: checkSeams},
		{Name: "uv-islands", Section: report.SectionUVs, Applies: hasUnwrap, Check: checkIslands},
		{Name: "uv-texel-density", Section: report.SectionUVs, Applies: hasUnwrap, Check: checkTexelDensity},
		{Name: "uv-utilization", Section: report.SectionUVs, Applies: hasUnwrap, Check: checkUVUtilization},

		{Name: "modifier-whitelist", Section: report.SectionModifiers, Applies: isMesh, Check: checkModifiers},

		{Name: "rig-bone-naming", Section: report.SectionRigging, Applies: isRigged, Check: checkBoneNaming},
		{Name: "rig-hierarchy", Section: report.SectionRigging, Applies: isRigged, Check: checkHierarchy},
		{Name: "rig-bone-budget", Section: report.SectionRigging, Applies: isRigged, Check: checkBoneBudget},
		{Name: "rig-constraints", Section: report.SectionRigging, Applies: isRigged, Check: checkConstraintsDrivers},
	}
}
