package checks

import (
	"fmt"
	"strings"

	"github.com/autotroph/gamecheck/internal/config"
	"github.com/autotroph/gamecheck/internal/report"
	"github.com/autotroph/gamecheck/internal/scene"
)

// AllowedBonePrefixes is the bone naming convention for export rigs.
var AllowedBonePrefixes = []string{"DEF-", "CTRL-", "MCH-", "VIS-", "TGT-"}

// blacklistedBonePrefixes are auto-generated or working names that indicate
// an unfinished rig.
var blacklistedBonePrefixes = []string{"Bone", "Joint", "Temp", "Unnamed", "Helper"}

// checkBoneNaming flags bones outside the prefix convention and bones
// carrying blacklisted working names.
func checkBoneNaming(obj *scene.Object, _ *config.Config) []report.Finding {
	arm := obj.Armature

	var nonConforming int
	var blacklisted []string
	for _, name := range arm.BoneNames {
		if !hasAnyPrefix(name, AllowedBonePrefixes) {
			nonConforming++
		}
		if hasAnyPrefix(name, blacklistedBonePrefixes) {
			blacklisted = append(blacklisted, name)
		}
	}

	var findings []report.Finding
	if nonConforming > 0 {
		findings = append(findings, report.NewMetricFinding(report.SectionRigging, report.Warning,
			fmt.Sprintf("%d bones outside the DEF-/CTRL-/MCH-/VIS-/TGT- naming convention", nonConforming),
			float64(nonConforming)))
	}
	if len(blacklisted) > 0 {
		findings = append(findings, report.NewFinding(report.SectionRigging, report.Warning,
			"Blacklisted bone names: "+strings.Join(blacklisted, ", ")))
	}
	return findings
}

func hasAnyPrefix(name string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// checkHierarchy treats a dirty hierarchy (disconnected or duplicate roots)
// as a hard defect: it will not survive a game-engine import.
func checkHierarchy(obj *scene.Object, _ *config.Config) []report.Finding {
	if obj.Armature.HierarchyClean {
		return nil
	}
	return []report.Finding{report.NewFinding(report.SectionRigging, report.Error,
		"Bone hierarchy is not clean")}
}

// checkBoneBudget validates the bone count against the skinning budget.
func checkBoneBudget(obj *scene.Object, cfg *config.Config) []report.Finding {
	count := obj.Armature.BoneCount

	switch {
	case count == 0:
		return []report.Finding{report.NewMetricFinding(report.SectionRigging, report.Error,
			"Armature has no bones", 0)}
	case count > cfg.Thresholds.BoneBudget:
		return []report.Finding{report.NewMetricFinding(report.SectionRigging, report.Warning,
			fmt.Sprintf("Bone count %d exceeds the budget of %d", count, cfg.Thresholds.BoneBudget),
			float64(count))}
	default:
		return []report.Finding{report.NewMetricFinding(report.SectionRigging, report.Info,
			fmt.Sprintf("Bone count: %d", count), float64(count))}
	}
}

// checkConstraintsDrivers warns on live constraints or drivers; both are
// typically stripped before game-engine import.
func checkConstraintsDrivers(obj *scene.Object, _ *config.Config) []report.Finding {
	arm := obj.Armature

	var findings []report.Finding
	if arm.HasConstraints {
		findings = append(findings, report.NewFinding(report.SectionRigging, report.Warning,
			"Constraints present on export rig"))
	}
	if arm.HasDrivers {
		findings = append(findings, report.NewFinding(report.SectionRigging, report.Warning,
			"Drivers present on export rig"))
	}
	return findings
}
