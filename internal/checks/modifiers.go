package checks

import (
	"fmt"

	"github.com/autotroph/gamecheck/internal/config"
	"github.com/autotroph/gamecheck/internal/report"
	"github.com/autotroph/gamecheck/internal/scene"
)

// AllowedModifiers may remain live on an export-bound object; everything
// else must be applied before delivery.
var AllowedModifiers = map[string]bool{
	"ARMATURE":        true,
	"TRIANGULATE":     true,
	"WEIGHTED_NORMAL": true,
}

// checkModifiers warns on every live modifier outside the allowed set.
func checkModifiers(obj *scene.Object, _ *config.Config) []report.Finding {
	var findings []report.Finding
	for _, mod := range obj.Modifiers {
		if mod.Applied || AllowedModifiers[mod.Type] {
			continue
		}
		findings = append(findings, report.NewFinding(report.SectionModifiers, report.Warning,
			fmt.Sprintf("Modifier %s (%s) must be applied or removed before export", mod.Name, mod.Type)))
	}

	if findings == nil && len(obj.Modifiers) > 0 {
		findings = append(findings, report.NewFinding(report.SectionModifiers, report.Info,
			"Only allowed modifiers present"))
	}
	return findings
}
