package checks

import (
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/autotroph/gamecheck/internal/config"
	"github.com/autotroph/gamecheck/internal/report"
	"github.com/autotroph/gamecheck/internal/scene"
)

// RequiredMaps are the map types every game-ready material needs, with the
// filename suffixes that identify them.
var RequiredMaps = map[string][]string{
	"Diffuse":   {"_c", "_col", "_color", "_bc", "_basecolor", "_base_color", "_albedo", "_d", "_diffuse", "_diff"},
	"Normal":    {"_n", "_nrm", "_normal", "_h", "_height", "_nml"},
	"Roughness": {"_r", "_roughness", "_rma", "_rough", "_rgh", "_orm", "_mrh"},
}

// OptionalMaps are recognized but not required.
var OptionalMaps = map[string][]string{
	"Metallic":          {"_m", "_mt", "_mtl", "_metalness", "_metallic", "_rma", "_met", "_orm"},
	"Emissive":          {"_e", "_ems", "_emissive", "_g", "_glow"},
	"Specular":          {"_s", "_spec", "_specular"},
	"Ambient Occlusion": {"_ao", "_a", "_occlusion", "_rma", "_orm"},
	"Alpha":             {"_a", "_alpha", "_mask", "_opacity"},
}

// bannedNamePatterns match placeholder or working-file texture names that
// must never ship.
var bannedNamePatterns = []string{
	"default", "material", "texture", "image", "untitled", "placeholder",
	"bake", "temp", "test", "preview", "render", "output", "copy",
	"duplicate", "backup", "old", "new",
}

// resolutionTagPattern matches names that embed a resolution like _1024x1024.
var resolutionTagPattern = regexp.MustCompile(`[-_]?\d{3,5}x\d{3,5}$`)

// normalizeToken lowercases and folds separator characters to underscores.
// The underscore is kept so single-letter suffixes like _r only match an
// actual _r token, not any name that happens to end in r.
func normalizeToken(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		case r == '_' || r == '-' || r == ' ' || r == '.':
			b.WriteRune('_')
		}
	}
	return b.String()
}

// stripExt removes the file extension from a texture name.
func stripExt(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}

// InferMapTypes returns every map type whose suffix matches the texture
// name. Packed maps (e.g. _orm) legitimately match several types.
func InferMapTypes(name string) []string {
	base := normalizeToken(stripExt(name))

	var types []string
	for mapType, suffixes := range RequiredMaps {
		for _, suffix := range suffixes {
			if strings.HasSuffix(base, normalizeToken(suffix)) {
				types = append(types, mapType)
				break
			}
		}
	}
	for mapType, suffixes := range OptionalMaps {
		for _, suffix := range suffixes {
			if strings.HasSuffix(base, normalizeToken(suffix)) {
				types = append(types, mapType)
				break
			}
		}
	}
	sort.Strings(types)
	return types
}

// FoundMapTypes collects the map types present on an object, from adapter
// metadata when given and filename suffixes otherwise.
func FoundMapTypes(obj *scene.Object) map[string]bool {
	found := make(map[string]bool)
	for _, tex := range obj.Textures {
		if len(tex.Maps) > 0 {
			for _, m := range tex.Maps {
				found[m] = true
			}
			continue
		}
		for _, m := range InferMapTypes(tex.Name) {
			found[m] = true
		}
	}
	return found
}

// checkTextureNames enforces filename hygiene: no placeholder names, no
// embedded resolutions, map type encoded via suffix, and under AAA the T_
// prefix convention.
func checkTextureNames(obj *scene.Object, cfg *config.Config) []report.Finding {
	var findings []report.Finding

	for _, tex := range obj.Textures {
		lower := strings.ToLower(tex.Name)

		for _, banned := range bannedNamePatterns {
			if strings.HasPrefix(lower, banned) {
				findings = append(findings, report.NewFinding(report.SectionTextures, report.Error,
					fmt.Sprintf("[%s] contains disallowed term %q", tex.Name, banned)))
				break
			}
		}

		if resolutionTagPattern.MatchString(stripExt(tex.Name)) {
			severity := report.Warning
			if cfg.AAACheck {
				severity = report.Error
			}
			findings = append(findings, report.NewFinding(report.SectionTextures, severity,
				fmt.Sprintf("[%s] filename embeds a resolution tag", tex.Name)))
		}

		if len(tex.Maps) == 0 && len(InferMapTypes(tex.Name)) == 0 {
			severity := report.Warning
			if cfg.AAACheck {
				severity = report.Error
			}
			findings = append(findings, report.NewFinding(report.SectionTextures, severity,
				fmt.Sprintf("[%s] suffix does not encode a known map type", tex.Name)))
		}

		if cfg.AAACheck && !strings.HasPrefix(strings.ToUpper(tex.Name), "T_") {
			findings = append(findings, report.NewFinding(report.SectionTextures, report.Warning,
				fmt.Sprintf("[%s] missing T_ prefix", tex.Name)))
		}
	}

	return findings
}

// checkTextureResolution enforces the resolution floors for the asset class
// and flags non-power-of-two dimensions.
func checkTextureResolution(obj *scene.Object, cfg *config.Config) []report.Finding {
	t := cfg.Thresholds
	floor := t.ResolutionFloor
	if cfg.HeroAsset {
		floor = t.HeroResolutionFloor
	}

	var findings []report.Finding
	for _, tex := range obj.Textures {
		minDim := tex.Width
		if tex.Height < minDim {
			minDim = tex.Height
		}

		switch {
		case minDim < t.MinResolution:
			findings = append(findings, report.NewMetricFinding(report.SectionTextures, report.Error,
				fmt.Sprintf("[%s] unusable resolution %dx%d", tex.Name, tex.Width, tex.Height), float64(minDim)))
		case minDim < floor:
			findings = append(findings, report.NewMetricFinding(report.SectionTextures, report.Warning,
				fmt.Sprintf("[%s] resolution %dx%d below the %d floor", tex.Name, tex.Width, tex.Height, floor), float64(minDim)))
		case !cfg.HeroAsset && minDim > t.BackgroundCeiling:
			findings = append(findings, report.NewMetricFinding(report.SectionTextures, report.Warning,
				fmt.Sprintf("[%s] resolution %dx%d exceeds the background-asset ceiling", tex.Name, tex.Width, tex.Height), float64(minDim)))
		}

		if !isPowerOfTwo(tex.Width) || !isPowerOfTwo(tex.Height) {
			findings = append(findings, report.NewFinding(report.SectionTextures, report.Info,
				fmt.Sprintf("[%s] non-power-of-two dimensions %dx%d", tex.Name, tex.Width, tex.Height)))
		}
	}
	return findings
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// checkRequiredMaps reports each missing required map. AAA mode treats a
// gap as a hard error; standard mode as a warning.
func checkRequiredMaps(obj *scene.Object, cfg *config.Config) []report.Finding {
	found := FoundMapTypes(obj)
	severity := report.Warning
	if cfg.AAACheck {
		severity = report.Error
	}

	var findings []report.Finding
	for _, mapType := range sortedKeys(RequiredMaps) {
		if !found[mapType] {
			findings = append(findings, report.NewFinding(report.SectionTextures, severity,
				"Missing required texture map: "+mapType))
		}
	}
	return findings
}

// checkOptionalMaps summarizes optional-map coverage: one warning listing
// gaps, one informational line listing what was found.
func checkOptionalMaps(obj *scene.Object, _ *config.Config) []report.Finding {
	found := FoundMapTypes(obj)

	var missing []string
	for _, mapType := range sortedKeys(OptionalMaps) {
		if !found[mapType] {
			missing = append(missing, mapType)
		}
	}

	var findings []report.Finding
	if len(missing) > 0 {
		findings = append(findings, report.NewFinding(report.SectionTextures, report.Warning,
			"Missing optional maps: "+strings.Join(missing, ", ")))
	}
	if len(found) > 0 {
		present := make([]string, 0, len(found))
		for m := range found {
			present = append(present, m)
		}
		sort.Strings(present)
		findings = append(findings, report.NewFinding(report.SectionTextures, report.Info,
			"Found texture maps: "+strings.Join(present, ", ")))
	}
	return findings
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
