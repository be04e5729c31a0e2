// Package config provides configuration loading and defaults for gamecheck.
package config

// DefaultConfigDir is the default location for gamecheck configuration.
const DefaultConfigDir = "~/.config/gamecheck"

// DefaultDBName is the filename for the scan-history SQLite database.
const DefaultDBName = "gamecheck.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultScanMode is the scope used when none is requested.
const DefaultScanMode = ModeObject

// DefaultWorkers is the number of objects evaluated concurrently. Objects
// are independent units of work, so this is purely a throughput knob.
const DefaultWorkers = 1

// DefaultThresholds holds the documented default limits for every tunable
// check. The original tool only described most of these qualitatively, so
// each default is deliberately exposed rather than buried in a rule.
var DefaultThresholds = Thresholds{
	// Texel density deviation is flagged above 15% of the island average.
	TexelDeviation: 0.15,

	// Acceptable texel density ratio band (px/cm); AAA raises the floor
	// to the top of the band.
	TexelDensityMin:    3,
	TexelDensityMax:    12,
	TexelDensityMinAAA: 12,

	// Resolution floors by asset class, plus the hard floor below which a
	// texture is unusable and the ceiling above which a background asset
	// wastes budget.
	ResolutionFloor:     512,
	HeroResolutionFloor: 2048,
	MinResolution:       256,
	BackgroundCeiling:   1024,

	// Hero assets tolerate this many n-gons at WARNING instead of ERROR.
	HeroNGonAllowance: 4,

	// BoneBudget is a common skinned-mesh limit for real-time engines.
	BoneBudget: 256,

	// A single UV island is acceptable for meshes below this face count.
	SimpleMeshFaceLimit: 100,

	// UV space utilization targets and pass marks (percent).
	UVUtilizationTarget: 80,
	UVUtilizationPass:   70,
	UVTargetAAA:         90,
	UVPassAAA:           85,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
