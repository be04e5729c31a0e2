package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ScanMode selects how the scan scope is resolved.
type ScanMode string

const (
	// ModeObject evaluates exactly one object.
	ModeObject ScanMode = "OBJECT"

	// ModeCollection evaluates all objects in a collection, recursing
	// into nested collections.
	ModeCollection ScanMode = "COLLECTION"

	// ModeFile evaluates every object in the scene.
	ModeFile ScanMode = "FILE"
)

// ParseScanMode converts a user-supplied mode string (any case).
func ParseScanMode(s string) (ScanMode, error) {
	switch ScanMode(strings.ToUpper(s)) {
	case ModeObject:
		return ModeObject, nil
	case ModeCollection:
		return ModeCollection, nil
	case ModeFile:
		return ModeFile, nil
	}
	return "", fmt.Errorf("unknown scan mode %q (want object, collection, or file)", s)
}

// Config is the complete, immutable-per-scan gamecheck configuration.
// Rules receive it explicitly; nothing reads ambient state.
type Config struct {
	// ExcludeHighPoly skips geometry/UV/texture checks for objects flagged
	// high-poly, leaving only an exclusion notice.
	ExcludeHighPoly bool `mapstructure:"exclude_high_poly"`

	// AssetCollectionMode relaxes object-location checks for modular or
	// grouped assets that are legitimately offset from the origin.
	AssetCollectionMode bool `mapstructure:"asset_collection_mode"`

	// AAACheck raises severity on required-map gaps and enables stricter
	// naming and resolution requirements.
	AAACheck bool `mapstructure:"aaa_check"`

	// HeroAsset raises resolution floors and relaxes cosmetic-only
	// geometry strictness for close-up assets.
	HeroAsset bool `mapstructure:"hero_asset"`

	ScanMode ScanMode `mapstructure:"scan_mode"`

	// TargetObject names the object for OBJECT scans; empty falls back to
	// the scene's active object. TargetCollection names the root for
	// COLLECTION scans.
	TargetObject     string `mapstructure:"target_object"`
	TargetCollection string `mapstructure:"target_collection"`

	// Workers is the number of objects evaluated concurrently (1 = serial).
	Workers int `mapstructure:"workers"`

	Thresholds Thresholds `mapstructure:"thresholds"`
	Output     Output     `mapstructure:"output"`
}

// Thresholds holds every tunable numeric limit used by the rule catalog.
type Thresholds struct {
	TexelDeviation     float64 `mapstructure:"texel_deviation"`
	TexelDensityMin    float64 `mapstructure:"texel_density_min"`
	TexelDensityMax    float64 `mapstructure:"texel_density_max"`
	TexelDensityMinAAA float64 `mapstructure:"texel_density_min_aaa"`

	ResolutionFloor     int `mapstructure:"resolution_floor"`
	HeroResolutionFloor int `mapstructure:"hero_resolution_floor"`
	MinResolution       int `mapstructure:"min_resolution"`
	BackgroundCeiling   int `mapstructure:"background_ceiling"`

	HeroNGonAllowance   int `mapstructure:"hero_ngon_allowance"`
	BoneBudget          int `mapstructure:"bone_budget"`
	SimpleMeshFaceLimit int `mapstructure:"simple_mesh_face_limit"`

	UVUtilizationTarget float64 `mapstructure:"uv_utilization_target"`
	UVUtilizationPass   float64 `mapstructure:"uv_utilization_pass"`
	UVTargetAAA         float64 `mapstructure:"uv_target_aaa"`
	UVPassAAA           float64 `mapstructure:"uv_pass_aaa"`
}

// UVTarget returns the utilization target and pass mark for the active mode.
func (t Thresholds) UVTarget(aaa bool) (target, pass float64) {
	if aaa {
		return t.UVTargetAAA, t.UVPassAAA
	}
	return t.UVUtilizationTarget, t.UVUtilizationPass
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("exclude_high_poly", true)
	v.SetDefault("asset_collection_mode", false)
	v.SetDefault("aaa_check", false)
	v.SetDefault("hero_asset", false)
	v.SetDefault("scan_mode", string(DefaultScanMode))
	v.SetDefault("workers", DefaultWorkers)
	v.SetDefault("thresholds.texel_deviation", DefaultThresholds.TexelDeviation)
	v.SetDefault("thresholds.texel_density_min", DefaultThresholds.TexelDensityMin)
	v.SetDefault("thresholds.texel_density_max", DefaultThresholds.TexelDensityMax)
	v.SetDefault("thresholds.texel_density_min_aaa", DefaultThresholds.TexelDensityMinAAA)
	v.SetDefault("thresholds.resolution_floor", DefaultThresholds.ResolutionFloor)
	v.SetDefault("thresholds.hero_resolution_floor", DefaultThresholds.HeroResolutionFloor)
	v.SetDefault("thresholds.min_resolution", DefaultThresholds.MinResolution)
	v.SetDefault("thresholds.background_ceiling", DefaultThresholds.BackgroundCeiling)
	v.SetDefault("thresholds.hero_ngon_allowance", DefaultThresholds.HeroNGonAllowance)
	v.SetDefault("thresholds.bone_budget", DefaultThresholds.BoneBudget)
	v.SetDefault("thresholds.simple_mesh_face_limit", DefaultThresholds.SimpleMeshFaceLimit)
	v.SetDefault("thresholds.uv_utilization_target", DefaultThresholds.UVUtilizationTarget)
	v.SetDefault("thresholds.uv_utilization_pass", DefaultThresholds.UVUtilizationPass)
	v.SetDefault("thresholds.uv_target_aaa", DefaultThresholds.UVTargetAAA)
	v.SetDefault("thresholds.uv_pass_aaa", DefaultThresholds.UVPassAAA)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	mode, err := ParseScanMode(string(cfg.ScanMode))
	if err != nil {
		return nil, err
	}
	cfg.ScanMode = mode

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return &cfg, nil
}

// DBPath returns the full path to the SQLite scan-history database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
