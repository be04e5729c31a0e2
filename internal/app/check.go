package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/autotroph/gamecheck/internal/config"
	"github.com/autotroph/gamecheck/internal/engine"
	"github.com/autotroph/gamecheck/internal/output"
	"github.com/autotroph/gamecheck/internal/report"
	"github.com/autotroph/gamecheck/internal/scene"
	"github.com/autotroph/gamecheck/internal/store"
)

var (
	checkFlagMode       string
	checkFlagObject     string
	checkFlagCollection string
	checkFlagAAA        bool
	checkFlagHero       bool
	checkFlagExclude    bool
	checkFlagAssetColl  bool
	checkFlagWorkers    int
	checkFlagSave       bool
	checkFlagStrict     bool
)

var checkCmd = &cobra.Command{
	Use:   "check <scene.json>",
	Short: "Scan a scene description and report game-readiness",
	Long: `Check loads a JSON scene description, evaluates every object in the
requested scope against the rule catalog, and prints a structured report
with INFO/WARNING/ERROR findings and an overall verdict.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkFlagMode, "mode", "", "Scan scope: object, collection, or file")
	checkCmd.Flags().StringVar(&checkFlagObject, "object", "", "Object to scan in object mode (default: scene's active object)")
	checkCmd.Flags().StringVar(&checkFlagCollection, "collection", "", "Collection to scan in collection mode")
	checkCmd.Flags().BoolVar(&checkFlagAAA, "aaa", false, "Enable stricter AAA-level checks")
	checkCmd.Flags().BoolVar(&checkFlagHero, "hero", false, "Treat the asset as a hero asset")
	checkCmd.Flags().BoolVar(&checkFlagExclude, "exclude-high-poly", true, "Skip checks on high-poly objects")
	checkCmd.Flags().BoolVar(&checkFlagAssetColl, "asset-collection", false, "Relax location checks for modular asset collections")
	checkCmd.Flags().IntVar(&checkFlagWorkers, "workers", 0, "Objects evaluated concurrently (0 = config default)")
	checkCmd.Flags().BoolVar(&checkFlagSave, "save", false, "Persist the verdict to scan history")
	checkCmd.Flags().BoolVar(&checkFlagStrict, "strict", false, "Exit non-zero when the scan fails")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyCheckFlags(cmd, cfg)

	output.InitColor(flagNoColor)

	sc, err := scene.Load(args[0])
	if err != nil {
		return err
	}

	rep, err := engine.Aggregate(cmd.Context(), sc, cfg)
	if err != nil {
		return err
	}

	if checkFlagSave {
		db, err := store.Open(config.DBPath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer func() { _ = db.Close() }()

		if _, err := db.SaveScan(rep, args[0], appVersion); err != nil {
			return fmt.Errorf("saving scan: %w", err)
		}
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return err
		}
	} else {
		fmt.Println(output.RenderFileReport(rep))
	}

	if checkFlagStrict && rep.Status == report.Error {
		return fmt.Errorf("scan failed with %d error(s)", rep.TotalCount(report.Error))
	}
	return nil
}

// applyCheckFlags overrides config values with flags the user actually set,
// so the config file keeps supplying defaults for everything else.
func applyCheckFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("mode") {
		if mode, err := config.ParseScanMode(checkFlagMode); err == nil {
			cfg.ScanMode = mode
		}
	}
	if flags.Changed("object") {
		cfg.TargetObject = checkFlagObject
		if !flags.Changed("mode") {
			cfg.ScanMode = config.ModeObject
		}
	}
	if flags.Changed("collection") {
		cfg.TargetCollection = checkFlagCollection
		if !flags.Changed("mode") {
			cfg.ScanMode = config.ModeCollection
		}
	}
	if flags.Changed("aaa") {
		cfg.AAACheck = checkFlagAAA
	}
	if flags.Changed("hero") {
		cfg.HeroAsset = checkFlagHero
	}
	if flags.Changed("exclude-high-poly") {
		cfg.ExcludeHighPoly = checkFlagExclude
	}
	if flags.Changed("asset-collection") {
		cfg.AssetCollectionMode = checkFlagAssetColl
	}
	if checkFlagWorkers > 0 {
		cfg.Workers = checkFlagWorkers
	}
}
