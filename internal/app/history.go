package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/autotroph/gamecheck/internal/config"
	"github.com/autotroph/gamecheck/internal/output"
	"github.com/autotroph/gamecheck/internal/store"
)

var historyFlagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previously saved scan verdicts",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyFlagLimit, "limit", 20, "Maximum number of scans to show")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	output.InitColor(flagNoColor)

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	scans, err := db.ListScans(historyFlagLimit)
	if err != nil {
		return fmt.Errorf("listing scans: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(scans)
	}

	if len(scans) == 0 {
		fmt.Println("No saved scans. Run 'gamecheck check --save <scene.json>' first.")
		return nil
	}

	tbl := output.NewTable("ID", "Taken", "Scene", "Scope", "Status", "Objects", "Errors", "Warnings")
	for _, s := range scans {
		tbl.AddRow(
			strconv.FormatInt(s.ID, 10),
			s.TakenAt.Format("2006-01-02 15:04"),
			s.SceneFile,
			s.Scope,
			s.Status,
			strconv.Itoa(s.ObjectCount),
			strconv.Itoa(s.ErrorCount),
			strconv.Itoa(s.WarnCount),
		)
	}
	tbl.Print()
	return nil
}
