package app

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/autotroph/gamecheck/internal/checks"
	"github.com/autotroph/gamecheck/internal/output"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the registered checks in evaluation order",
	RunE:  runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	output.InitColor(flagNoColor)

	catalog := checks.Catalog()

	if flagJSON {
		type ruleInfo struct {
			Name    string `json:"name"`
			Section string `json:"section"`
		}
		rules := make([]ruleInfo, 0, len(catalog))
		for _, r := range catalog {
			rules = append(rules, ruleInfo{Name: r.Name, Section: string(r.Section)})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rules)
	}

	tbl := output.NewTable("#", "Rule", "Section")
	for i, r := range catalog {
		tbl.AddRow(strconv.Itoa(i+1), r.Name, string(r.Section))
	}
	tbl.Print()
	return nil
}
