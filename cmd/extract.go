package cmd

import (
	"encoding/json"
	"fmt"

	"catalog-sync/feature/catalogsync/specs"

	"github.com/spf13/cobra"
)

var (
	extractTitle    string
	extractModel    string
	extractVariants int
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Show the memory and storage parsed from a listing",
	Long: `Runs the hardware extractor on a title and optional variant model name and
prints the result. Useful for checking why a configuration ended up malformed.`,
	Example: `  catalog-sync extract --title "Dell OptiPlex 16GB RAM 512GB SSD"
  catalog-sync extract --model "32GB/1TB" --variants 3 --title "Lenovo ThinkPad"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		hw := specs.Extract(extractModel, extractTitle, extractVariants)

		data, err := json.MarshalIndent(struct {
			specs.Hardware
			Malformed bool `json:"malformed"`
		}{hw, hw.Malformed()}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractTitle, "title", "", "Full listing title")
	extractCmd.Flags().StringVar(&extractModel, "model", "", "Variant model name")
	extractCmd.Flags().IntVar(&extractVariants, "variants", 1, "Number of variants on the listing")
	RootCmd.AddCommand(extractCmd)
}
