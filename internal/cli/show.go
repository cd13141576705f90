package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/talknet-go/talknetcfg/config"
)

var showFormat string

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a document with all aliases resolved",
	Long: `Load a configuration document and print it with every anchor
reference expanded to its resolved value, after validation. Useful for
seeing exactly what a consuming framework would observe.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(args[0], showFormat)
	},
}

func runShow(path, format string) error {
	doc, err := config.Load(path)
	if err != nil {
		return err
	}

	switch format {
	case "yaml":
		return doc.Encode(os.Stdout)

	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode configuration: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("format must be 'yaml' or 'json', got %q", format)
	}
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVar(&showFormat, "format", "yaml", "output format (yaml or json)")
}
