package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/talknet-go/talknetcfg/config"
)

var (
	convertTo     string
	convertOutput string
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Re-encode a document as TOML or JSON",
	Long: `Load and validate a configuration document, then re-encode it for
consumers that do not read YAML. Aliases are expanded; sequence order is
preserved. The mixed-type bd_aug field is rendered as the string "false"
or the mode name in TOML, and as false or a string in JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args[0], convertTo, convertOutput)
	},
}

func runConvert(path, format, output string) error {
	doc, err := config.Load(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch format {
	case "toml":
		enc := toml.NewEncoder(&buf)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode configuration as TOML: %w", err)
		}

	case "json":
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode configuration as JSON: %w", err)
		}

	default:
		return fmt.Errorf("--to must be 'toml' or 'json', got %q", format)
	}

	if output == "" || output == "-" {
		_, err = os.Stdout.Write(buf.Bytes())
		return err
	}

	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	fmt.Printf("Wrote %s configuration to %s\n", format, output)
	return nil
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertTo, "to", "json", "target format (toml or json)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output file (default stdout)")
}
