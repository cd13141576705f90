package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/talknet-go/talknetcfg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a configuration document",
	Long: `Load a configuration document and check it against the schema:
recognized keys only, per-section value ranges, and the cross-section
consistency rules. Exits non-zero with the first violation found.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(args[0])
	},
}

func runValidate(path string) error {
	doc, err := config.Load(path)
	if err != nil {
		return err
	}

	slog.Debug("document loaded",
		slog.String("path", path),
		slog.String("model", doc.Model),
	)

	fmt.Printf("%s: valid\n", path)
	fmt.Printf("  model:        %s\n", doc.Model)
	fmt.Printf("  sample_rate:  %d Hz\n", doc.SampleRate)
	fmt.Printf("  n_mels:       %d\n", doc.NMels)
	fmt.Printf("  labels:       %d tokens\n", len(doc.Labels))
	fmt.Printf("  encoder:      %d layer groups\n", len(doc.Encoder.Jasper))
	return nil
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
