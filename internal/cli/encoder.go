package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/talknet-go/talknetcfg/config"
	"github.com/talknet-go/talknetcfg/topology"
)

var encoderCmd = &cobra.Command{
	Use:   "encoder <file>",
	Short: "Summarize the configured encoder topology",
	Long: `Print a per-layer-group table for the configured convolutional
encoder: kernel size, repeats, output channels, weight counts, and the
cumulative receptive field. The input width is the character embedding
size (d_char) from the TalkNet section.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEncoder(args[0])
	},
}

func runEncoder(path string) error {
	doc, err := config.Load(path)
	if err != nil {
		return err
	}

	summary, err := topology.Summarize(&doc.Encoder, doc.TalkNet.DChar)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "GROUP\tFILTERS\tREPEAT\tKERNEL\tSEPARABLE\tRESIDUAL\tWEIGHTS\tRF")
	for _, b := range summary.Blocks {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%t\t%t\t%d\t%d\n",
			b.Index, b.Filters, b.Repeat, b.Kernel, b.Separable, b.Residual,
			b.Weights, b.ReceptiveField)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nconvolutions: %d\n", summary.Convs)
	fmt.Printf("kernel weights: %d\n", summary.Weights)
	fmt.Printf("receptive field: %d frames\n", summary.ReceptiveField)
	fmt.Printf("output channels: %d\n", summary.OutputChannels)
	return nil
}

func init() {
	rootCmd.AddCommand(encoderCmd)
}
