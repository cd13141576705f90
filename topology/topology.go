package topology

import (
	"fmt"

	"github.com/talknet-go/talknetcfg/config"
)

// BlockSummary describes one layer group of the encoder.
type BlockSummary struct {
	Index          int   // position in the jasper list
	Filters        int   // output channels
	Repeat         int   // convolutions in the group
	Kernel         int   // kernel size of the first scale
	Separable      bool
	Residual       bool
	Convs          int   // convolutions contributed, including projections
	Weights        int64 // convolution weights contributed
	ReceptiveField int   // cumulative receptive field after this group, in frames
}

// Summary describes the whole encoder.
type Summary struct {
	Blocks         []BlockSummary
	Convs          int
	Weights        int64
	ReceptiveField int
	OutputChannels int
}

// Summarize computes the encoder summary for the given input channel count
// (the character embedding width for TalkNet). Weight counts cover
// convolution kernels only; biases and norm parameters are omitted.
func Summarize(enc *config.EncoderConfig, inChannels int) (*Summary, error) {
	if inChannels < 1 {
		return nil, fmt.Errorf("input channel count must be positive, got %d", inChannels)
	}

	if err := enc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid encoder configuration: %w", err)
	}

	summary := &Summary{
		Blocks:         make([]BlockSummary, 0, len(enc.Jasper)),
		ReceptiveField: 1,
	}

	channels := inChannels
	for i := range enc.Jasper {
		block := &enc.Jasper[i]
		bs := BlockSummary{
			Index:     i,
			Filters:   block.Filters,
			Repeat:    block.Repeat,
			Kernel:    block.Kernel[0],
			Separable: block.Separable,
			Residual:  block.Residual,
		}

		blockIn := channels
		for r := 0; r < block.Repeat; r++ {
			for s, k := range block.Kernel {
				bs.Weights += convWeights(k, channels, block.Filters, block.Separable)
				bs.Convs++
				summary.ReceptiveField += (k - 1) * block.Dilation[s]
			}
			channels = block.Filters
		}

		// Residual shortcuts project with a pointwise conv when the
		// channel count changes across the group.
		if block.Residual && blockIn != block.Filters {
			bs.Weights += int64(blockIn) * int64(block.Filters)
			bs.Convs++
		}

		bs.ReceptiveField = summary.ReceptiveField
		summary.Blocks = append(summary.Blocks, bs)
		summary.Convs += bs.Convs
		summary.Weights += bs.Weights
	}

	summary.OutputChannels = channels
	return summary, nil
}

// convWeights counts the kernel weights of a single 1-D convolution.
func convWeights(kernel, in, out int, separable bool) int64 {
	if separable {
		// Depthwise over the input channels, then a pointwise projection.
		return int64(kernel)*int64(in) + int64(in)*int64(out)
	}
	return int64(kernel) * int64(in) * int64(out)
}
