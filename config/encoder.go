package config

import (
	"fmt"
)

// Encoder activation functions recognized by the training framework.
var validActivations = map[string]bool{
	"relu":  true,
	"selu":  true,
	"swish": true,
}

// Block is one layer group of the convolutional encoder: repeat convolutions
// with the same kernel, an optional residual connection, and an optional
// depthwise-separable factorization. The kernel, stride, and dilation fields
// are per-scale lists; this configuration family is non-multi-scale, so the
// three lists always have matching length and the canonical document uses a
// single scale per block.
type Block struct {
	Filters   int     `yaml:"filters" json:"filters" toml:"filters"`
	Repeat    int     `yaml:"repeat" json:"repeat" toml:"repeat"`
	Kernel    []int   `yaml:"kernel" json:"kernel" toml:"kernel"`
	Stride    []int   `yaml:"stride" json:"stride" toml:"stride"`
	Dilation  []int   `yaml:"dilation" json:"dilation" toml:"dilation"`
	Dropout   float64 `yaml:"dropout" json:"dropout" toml:"dropout"`
	Residual  bool    `yaml:"residual" json:"residual" toml:"residual"`
	Separable bool    `yaml:"separable" json:"separable" toml:"separable"`
}

// Validate validates a single layer group.
func (b *Block) Validate() error {
	if b.Filters < 1 {
		return fmt.Errorf("filters must be positive, got %d", b.Filters)
	}

	if b.Repeat < 1 {
		return fmt.Errorf("repeat must be positive, got %d", b.Repeat)
	}

	if len(b.Kernel) == 0 {
		return fmt.Errorf("kernel cannot be empty")
	}

	if len(b.Stride) != len(b.Kernel) || len(b.Dilation) != len(b.Kernel) {
		return fmt.Errorf("kernel, stride, and dilation must have matching lengths, got %d/%d/%d",
			len(b.Kernel), len(b.Stride), len(b.Dilation))
	}

	for i, k := range b.Kernel {
		if k < 1 {
			return fmt.Errorf("kernel[%d] must be positive, got %d", i, k)
		}
		if k%2 == 0 {
			return fmt.Errorf("kernel[%d] must be odd to keep framewise alignment, got %d", i, k)
		}
	}

	for i, s := range b.Stride {
		if s < 1 {
			return fmt.Errorf("stride[%d] must be positive, got %d", i, s)
		}
	}

	for i, d := range b.Dilation {
		if d < 1 {
			return fmt.Errorf("dilation[%d] must be positive, got %d", i, d)
		}
	}

	if b.Dropout < 0 || b.Dropout >= 1 {
		return fmt.Errorf("dropout must be in [0, 1), got %f", b.Dropout)
	}

	return nil
}

// EncoderConfig describes the JasperEncoder section. The order of the jasper
// list directly determines network depth and topology, so it is always
// carried as an ordered sequence.
type EncoderConfig struct {
	Activation string  `yaml:"activation" json:"activation" toml:"activation"`
	ConvMask   bool    `yaml:"conv_mask" json:"conv_mask" toml:"conv_mask"`
	Jasper     []Block `yaml:"jasper" json:"jasper" toml:"jasper"`
}

// Validate validates encoder configuration.
func (e *EncoderConfig) Validate() error {
	if !validActivations[e.Activation] {
		return fmt.Errorf("activation must be one of [relu, selu, swish], got %q", e.Activation)
	}

	if len(e.Jasper) == 0 {
		return fmt.Errorf("jasper layer list cannot be empty")
	}

	for i := range e.Jasper {
		if err := e.Jasper[i].Validate(); err != nil {
			return fmt.Errorf("jasper[%d]: %w", i, err)
		}
	}

	return nil
}

// Filters returns the output channel count of each layer group in order.
func (e *EncoderConfig) Filters() []int {
	filters := make([]int, len(e.Jasper))
	for i := range e.Jasper {
		filters[i] = e.Jasper[i].Filters
	}
	return filters
}
