package config

import (
	"fmt"
	"time"
)

// ModelConfig describes the TalkNet section: the character embedding width
// and the output conventions shared with the loss.
type ModelConfig struct {
	SampleRate int  `yaml:"sample_rate" json:"sample_rate" toml:"sample_rate"`
	NMels      int  `yaml:"n_mels" json:"n_mels" toml:"n_mels"`
	DChar      int  `yaml:"d_char" json:"d_char" toml:"d_char"`
	Pad16      bool `yaml:"pad16" json:"pad16" toml:"pad16"`
	PolySpan   bool `yaml:"poly_span" json:"poly_span" toml:"poly_span"`
}

// Validate validates model configuration.
func (m *ModelConfig) Validate() error {
	if m.SampleRate < 1 {
		return fmt.Errorf("sample_rate must be positive, got %d", m.SampleRate)
	}

	if m.NMels < 1 {
		return fmt.Errorf("n_mels must be positive, got %d", m.NMels)
	}

	if m.DChar < 1 {
		return fmt.Errorf("d_char must be positive, got %d", m.DChar)
	}

	return nil
}

// LenSamplerConfig describes the LenSampler section, which drops training
// utterances longer than the cutoff before batching.
type LenSamplerConfig struct {
	SampleRate int `yaml:"sample_rate" json:"sample_rate" toml:"sample_rate"`
	MaxLen     int `yaml:"max_len" json:"max_len" toml:"max_len"`
}

// Validate validates length sampler configuration.
func (l *LenSamplerConfig) Validate() error {
	if l.SampleRate < 1 {
		return fmt.Errorf("sample_rate must be positive, got %d", l.SampleRate)
	}

	if l.MaxLen < 1 {
		return fmt.Errorf("max_len must be positive, got %d", l.MaxLen)
	}

	return nil
}

// MaxDuration returns the utterance cutoff as a time.Duration. max_len is
// expressed in samples at the shared sample rate.
func (l *LenSamplerConfig) MaxDuration() time.Duration {
	return time.Duration(l.MaxLen) * time.Second / time.Duration(l.SampleRate)
}

// Loss reduction strategies.
const (
	ReductionAll   = "all"
	ReductionBatch = "batch"
)

// MelsLossConfig describes the TalkNetMelsLoss section.
type MelsLossConfig struct {
	Reduction string `yaml:"reduction" json:"reduction" toml:"reduction"`
	Pad16     bool   `yaml:"pad16" json:"pad16" toml:"pad16"`
}

// Validate validates loss configuration.
func (m *MelsLossConfig) Validate() error {
	if m.Reduction != ReductionAll && m.Reduction != ReductionBatch {
		return fmt.Errorf("reduction must be 'all' or 'batch', got %q", m.Reduction)
	}

	return nil
}
