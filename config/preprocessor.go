package config

import (
	"fmt"
	"time"
)

// Log-zero guard strategies for the mel filterbank.
const (
	LogZeroGuardClamp = "clamp"
	LogZeroGuardAdd   = "add"
)

// PreprocessorConfig describes the AudioToMelSpectrogramPreprocessor
// section: the STFT geometry and mel filterbank parameters used to turn
// waveforms into the model's prediction target.
type PreprocessorConfig struct {
	SampleRate       int     `yaml:"sample_rate" json:"sample_rate" toml:"sample_rate"`
	NWindowSize      int     `yaml:"n_window_size" json:"n_window_size" toml:"n_window_size"`
	NWindowStride    int     `yaml:"n_window_stride" json:"n_window_stride" toml:"n_window_stride"`
	NFFT             int     `yaml:"n_fft" json:"n_fft" toml:"n_fft"`
	Features         int     `yaml:"features" json:"features" toml:"features"`
	LogZeroGuardType string  `yaml:"log_zero_guard_type" json:"log_zero_guard_type" toml:"log_zero_guard_type"`
	PadTo            int     `yaml:"pad_to" json:"pad_to" toml:"pad_to"`
	MagPower         float64 `yaml:"mag_power" json:"mag_power" toml:"mag_power"`
}

// Validate validates preprocessor configuration.
func (p *PreprocessorConfig) Validate() error {
	if p.SampleRate < 1 {
		return fmt.Errorf("sample_rate must be positive, got %d", p.SampleRate)
	}

	if p.NWindowSize < 1 {
		return fmt.Errorf("n_window_size must be positive, got %d", p.NWindowSize)
	}

	if p.NWindowStride < 1 {
		return fmt.Errorf("n_window_stride must be positive, got %d", p.NWindowStride)
	}

	if p.NWindowStride > p.NWindowSize {
		return fmt.Errorf("n_window_stride (%d) cannot exceed n_window_size (%d)",
			p.NWindowStride, p.NWindowSize)
	}

	if p.NFFT < p.NWindowSize {
		return fmt.Errorf("n_fft (%d) must be at least n_window_size (%d)", p.NFFT, p.NWindowSize)
	}

	if p.Features < 1 {
		return fmt.Errorf("features must be positive, got %d", p.Features)
	}

	if p.LogZeroGuardType != LogZeroGuardClamp && p.LogZeroGuardType != LogZeroGuardAdd {
		return fmt.Errorf("log_zero_guard_type must be 'clamp' or 'add', got %q", p.LogZeroGuardType)
	}

	if p.PadTo < 0 {
		return fmt.Errorf("pad_to cannot be negative, got %d", p.PadTo)
	}

	if p.MagPower <= 0 {
		return fmt.Errorf("mag_power must be positive, got %f", p.MagPower)
	}

	return nil
}

// WindowDuration returns the analysis window length as a time.Duration.
func (p *PreprocessorConfig) WindowDuration() time.Duration {
	return time.Duration(p.NWindowSize) * time.Second / time.Duration(p.SampleRate)
}

// HopDuration returns the window stride as a time.Duration.
func (p *PreprocessorConfig) HopDuration() time.Duration {
	return time.Duration(p.NWindowStride) * time.Second / time.Duration(p.SampleRate)
}

// NumFrames returns the number of spectrogram frames produced for a
// waveform of the given sample count, assuming the center-padded STFT the
// training framework applies.
func (p *PreprocessorConfig) NumFrames(samples int) int {
	if samples < 0 {
		return 0
	}
	return samples/p.NWindowStride + 1
}

// PaddedFrames rounds a frame count up to the next multiple of pad_to.
// A pad_to of zero disables padding.
func (p *PreprocessorConfig) PaddedFrames(frames int) int {
	if p.PadTo < 2 || frames%p.PadTo == 0 {
		return frames
	}
	return frames + p.PadTo - frames%p.PadTo
}
