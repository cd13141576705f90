package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// SamplerType selects the distributed sampling strategy of the data layer.
type SamplerType string

const (
	SamplerDefault    SamplerType = "default"
	SamplerSuperSmart SamplerType = "super-smart"
	SamplerAll        SamplerType = "all"
)

var validSamplerTypes = map[SamplerType]bool{
	SamplerDefault:    true,
	SamplerSuperSmart: true,
	SamplerAll:        true,
}

// Validate checks that the sampler type is one of the recognized strategies.
func (s SamplerType) Validate() error {
	if !validSamplerTypes[s] {
		return fmt.Errorf("sampler_type must be one of [default, super-smart, all], got %q", string(s))
	}
	return nil
}

// BDAug augmentation modes.
const (
	BDAugShakeBiased   = "shake_biased"
	BDAugShakeUnbiased = "shake_unbiased"
	BDAugP             = "p"
)

var bdAugModes = []string{BDAugShakeBiased, BDAugShakeUnbiased, BDAugP}

// BDAug selects the blanks/durations augmentation applied by the training
// data layer. In the document the value is either the boolean false
// (disabled) or one of the mode strings; the boolean true is not a mode and
// is rejected.
type BDAug struct {
	Mode string // empty when augmentation is disabled
}

// Enabled reports whether an augmentation mode is selected.
func (b BDAug) Enabled() bool {
	return b.Mode != ""
}

// Validate checks that the mode, when set, names a recognized augmentation.
func (b BDAug) Validate() error {
	if b.Mode == "" {
		return nil
	}
	for _, mode := range bdAugModes {
		if b.Mode == mode {
			return nil
		}
	}
	return fmt.Errorf("bd_aug must be false or one of [%s], got %q",
		strings.Join(bdAugModes, ", "), b.Mode)
}

// UnmarshalYAML decodes either the boolean false or a mode string.
func (b *BDAug) UnmarshalYAML(value *yaml.Node) error {
	switch value.Tag {
	case "!!bool":
		var enabled bool
		if err := value.Decode(&enabled); err != nil {
			return err
		}
		if enabled {
			return fmt.Errorf("bd_aug: true does not name a mode, use one of [%s]",
				strings.Join(bdAugModes, ", "))
		}
		b.Mode = ""
		return nil

	case "!!str":
		var mode string
		if err := value.Decode(&mode); err != nil {
			return err
		}
		b.Mode = mode
		return b.Validate()

	default:
		return fmt.Errorf("bd_aug: expected false or a mode string, got %s node", value.Tag)
	}
}

// MarshalYAML emits the boolean false when disabled and the mode string
// otherwise, matching the document's mixed-type convention.
func (b BDAug) MarshalYAML() (interface{}, error) {
	if b.Mode == "" {
		return false, nil
	}
	return b.Mode, nil
}

// MarshalJSON mirrors the YAML convention for JSON consumers.
func (b BDAug) MarshalJSON() ([]byte, error) {
	if b.Mode == "" {
		return []byte("false"), nil
	}
	return []byte(fmt.Sprintf("%q", b.Mode)), nil
}

// UnmarshalJSON accepts false or a mode string.
func (b *BDAug) UnmarshalJSON(data []byte) error {
	text := string(data)
	switch {
	case text == "false":
		b.Mode = ""
		return nil
	case text == "true":
		return fmt.Errorf("bd_aug: true does not name a mode, use one of [%s]",
			strings.Join(bdAugModes, ", "))
	case len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"':
		b.Mode = text[1 : len(text)-1]
		return b.Validate()
	default:
		return fmt.Errorf("bd_aug: expected false or a mode string, got %s", text)
	}
}

// MarshalText renders the value for encoders without a native mixed type,
// such as TOML.
func (b BDAug) MarshalText() ([]byte, error) {
	if b.Mode == "" {
		return []byte("false"), nil
	}
	return []byte(b.Mode), nil
}

// DataLayerConfig describes one TalkNet data layer section. The train and
// eval sections share this schema and differ only in values.
type DataLayerConfig struct {
	SampleRate           int         `yaml:"sample_rate" json:"sample_rate" toml:"sample_rate"`
	Labels               Labels      `yaml:"labels" json:"labels" toml:"labels"`
	NormalizeTranscripts bool        `yaml:"normalize_transcripts" json:"normalize_transcripts" toml:"normalize_transcripts"`
	TrimSilence          bool        `yaml:"trim_silence" json:"trim_silence" toml:"trim_silence"`
	DropLast             bool        `yaml:"drop_last" json:"drop_last" toml:"drop_last"`
	Shuffle              bool        `yaml:"shuffle" json:"shuffle" toml:"shuffle"`
	SamplerType          SamplerType `yaml:"sampler_type" json:"sampler_type" toml:"sampler_type"`
	BDAug                BDAug       `yaml:"bd_aug" json:"bd_aug" toml:"bd_aug"`
}

// Validate validates data layer configuration.
func (d *DataLayerConfig) Validate() error {
	if d.SampleRate < 1 {
		return fmt.Errorf("sample_rate must be positive, got %d", d.SampleRate)
	}

	if err := d.Labels.Validate(); err != nil {
		return err
	}

	if err := d.SamplerType.Validate(); err != nil {
		return err
	}

	if err := d.BDAug.Validate(); err != nil {
		return err
	}

	return nil
}
