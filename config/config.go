package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the complete TalkNet training configuration. The top-level
// bindings (sample_rate, n_mels, pad16, dropout, separable, labels) are the
// document's anchors: every section that repeats one of these values must
// agree with the top-level binding, which Validate enforces after the YAML
// aliases have been resolved into plain values.
type Document struct {
	Model      string  `yaml:"model" json:"model" toml:"model"`
	SampleRate int     `yaml:"sample_rate" json:"sample_rate" toml:"sample_rate"`
	NMels      int     `yaml:"n_mels" json:"n_mels" toml:"n_mels"`
	Pad16      bool    `yaml:"pad16" json:"pad16" toml:"pad16"`
	Dropout    float64 `yaml:"dropout" json:"dropout" toml:"dropout"`
	Separable  bool    `yaml:"separable" json:"separable" toml:"separable"`
	Labels     Labels  `yaml:"labels" json:"labels" toml:"labels"`

	TrainDataLayer DataLayerConfig    `yaml:"TalkNetDataLayer_train" json:"TalkNetDataLayer_train" toml:"TalkNetDataLayer_train"`
	EvalDataLayer  DataLayerConfig    `yaml:"TalkNetDataLayer_eval" json:"TalkNetDataLayer_eval" toml:"TalkNetDataLayer_eval"`
	Preprocessor   PreprocessorConfig `yaml:"AudioToMelSpectrogramPreprocessor" json:"AudioToMelSpectrogramPreprocessor" toml:"AudioToMelSpectrogramPreprocessor"`
	LenSampler     LenSamplerConfig   `yaml:"LenSampler" json:"LenSampler" toml:"LenSampler"`
	TalkNet        ModelConfig        `yaml:"TalkNet" json:"TalkNet" toml:"TalkNet"`
	Encoder        EncoderConfig      `yaml:"JasperEncoder" json:"JasperEncoder" toml:"JasperEncoder"`
	MelsLoss       MelsLossConfig     `yaml:"TalkNetMelsLoss" json:"TalkNetMelsLoss" toml:"TalkNetMelsLoss"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	doc, err := LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	return doc, nil
}

// LoadBytes parses and validates a configuration document. Decoding is
// strict: keys that are not part of the schema are errors, so a typo in a
// hyperparameter name fails loudly instead of silently training with a
// default.
func LoadBytes(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &doc, nil
}

// Validate performs per-section validation followed by the cross-section
// consistency checks that the document's anchor/alias structure guarantees
// in its serialized form.
func (d *Document) Validate() error {
	if d.Model == "" {
		return fmt.Errorf("model name cannot be empty")
	}

	if d.SampleRate < 1 {
		return fmt.Errorf("sample_rate must be positive, got %d", d.SampleRate)
	}

	if d.NMels < 1 {
		return fmt.Errorf("n_mels must be positive, got %d", d.NMels)
	}

	if d.Dropout < 0 || d.Dropout >= 1 {
		return fmt.Errorf("dropout must be in [0, 1), got %f", d.Dropout)
	}

	if err := d.Labels.Validate(); err != nil {
		return fmt.Errorf("labels: %w", err)
	}

	if err := d.TrainDataLayer.Validate(); err != nil {
		return fmt.Errorf("TalkNetDataLayer_train: %w", err)
	}

	if err := d.EvalDataLayer.Validate(); err != nil {
		return fmt.Errorf("TalkNetDataLayer_eval: %w", err)
	}

	if err := d.Preprocessor.Validate(); err != nil {
		return fmt.Errorf("AudioToMelSpectrogramPreprocessor: %w", err)
	}

	if err := d.LenSampler.Validate(); err != nil {
		return fmt.Errorf("LenSampler: %w", err)
	}

	if err := d.TalkNet.Validate(); err != nil {
		return fmt.Errorf("TalkNet: %w", err)
	}

	if err := d.Encoder.Validate(); err != nil {
		return fmt.Errorf("JasperEncoder: %w", err)
	}

	if err := d.MelsLoss.Validate(); err != nil {
		return fmt.Errorf("TalkNetMelsLoss: %w", err)
	}

	return d.validateConsistency()
}

// validateConsistency enforces the single-source-of-truth invariants: the
// audio pipeline and the model must observe one sample rate, one label
// vocabulary, one mel dimension, and one padding convention.
func (d *Document) validateConsistency() error {
	rateConsumers := []struct {
		section string
		rate    int
	}{
		{"TalkNetDataLayer_train", d.TrainDataLayer.SampleRate},
		{"TalkNetDataLayer_eval", d.EvalDataLayer.SampleRate},
		{"AudioToMelSpectrogramPreprocessor", d.Preprocessor.SampleRate},
		{"LenSampler", d.LenSampler.SampleRate},
		{"TalkNet", d.TalkNet.SampleRate},
	}
	for _, c := range rateConsumers {
		if c.rate != d.SampleRate {
			return fmt.Errorf("%s: sample_rate %d does not match top-level sample_rate %d",
				c.section, c.rate, d.SampleRate)
		}
	}

	if !d.TrainDataLayer.Labels.Equal(d.Labels) {
		return fmt.Errorf("TalkNetDataLayer_train: labels do not match the top-level vocabulary")
	}

	if !d.EvalDataLayer.Labels.Equal(d.Labels) {
		return fmt.Errorf("TalkNetDataLayer_eval: labels do not match the top-level vocabulary")
	}

	if d.Preprocessor.Features != d.NMels {
		return fmt.Errorf("AudioToMelSpectrogramPreprocessor: features %d does not match n_mels %d",
			d.Preprocessor.Features, d.NMels)
	}

	if d.TalkNet.NMels != d.NMels {
		return fmt.Errorf("TalkNet: n_mels %d does not match top-level n_mels %d",
			d.TalkNet.NMels, d.NMels)
	}

	if d.TalkNet.Pad16 != d.Pad16 {
		return fmt.Errorf("TalkNet: pad16 %t does not match top-level pad16 %t",
			d.TalkNet.Pad16, d.Pad16)
	}

	if d.MelsLoss.Pad16 != d.Pad16 {
		return fmt.Errorf("TalkNetMelsLoss: pad16 %t does not match top-level pad16 %t",
			d.MelsLoss.Pad16, d.Pad16)
	}

	return nil
}

// Encode writes the document as YAML. Aliases are expanded to their resolved
// values; mapping key order follows the schema, and sequence order (labels,
// jasper) is preserved exactly.
func (d *Document) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	return enc.Close()
}

// Save writes the document to a file.
func (d *Document) Save(path string) error {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
