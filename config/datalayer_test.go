package config

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestBDAugUnmarshalYAML(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		expectError bool
		wantMode    string
	}{
		{
			name:     "disabled",
			yaml:     "bd_aug: false",
			wantMode: "",
		},
		{
			name:     "shake biased",
			yaml:     "bd_aug: shake_biased",
			wantMode: "shake_biased",
		},
		{
			name:     "shake unbiased",
			yaml:     "bd_aug: shake_unbiased",
			wantMode: "shake_unbiased",
		},
		{
			name:     "p mode",
			yaml:     "bd_aug: p",
			wantMode: "p",
		},
		{
			name:        "bare true is not a mode",
			yaml:        "bd_aug: true",
			expectError: true,
		},
		{
			name:        "unknown mode",
			yaml:        "bd_aug: shake_sideways",
			expectError: true,
		},
		{
			name:        "numeric value",
			yaml:        "bd_aug: 3",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var section struct {
				BDAug BDAug `yaml:"bd_aug"`
			}
			err := yaml.Unmarshal([]byte(tt.yaml), &section)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error but got none")
				}
				return
			}

			if err != nil {
				t.Fatalf("Expected no error but got: %v", err)
			}

			if section.BDAug.Mode != tt.wantMode {
				t.Errorf("Mode = %q, want %q", section.BDAug.Mode, tt.wantMode)
			}

			if section.BDAug.Enabled() != (tt.wantMode != "") {
				t.Errorf("Enabled() = %t for mode %q", section.BDAug.Enabled(), tt.wantMode)
			}
		})
	}
}

func TestBDAugMarshalYAML(t *testing.T) {
	disabled, err := yaml.Marshal(struct {
		BDAug BDAug `yaml:"bd_aug"`
	}{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.TrimSpace(string(disabled)) != "bd_aug: false" {
		t.Errorf("Disabled bd_aug marshaled as %q, want 'bd_aug: false'", strings.TrimSpace(string(disabled)))
	}

	enabled, err := yaml.Marshal(struct {
		BDAug BDAug `yaml:"bd_aug"`
	}{BDAug: BDAug{Mode: BDAugShakeBiased}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.TrimSpace(string(enabled)) != "bd_aug: shake_biased" {
		t.Errorf("Enabled bd_aug marshaled as %q, want 'bd_aug: shake_biased'", strings.TrimSpace(string(enabled)))
	}
}

func TestBDAugJSON(t *testing.T) {
	out, err := json.Marshal(BDAug{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != "false" {
		t.Errorf("Disabled bd_aug marshaled as %s, want false", out)
	}

	out, err = json.Marshal(BDAug{Mode: BDAugP})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != `"p"` {
		t.Errorf("Enabled bd_aug marshaled as %s, want \"p\"", out)
	}

	var b BDAug
	if err := json.Unmarshal([]byte(`"shake_unbiased"`), &b); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if b.Mode != BDAugShakeUnbiased {
		t.Errorf("Mode = %q, want shake_unbiased", b.Mode)
	}

	if err := json.Unmarshal([]byte("true"), &b); err == nil {
		t.Error("Expected error for bd_aug: true")
	}
}

func TestSamplerTypeValidation(t *testing.T) {
	for _, s := range []SamplerType{SamplerDefault, SamplerSuperSmart, SamplerAll} {
		if err := s.Validate(); err != nil {
			t.Errorf("Expected %q to be valid: %v", s, err)
		}
	}

	if err := SamplerType("smart-ish").Validate(); err == nil {
		t.Error("Expected unknown sampler type to be invalid")
	}

	if err := SamplerType("").Validate(); err == nil {
		t.Error("Expected empty sampler type to be invalid")
	}
}

func TestDataLayerValidation(t *testing.T) {
	valid := DataLayerConfig{
		SampleRate:  22050,
		Labels:      Labels{" ", "a", "b"},
		SamplerType: SamplerDefault,
	}

	tests := []struct {
		name     string
		mutate   func(*DataLayerConfig)
		errorMsg string
	}{
		{
			name:   "valid configuration",
			mutate: func(*DataLayerConfig) {},
		},
		{
			name:     "zero sample rate",
			mutate:   func(d *DataLayerConfig) { d.SampleRate = 0 },
			errorMsg: "sample_rate must be positive",
		},
		{
			name:     "bad labels",
			mutate:   func(d *DataLayerConfig) { d.Labels = Labels{"a", "a"} },
			errorMsg: "duplicates",
		},
		{
			name:     "bad sampler",
			mutate:   func(d *DataLayerConfig) { d.SamplerType = "round-robin" },
			errorMsg: "sampler_type",
		},
		{
			name:     "bad augmentation mode",
			mutate:   func(d *DataLayerConfig) { d.BDAug = BDAug{Mode: "wobble"} },
			errorMsg: "bd_aug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.errorMsg == "" {
				if err != nil {
					t.Errorf("Expected no error but got: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("Expected error containing %q but got none", tt.errorMsg)
			}
			if !strings.Contains(err.Error(), tt.errorMsg) {
				t.Errorf("Expected error to contain %q, got %q", tt.errorMsg, err.Error())
			}
		})
	}
}
