// Package config defines the TalkNet training configuration schema.
// It provides typed document sections, the canonical hyperparameter set,
// strict YAML loading with unknown-key detection, and validation of the
// cross-section consistency rules the document relies on (shared sample
// rate, shared label vocabulary, matching mel dimensions).
package config
