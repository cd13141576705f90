package config

import (
	_ "embed"
	"fmt"
)

//go:embed talknet.yaml
var canonicalYAML []byte

// CanonicalYAML returns the canonical TalkNet configuration exactly as
// shipped, with its anchor/alias structure intact. Writing this text, rather
// than a re-marshaled document, keeps the single-source-of-truth bindings
// visible to anyone editing the file by hand.
func CanonicalYAML() []byte {
	out := make([]byte, len(canonicalYAML))
	copy(out, canonicalYAML)
	return out
}

// Default returns the canonical TalkNet configuration as a parsed, validated
// document. Each call parses a fresh copy, so callers may mutate the result.
func Default() *Document {
	doc, err := LoadBytes(canonicalYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded canonical configuration is invalid: %v", err))
	}
	return doc
}
