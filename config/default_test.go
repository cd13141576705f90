package config

import (
	"bytes"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDocumentLoads(t *testing.T) {
	doc := Default()
	require.NotNil(t, doc)
	require.NoError(t, doc.Validate())
	assert.Equal(t, "TalkNet", doc.Model)
}

// Every alias in the shipped document must resolve to its anchor's value.
func TestDefaultAliasesResolve(t *testing.T) {
	doc := Default()

	assert.Equal(t, doc.SampleRate, doc.TrainDataLayer.SampleRate)
	assert.Equal(t, doc.SampleRate, doc.EvalDataLayer.SampleRate)
	assert.Equal(t, doc.SampleRate, doc.Preprocessor.SampleRate)
	assert.Equal(t, doc.SampleRate, doc.LenSampler.SampleRate)
	assert.Equal(t, doc.SampleRate, doc.TalkNet.SampleRate)

	assert.Equal(t, doc.NMels, doc.Preprocessor.Features)
	assert.Equal(t, doc.NMels, doc.TalkNet.NMels)

	assert.Equal(t, doc.Pad16, doc.TalkNet.Pad16)
	assert.Equal(t, doc.Pad16, doc.MelsLoss.Pad16)

	assert.True(t, doc.TrainDataLayer.Labels.Equal(doc.Labels))
	assert.True(t, doc.EvalDataLayer.Labels.Equal(doc.Labels))

	for i, block := range doc.Encoder.Jasper {
		assert.Equal(t, doc.Dropout, block.Dropout, "jasper[%d] dropout", i)
		assert.Equal(t, doc.Separable, block.Separable, "jasper[%d] separable", i)
	}
}

func TestDefaultSampleRate(t *testing.T) {
	doc := Default()
	assert.Equal(t, 22050, doc.SampleRate)
}

func TestDefaultLabels(t *testing.T) {
	doc := Default()

	require.Len(t, doc.Labels, 45)
	require.NoError(t, doc.Labels.Validate())

	var space, letters, punct int
	for _, r := range doc.Labels.Runes() {
		switch {
		case r == ' ':
			space++
		case r >= 'a' && r <= 'z':
			letters++
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			punct++
		}
	}
	assert.Equal(t, 1, space)
	assert.Equal(t, 26, letters)
	assert.Equal(t, 18, punct)

	// Index positions are class indices: space is class 0.
	assert.Equal(t, 0, doc.Labels.Index(" "))
}

func TestDefaultEncoderTopology(t *testing.T) {
	doc := Default()

	require.Len(t, doc.Encoder.Jasper, 11)
	assert.Equal(t,
		[]int{256, 256, 256, 256, 256, 256, 256, 512, 512, 512, 1024},
		doc.Encoder.Filters())

	for i, block := range doc.Encoder.Jasper {
		assert.Len(t, block.Kernel, 1, "jasper[%d] kernel", i)
		assert.Len(t, block.Stride, 1, "jasper[%d] stride", i)
		assert.Len(t, block.Dilation, 1, "jasper[%d] dilation", i)
		assert.Equal(t, 1, block.Stride[0], "jasper[%d] stride value", i)
		assert.Equal(t, 1, block.Dilation[0], "jasper[%d] dilation value", i)
	}

	// Prologue and epilogue groups run once without a shortcut; the interior
	// groups repeat with residual connections.
	first := doc.Encoder.Jasper[0]
	last := doc.Encoder.Jasper[10]
	assert.False(t, first.Residual)
	assert.Equal(t, 1, first.Repeat)
	assert.False(t, last.Residual)
	assert.Equal(t, 1, last.Repeat)
	for i := 1; i < 10; i++ {
		assert.True(t, doc.Encoder.Jasper[i].Residual, "jasper[%d] residual", i)
		assert.Equal(t, 5, doc.Encoder.Jasper[i].Repeat, "jasper[%d] repeat", i)
	}
}

// Re-serializing the document and parsing it back must yield a
// value-equivalent structure with sequence order intact.
func TestDefaultRoundTrip(t *testing.T) {
	doc := Default()

	var buf bytes.Buffer
	require.NoError(t, doc.Encode(&buf))

	reloaded, err := LoadBytes(buf.Bytes())
	require.NoError(t, err)

	assert.Equal(t, doc, reloaded)
	assert.Equal(t, doc.Labels, reloaded.Labels)
	assert.Equal(t, doc.Encoder.Jasper, reloaded.Encoder.Jasper)
}

func TestCanonicalYAMLReturnsCopy(t *testing.T) {
	first := CanonicalYAML()
	first[0] = '#'

	second := CanonicalYAML()
	assert.NotEqual(t, first[0], second[0])
}
