package yaml

import (
	"testing"

	"github.com/pbanos/seedling/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFeaturesKeepsDocumentOrder(t *testing.T) {
	md := []byte(`
features:
  outlook: [sunny, overcast, rain]
  temperature: continuous
  play: [go, stay]
`)
	b, err := ReadFeatures(md)
	require.NoError(t, err)
	assert.Equal(t, []string{"outlook", "temperature", "play"}, b.Names())

	c, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "play", c.Label().Name())
	_, ok := c.Feature(1).(*feature.BucketedFeature)
	assert.True(t, ok)
}

func TestReadFeaturesWithLabel(t *testing.T) {
	md := []byte(`
label: play
features:
  play: [go, stay]
  outlook: [sunny, rain]
`)
	b, err := ReadFeatures(md)
	require.NoError(t, err)
	assert.Equal(t, []string{"outlook", "play"}, b.Names())
}

func TestReadFeaturesErrors(t *testing.T) {
	for name, md := range map[string]string{
		"empty":         "label: x\n",
		"unknown type":  "features:\n  a: text\n",
		"unknown label": "label: z\nfeatures:\n  a: [x]\n",
		"bad decl":      "features:\n  a: 3\n",
		"not yaml":      "features: [",
	} {
		_, err := ReadFeatures([]byte(md))
		assert.Error(t, err, name)
	}
}
