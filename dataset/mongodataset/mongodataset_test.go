package mongodataset

import (
	"testing"

	"github.com/pbanos/seedling/dataset"
	"github.com/pbanos/seedling/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/mgo.v2/bson"
)

func features() *feature.Builder {
	b := feature.NewBuilder()
	b.AddDiscrete("outlook", []string{"sunny", "rain"})
	b.AddBucketed("humidity")
	b.AddDiscrete("windy", []string{"true", "false"})
	b.AddDiscrete("play", []string{"go", "stay"})
	return b
}

func TestNewRecord(t *testing.T) {
	b := features()
	r, err := NewRecord(bson.M{"_id": bson.NewObjectId(), "outlook": "rain", "humidity": 70.5, "windy": false, "play": "stay"}, b)
	require.NoError(t, err)
	assert.Equal(t, dataset.Record{Class: 1, Features: []int{1, 70, 1}}, r)

	r, err = NewRecord(bson.M{"humidity": 3, "play": "go"}, b)
	require.NoError(t, err)
	assert.Equal(t, dataset.Record{Class: 0, Features: []int{2, 3, 2}}, r)

	_, err = NewRecord(bson.M{"outlook": "sunny", "humidity": "high", "play": "go"}, b)
	assert.ErrorIs(t, err, feature.ErrInvalidNumericValue)

	_, err = NewRecord(bson.M{"outlook": "sunny", "play": "go"}, b)
	require.ErrorIs(t, err, feature.ErrInvalidNumericValue)
	assert.Contains(t, err.Error(), "humidity is bucketed")
}

func TestValidateNames(t *testing.T) {
	assert.NoError(t, validateNames([]string{"outlook", "play"}))
	assert.Error(t, validateNames([]string{"_id"}))
	assert.Error(t, validateNames([]string{"a.b"}))
	assert.Error(t, validateNames([]string{"$a"}))
}
