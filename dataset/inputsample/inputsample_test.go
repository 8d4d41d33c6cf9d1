package inputsample

import (
	"errors"
	"strings"
	"testing"

	"github.com/pbanos/seedling/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRequester struct {
	requested []string
	rejected  []string
	rejectErr error
}

func (rr *recordingRequester) RequestValueFor(f feature.Feature) error {
	rr.requested = append(rr.requested, f.Name())
	return nil
}

func (rr *recordingRequester) RejectValueFor(f feature.Feature, v string) error {
	rr.rejected = append(rr.rejected, f.Name()+"="+v)
	return rr.rejectErr
}

func catalog(t *testing.T) *feature.Catalog {
	c, err := feature.NewCatalog([]feature.Feature{
		feature.NewDiscreteFeature("outlook", []string{"sunny", "rain", feature.UnknownValue}),
		feature.NewBucketedFeature("humidity", 100),
		feature.NewDiscreteFeature("play", []string{"go", "stay"}),
	})
	require.NoError(t, err)
	return c
}

func TestReadRequestsEveryFeatureAndRejectsInvalidValues(t *testing.T) {
	rr := &recordingRequester{}
	r, err := Read(strings.NewReader("cloudy\nrain\nhigh\n-3\n1e20\n71.9\n"), catalog(t), rr)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 71}, r.Features)
	assert.Equal(t, -1, r.Class)
	assert.Equal(t, []string{"outlook", "humidity"}, rr.requested)
	assert.Equal(t, []string{"outlook=cloudy", "humidity=high", "humidity=-3", "humidity=1e20"}, rr.rejected)
}

func TestReadAcceptsUnknownValue(t *testing.T) {
	r, err := Read(strings.NewReader("?\n5\n"), catalog(t), &recordingRequester{})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5}, r.Features)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("sunny\n"), catalog(t), &recordingRequester{})
	assert.Error(t, err, "EOF before humidity")

	stop := errors.New("stop")
	_, err = Read(strings.NewReader("cloudy\n"), catalog(t), &recordingRequester{rejectErr: stop})
	assert.ErrorIs(t, err, stop)
}
