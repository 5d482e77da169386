package horcrux

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsValidateAccepts(t *testing.T) {
	assert.NoError(t, Options{Total: 5, Threshold: 3}.Validate())
	assert.NoError(t, Options{Total: 2, Threshold: 2}.Validate())
	assert.NoError(t, Options{Total: 99, Threshold: 99}.Validate())
	assert.NoError(t, Options{Total: 99, Threshold: 2}.Validate())
}

func TestOptionsValidateRejectsOutOfRangeTotal(t *testing.T) {
	assert.Error(t, Options{Total: 1, Threshold: 1}.Validate())
	assert.Error(t, Options{Total: 100, Threshold: 2}.Validate())
}

func TestOptionsValidateRejectsOutOfRangeThreshold(t *testing.T) {
	assert.Error(t, Options{Total: 5, Threshold: 1}.Validate())
	assert.Error(t, Options{Total: 5, Threshold: 100}.Validate())
}

func TestOptionsValidateRejectsThresholdAboveTotal(t *testing.T) {
	assert.Error(t, Options{Total: 3, Threshold: 4}.Validate())
}

func TestOptionsMultiplexedMode(t *testing.T) {
	assert.True(t, Options{Total: 5, Threshold: 5}.multiplexed())
	assert.False(t, Options{Total: 5, Threshold: 3}.multiplexed())
}
