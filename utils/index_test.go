package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CalculateGrowth(t *testing.T) {
	assert.Equal(t, float64(0), CalculateGrowth(0, 0))
	assert.Equal(t, float64(100), CalculateGrowth(50, 0))
	assert.Equal(t, float64(25), CalculateGrowth(125, 100))
	assert.Equal(t, float64(-50), CalculateGrowth(50, 100))
}

func Test_GenerateQRCode(t *testing.T) {
	data, err := GenerateQRCode("ORD-1A2B3C4D5E6F", 200)

	assert.NoError(t, err)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}
