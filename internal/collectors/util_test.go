package collectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGB(t *testing.T) {
	assert.Equal(t, 16.0, toGB(16*gb))
	assert.Equal(t, 0.5, toGB(gb/2))
}

func TestOptionalFloat(t *testing.T) {
	assert.Nil(t, optionalFloat("[N/A]"))
	assert.Nil(t, optionalFloat("N/A"))
	assert.Nil(t, optionalFloat(""))
	assert.Nil(t, optionalFloat("garbage"))

	v := optionalFloat(" 42.5 ")
	require.NotNil(t, v)
	assert.Equal(t, 42.5, *v)
}

func TestParseFloat(t *testing.T) {
	assert.Equal(t, 83.0, parseFloat("83%"))
	assert.Equal(t, 7.5, parseFloat(" 7.5 "))
	assert.Zero(t, parseFloat("none"))
}

func TestAfterColon(t *testing.T) {
	assert.Equal(t, "DDR4", afterColon("  Type: DDR4"))
	assert.Equal(t, "8 GB", afterColon("Size:   8 GB  "))
	assert.Empty(t, afterColon("no separator"))
}

func TestClampPercent(t *testing.T) {
	assert.Equal(t, 0.0, clampPercent(-3))
	assert.Equal(t, 100.0, clampPercent(104.2))
	assert.Equal(t, 55.5, clampPercent(55.5))
}
