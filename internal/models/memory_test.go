package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelModeFor(t *testing.T) {
	assert.Equal(t, ChannelUnknown, ChannelModeFor(0))
	assert.Equal(t, ChannelSingle, ChannelModeFor(1))
	assert.Equal(t, ChannelDual, ChannelModeFor(2))
	assert.Equal(t, ChannelDual, ChannelModeFor(4))
}
