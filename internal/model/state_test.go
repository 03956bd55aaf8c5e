package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatusState(t *testing.T) {
	state := NewStatusState()

	msg, err := state.Message.Get()
	require.NoError(t, err)
	assert.Equal(t, "Ready", msg)

	location, err := state.Location.Get()
	require.NoError(t, err)
	assert.Empty(t, location)

	bridgeAddr, err := state.BridgeAddress.Get()
	require.NoError(t, err)
	assert.Equal(t, BridgeDisabled, bridgeAddr)

	require.NoError(t, state.Location.Set("/data/grade_data.json"))
	location, err = state.Location.Get()
	require.NoError(t, err)
	assert.Equal(t, "/data/grade_data.json", location)
}
