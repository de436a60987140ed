package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransportMode(t *testing.T) {
	m, err := ParseTransportMode(" Rock-Climbing ")
	require.NoError(t, err)
	assert.Equal(t, RockClimbing, m)

	_, err = ParseTransportMode("teleport")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownMode))
}

func TestTransportModeDisplayName(t *testing.T) {
	assert.Equal(t, "Rock Climbing", RockClimbing.DisplayName())
	assert.Equal(t, "Pigeon", Pigeon.DisplayName())
}

func TestModesAreValid(t *testing.T) {
	require.Len(t, Modes, 4)
	for _, m := range Modes {
		assert.True(t, m.Valid(), "mode %q", m)
	}
	assert.False(t, TransportMode("car").Valid())
}
