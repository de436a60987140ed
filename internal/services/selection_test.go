package services

import (
	"snailmail-delivery/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionToggle(t *testing.T) {
	var s Selection
	_, ok := s.Selected()
	assert.False(t, ok, "zero value must be unselected")

	s = s.Toggle(domain.Pigeon)
	mode, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, domain.Pigeon, mode)

	s = s.Toggle(domain.Pigeon)
	_, ok = s.Selected()
	assert.False(t, ok, "same mode twice returns to unselected")
}

func TestSelectionSwitchesBetweenModes(t *testing.T) {
	s := Selection{}.Toggle(domain.Walking).Toggle(domain.Swimming)

	mode, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, domain.Swimming, mode)
	assert.True(t, s.IsSelected(domain.Swimming))
	assert.False(t, s.IsSelected(domain.Walking))
}

func TestSelectionIsAValue(t *testing.T) {
	before := Selection{}.Toggle(domain.Walking)
	after := before.Toggle(domain.Walking)

	assert.True(t, before.IsSelected(domain.Walking))
	assert.False(t, after.IsSelected(domain.Walking))
}

func TestResultsView(t *testing.T) {
	v, err := NewResultsView(map[domain.TransportMode]domain.DeliveryEstimate{
		domain.Walking: est(domain.Walking, 9000),
		domain.Pigeon:  est(domain.Pigeon, 300),
	})
	require.NoError(t, err)
	require.Len(t, v.Options, 2)
	require.NotNil(t, v.Summary)

	_, ok := v.Selected()
	assert.False(t, ok)

	v.Toggle(domain.Walking)
	opt, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, domain.Walking, opt.Mode)

	require.NoError(t, v.Reset(map[domain.TransportMode]domain.DeliveryEstimate{
		domain.Swimming: est(domain.Swimming, 50),
	}))
	_, ok = v.Selection.Selected()
	assert.False(t, ok, "a fresh result set starts unselected")
	require.Len(t, v.Options, 1)

	require.NoError(t, v.Reset(nil))
	assert.Empty(t, v.Options)
	assert.Nil(t, v.Summary)
}

func TestResultsViewResetErrorKeepsState(t *testing.T) {
	v, err := NewResultsView(map[domain.TransportMode]domain.DeliveryEstimate{
		domain.Pigeon: est(domain.Pigeon, 300),
	})
	require.NoError(t, err)
	v.Toggle(domain.Pigeon)

	err = v.Reset(map[domain.TransportMode]domain.DeliveryEstimate{"zeppelin": est("zeppelin", 1)})
	require.Error(t, err)
	assert.Len(t, v.Options, 1)
	assert.True(t, v.Selection.IsSelected(domain.Pigeon))
}
