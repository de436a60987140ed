package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryEstimateValidate(t *testing.T) {
	ok := DeliveryEstimate{TransportMode: Pigeon, Method: MethodGoogleMaps}
	assert.NoError(t, ok.Validate())

	badMethod := DeliveryEstimate{TransportMode: Pigeon, Method: "guesswork"}
	assert.True(t, errors.Is(badMethod.Validate(), ErrContractViolation))

	badMode := DeliveryEstimate{TransportMode: "car", Method: MethodClaudeEstimate}
	assert.True(t, errors.Is(badMode.Validate(), ErrContractViolation))
}

func TestMethodIsAIEstimate(t *testing.T) {
	assert.True(t, MethodClaudeEstimate.IsAIEstimate())
	assert.False(t, MethodGoogleMaps.IsAIEstimate())
}
