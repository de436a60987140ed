package domain

import "fmt"

// Method records where an estimate's distance came from.
type Method string

const (
	MethodGoogleMaps     Method = "google-maps"
	MethodClaudeEstimate Method = "claude-estimate"
)

func (m Method) Valid() bool {
	return m == MethodGoogleMaps || m == MethodClaudeEstimate
}

// IsAIEstimate reports whether the distance service fell back to an
// AI-generated approximation instead of measured routing data.
func (m Method) IsAIEstimate() bool { return m == MethodClaudeEstimate }

// DeliveryEstimate is one mode's result for a route. It is never mutated
// after it is received.
type DeliveryEstimate struct {
	DistanceMeters      float64       `json:"distanceMeters"`
	DistanceText        string        `json:"distanceText"`
	DurationSeconds     float64       `json:"durationSeconds"`
	DeliveryTimeSeconds float64       `json:"deliveryTimeSeconds"`
	DeliveryTimeText    string        `json:"deliveryTimeText"`
	Origin              string        `json:"origin"`
	Destination         string        `json:"destination"`
	TransportMode       TransportMode `json:"transportMode"`
	SpeedKmH            float64       `json:"speedKmH"`
	IsEstimate          bool          `json:"isEstimate"`
	Method              Method        `json:"method"`
}

// Validate checks the fields the remote side must get right.
func (e DeliveryEstimate) Validate() error {
	if !e.Method.Valid() {
		return fmt.Errorf("%w: method %q", ErrContractViolation, e.Method)
	}
	if !e.TransportMode.Valid() {
		return fmt.Errorf("%w: transport mode %q", ErrContractViolation, e.TransportMode)
	}
	return nil
}
