package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownMode       = errors.New("unknown transport mode")
	ErrInvalidLocation   = errors.New("invalid location")
	ErrContractViolation = errors.New("estimate service contract violation")
)

// TransportMode identifies one of the fixed delivery methods.
type TransportMode string

const (
	Walking      TransportMode = "walking"
	Swimming     TransportMode = "swimming"
	Pigeon       TransportMode = "pigeon"
	RockClimbing TransportMode = "rock-climbing"
)

// Modes lists every known mode in canonical order (the order of the
// calculate-all payload).
var Modes = []TransportMode{Walking, Swimming, Pigeon, RockClimbing}

func (m TransportMode) Valid() bool {
	switch m {
	case Walking, Swimming, Pigeon, RockClimbing:
		return true
	}
	return false
}

func (m TransportMode) String() string { return string(m) }

// DisplayName turns "rock-climbing" into "Rock Climbing".
func (m TransportMode) DisplayName() string {
	words := strings.Split(string(m), "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ParseTransportMode accepts the wire literal, case-insensitively.
func ParseTransportMode(s string) (TransportMode, error) {
	m := TransportMode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("parse transport mode %q: %w", s, ErrUnknownMode)
	}
	return m, nil
}
