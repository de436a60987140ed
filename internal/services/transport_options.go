package services

import (
	"fmt"
	"snailmail-delivery/internal/domain"
	"sort"
	"strconv"
)

// Fixed display metadata for one transport mode.
type ModeInfo struct {
	Emoji       string
	Description string
}

// modeInfo is total over domain.Modes.
var modeInfo = map[domain.TransportMode]ModeInfo{
	domain.Pigeon: {
		Emoji:       "🕊️",
		Description: "Air mail at its finest! A trusty pigeon carries your message through the skies.",
	},
	domain.Walking: {
		Emoji:       "🚶",
		Description: "The classic approach. Your message walks to its destination, one step at a time.",
	},
	domain.Swimming: {
		Emoji:       "🏊",
		Description: "For water-based delivery. Your message swims across rivers, lakes, and oceans.",
	},
	domain.RockClimbing: {
		Emoji:       "🧗",
		Description: "The most adventurous route. Your message climbs mountains to reach its destination.",
	},
}

// LookupModeInfo returns the display metadata for mode, failing for any
// mode outside the fixed set.
func LookupModeInfo(mode domain.TransportMode) (ModeInfo, error) {
	info, ok := modeInfo[mode]
	if !ok {
		return ModeInfo{}, fmt.Errorf("lookup mode info %q: %w", mode, domain.ErrUnknownMode)
	}
	return info, nil
}

// TransportOption pairs a mode's display metadata with its estimate.
// Options are rebuilt for every result set and never mutated.
type TransportOption struct {
	Mode        domain.TransportMode
	Emoji       string
	Description string
	Estimate    domain.DeliveryEstimate
}

func (o TransportOption) DisplayName() string { return o.Mode.DisplayName() }

// SpeedDisplay renders the mode's assumed speed, e.g. "80 km/h".
func (o TransportOption) SpeedDisplay() string {
	return strconv.FormatFloat(o.Estimate.SpeedKmH, 'f', -1, 64) + " km/h"
}

// BuildOptions ranks results fastest first by delivery time.
//
// Every entry yields exactly one option. Entries are visited in canonical
// mode order and sorted stably, so ties keep that order. A key outside the
// known modes is an error, never a skipped row.
func BuildOptions(results map[domain.TransportMode]domain.DeliveryEstimate) ([]TransportOption, error) {
	for mode := range results {
		if _, err := LookupModeInfo(mode); err != nil {
			return nil, fmt.Errorf("build options: %w", err)
		}
	}

	options := make([]TransportOption, 0, len(results))
	for _, mode := range domain.Modes {
		est, ok := results[mode]
		if !ok {
			continue
		}
		info := modeInfo[mode]
		options = append(options, TransportOption{
			Mode:        mode,
			Emoji:       info.Emoji,
			Description: info.Description,
			Estimate:    est,
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Estimate.DeliveryTimeSeconds < options[j].Estimate.DeliveryTimeSeconds
	})

	return options, nil
}

// Route distance shown once for the whole result set.
type DistanceSummary struct {
	Text         string
	IsAIEstimate bool
}

// Summarize reports the distance of the top-ranked option. All modes share
// one physical route, so the distance is not re-derived per mode. It
// returns nil when there are no options.
func Summarize(options []TransportOption) *DistanceSummary {
	if len(options) == 0 {
		return nil
	}

	top := options[0].Estimate
	return &DistanceSummary{
		Text:         top.DistanceText,
		IsAIEstimate: top.Method.IsAIEstimate(),
	}
}
