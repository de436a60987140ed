package services

import (
	"errors"
	"math/rand"
	"snailmail-delivery/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func est(mode domain.TransportMode, seconds float64) domain.DeliveryEstimate {
	return domain.DeliveryEstimate{
		TransportMode:       mode,
		DeliveryTimeSeconds: seconds,
		DistanceText:        "7.5 km",
		Method:              domain.MethodGoogleMaps,
	}
}

func TestBuildOptionsPigeonBeforeWalking(t *testing.T) {
	options, err := BuildOptions(map[domain.TransportMode]domain.DeliveryEstimate{
		domain.Walking: est(domain.Walking, 9000),
		domain.Pigeon:  est(domain.Pigeon, 300),
	})
	require.NoError(t, err)
	require.Len(t, options, 2)

	assert.Equal(t, domain.Pigeon, options[0].Mode)
	assert.Equal(t, domain.Walking, options[1].Mode)
	assert.Equal(t, "🕊️", options[0].Emoji)
	assert.NotEmpty(t, options[1].Description)
}

func TestBuildOptionsSortedAndComplete(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		results := map[domain.TransportMode]domain.DeliveryEstimate{}
		for _, m := range domain.Modes {
			if rng.Intn(3) == 0 {
				continue
			}
			results[m] = est(m, float64(rng.Intn(5)*600))
		}

		options, err := BuildOptions(results)
		require.NoError(t, err)
		require.Len(t, options, len(results))

		for j := 1; j < len(options); j++ {
			assert.LessOrEqual(t,
				options[j-1].Estimate.DeliveryTimeSeconds,
				options[j].Estimate.DeliveryTimeSeconds,
			)
		}
	}
}

func TestBuildOptionsTiesKeepCanonicalOrder(t *testing.T) {
	options, err := BuildOptions(map[domain.TransportMode]domain.DeliveryEstimate{
		domain.RockClimbing: est(domain.RockClimbing, 100),
		domain.Pigeon:       est(domain.Pigeon, 100),
		domain.Swimming:     est(domain.Swimming, 100),
		domain.Walking:      est(domain.Walking, 100),
	})
	require.NoError(t, err)

	got := make([]domain.TransportMode, 0, len(options))
	for _, o := range options {
		got = append(got, o.Mode)
	}
	assert.Equal(t, domain.Modes, got)
}

func TestBuildOptionsUnknownModeFailsFast(t *testing.T) {
	_, err := BuildOptions(map[domain.TransportMode]domain.DeliveryEstimate{
		domain.Pigeon:               est(domain.Pigeon, 10),
		domain.TransportMode("car"): est("car", 5),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownMode))
}

func TestBuildOptionsEmpty(t *testing.T) {
	options, err := BuildOptions(nil)
	require.NoError(t, err)
	assert.NotNil(t, options)
	assert.Empty(t, options)
	assert.Nil(t, Summarize(options))
}

func TestSummarizeAIEstimate(t *testing.T) {
	fast := domain.DeliveryEstimate{
		TransportMode:       domain.Pigeon,
		DeliveryTimeSeconds: 5400,
		DistanceText:        "120 km",
		Method:              domain.MethodClaudeEstimate,
	}
	slow := domain.DeliveryEstimate{
		TransportMode:       domain.Walking,
		DeliveryTimeSeconds: 86400,
		DistanceText:        "121 km",
		Method:              domain.MethodGoogleMaps,
	}

	options, err := BuildOptions(map[domain.TransportMode]domain.DeliveryEstimate{
		domain.Walking: slow,
		domain.Pigeon:  fast,
	})
	require.NoError(t, err)

	assert.Equal(t, &DistanceSummary{Text: "120 km", IsAIEstimate: true}, Summarize(options))
}

func TestSummarizeMeasured(t *testing.T) {
	options, err := BuildOptions(map[domain.TransportMode]domain.DeliveryEstimate{
		domain.Swimming: est(domain.Swimming, 10),
	})
	require.NoError(t, err)

	s := Summarize(options)
	require.NotNil(t, s)
	assert.Equal(t, "7.5 km", s.Text)
	assert.False(t, s.IsAIEstimate)
}

func TestTransportOptionDisplay(t *testing.T) {
	o := TransportOption{
		Mode:     domain.RockClimbing,
		Estimate: domain.DeliveryEstimate{SpeedKmH: 0.5},
	}
	assert.Equal(t, "Rock Climbing", o.DisplayName())
	assert.Equal(t, "0.5 km/h", o.SpeedDisplay())

	o.Estimate.SpeedKmH = 80
	assert.Equal(t, "80 km/h", o.SpeedDisplay())
}

func TestLookupModeInfoIsTotal(t *testing.T) {
	for _, m := range domain.Modes {
		info, err := LookupModeInfo(m)
		require.NoError(t, err)
		assert.NotEmpty(t, info.Emoji)
		assert.NotEmpty(t, info.Description)
	}
}
