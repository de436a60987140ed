package estimates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"snailmail-delivery/internal/domain"
	"snailmail-delivery/internal/platform/obs"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	calculatePath    = "/api/distance/calculate"
	calculateAllPath = "/api/distance/calculate-all"
	healthPath       = "/api/distance/health"
)

// Client talks to the remote delivery estimate service.
//
// It keeps no state between calls beyond its configuration and is safe
// for concurrent use, although callers are expected to keep a single
// request in flight per user action.
type Client struct {
	session *http.Client
	baseURL string
	timeout time.Duration
	log     *zap.Logger
}

type calculateRequest struct {
	Origin      domain.LocationInput `json:"origin"`
	Destination domain.LocationInput `json:"destination"`
	Mode        domain.TransportMode `json:"mode,omitempty"`
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("estimate client: base url is empty")
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("estimate client: timeout must be positive, got %s", timeout)
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{
		session: &http.Client{},
		baseURL: baseURL,
		timeout: timeout,
		log:     log,
	}, nil
}

func (c *Client) BaseURL() string { return c.baseURL }

// CalculateSingle fetches the estimate for one transport mode.
//
// Errors are *RequestError for transport/status failures and
// *CalculationError when the service reports success=false.
func (c *Client) CalculateSingle(
	ctx context.Context,
	origin domain.LocationInput,
	destination domain.LocationInput,
	mode domain.TransportMode,
) (_ domain.DeliveryEstimate, err error) {
	defer obs.Time(ctx, c.log, "estimates.CalculateSingle")(&err)

	if !mode.Valid() {
		return domain.DeliveryEstimate{}, fmt.Errorf("calculate single: mode %q: %w", mode, domain.ErrUnknownMode)
	}
	if err := validateRoute(origin, destination); err != nil {
		return domain.DeliveryEstimate{}, fmt.Errorf("calculate single: %w", err)
	}

	data, err := c.post(ctx, calculatePath, calculateRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        mode,
	})
	if err != nil {
		return domain.DeliveryEstimate{}, err
	}

	var est domain.DeliveryEstimate
	if err := json.Unmarshal(data, &est); err != nil {
		return domain.DeliveryEstimate{}, fmt.Errorf("calculate single: %w: decode data: %v", domain.ErrContractViolation, err)
	}
	if err := est.Validate(); err != nil {
		return domain.DeliveryEstimate{}, fmt.Errorf("calculate single: %w", err)
	}
	if est.TransportMode != mode {
		return domain.DeliveryEstimate{}, fmt.Errorf(
			"calculate single: %w: asked for %q, got %q",
			domain.ErrContractViolation, mode, est.TransportMode,
		)
	}

	return est, nil
}

// CalculateAll fetches estimates for every mode in a single round trip, so
// all modes share one route resolution. The result always holds exactly the
// four known modes.
func (c *Client) CalculateAll(
	ctx context.Context,
	origin domain.LocationInput,
	destination domain.LocationInput,
) (_ map[domain.TransportMode]domain.DeliveryEstimate, err error) {
	defer obs.Time(ctx, c.log, "estimates.CalculateAll")(&err)

	if err := validateRoute(origin, destination); err != nil {
		return nil, fmt.Errorf("calculate all: %w", err)
	}

	data, err := c.post(ctx, calculateAllPath, calculateRequest{
		Origin:      origin,
		Destination: destination,
	})
	if err != nil {
		return nil, err
	}

	var raw map[string]domain.DeliveryEstimate
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("calculate all: %w: decode data: %v", domain.ErrContractViolation, err)
	}

	out := make(map[domain.TransportMode]domain.DeliveryEstimate, len(domain.Modes))
	for key, est := range raw {
		mode := domain.TransportMode(key)
		if !mode.Valid() {
			return nil, fmt.Errorf("calculate all: %w: unexpected mode key %q", domain.ErrContractViolation, key)
		}
		if err := est.Validate(); err != nil {
			return nil, fmt.Errorf("calculate all %s: %w", key, err)
		}
		if est.TransportMode != mode {
			return nil, fmt.Errorf(
				"calculate all: %w: key %q holds %q",
				domain.ErrContractViolation, key, est.TransportMode,
			)
		}
		out[mode] = est
	}

	missing := make([]string, 0)
	for _, m := range domain.Modes {
		if _, ok := out[m]; !ok {
			missing = append(missing, string(m))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf(
			"calculate all: %w: missing modes %s",
			domain.ErrContractViolation, strings.Join(missing, ", "),
		)
	}

	return out, nil
}

// HealthCheck probes the service. Every failure is logged and reported as
// false; it never returns an error.
func (c *Client) HealthCheck(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	fail := func(reason string, err error) bool {
		c.log.Warn("health check failed",
			zap.String("url", c.baseURL+healthPath),
			zap.String("reason", reason),
			zap.Error(err),
		)
		return false
	}

	req, err := c.newRequest(ctx, http.MethodGet, healthPath, nil)
	if err != nil {
		return fail("build request", err)
	}

	resp, err := c.session.Do(req)
	if err != nil {
		return fail("request", err)
	}
	defer resp.Body.Close()

	var body struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fail("decode", err)
	}
	if !body.Success {
		return fail("service reported unhealthy", fmt.Errorf("status %d", resp.StatusCode))
	}

	return true
}

func validateRoute(origin, destination domain.LocationInput) error {
	if err := origin.Validate(); err != nil {
		return fmt.Errorf("origin: %w", err)
	}
	if err := destination.Validate(); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	return nil
}
