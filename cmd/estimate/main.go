package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"snailmail-delivery/internal/adapters/estimates"
	"snailmail-delivery/internal/config"
	"snailmail-delivery/internal/domain"
	"snailmail-delivery/internal/platform/logger"
	"snailmail-delivery/internal/ports"
	"snailmail-delivery/internal/services"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

type options struct {
	from   string
	to     string
	mode   string
	expand string
	health bool
}

func main() {
	var opts options
	flag.StringVar(&opts.from, "from", "", `origin: an address or "lat,lng"`)
	flag.StringVar(&opts.to, "to", "", `destination: an address or "lat,lng"`)
	flag.StringVar(&opts.mode, "mode", "", "only estimate this mode (walking, swimming, pigeon, rock-climbing)")
	flag.StringVar(&opts.expand, "expand", "", "show details for this mode")
	flag.BoolVar(&opts.health, "health", false, "only check that the estimate service is up")
	flag.Parse()

	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv, "estimate")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	client, err := estimates.NewClient(cfg.APIURL, cfg.RequestTimeout, log)
	if err != nil {
		log.Fatal("failed to create estimate client", zap.Error(err))
	}
	log.Debug("using estimate service", zap.String("url", client.BaseURL()))

	if err := run(context.Background(), os.Stdout, client, opts); err != nil {
		fmt.Fprintln(os.Stderr, describeError(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, provider ports.EstimateProvider, opts options) error {
	if opts.health {
		if !provider.HealthCheck(ctx) {
			return errors.New("estimate service is unavailable")
		}
		fmt.Fprintln(w, "estimate service is healthy")
		return nil
	}

	if strings.TrimSpace(opts.from) == "" || strings.TrimSpace(opts.to) == "" {
		return errors.New("both -from and -to are required")
	}
	origin, destination := parseLocation(opts.from), parseLocation(opts.to)

	var results map[domain.TransportMode]domain.DeliveryEstimate
	if opts.mode != "" {
		mode, err := domain.ParseTransportMode(opts.mode)
		if err != nil {
			return err
		}
		est, err := provider.CalculateSingle(ctx, origin, destination, mode)
		if err != nil {
			return err
		}
		results = map[domain.TransportMode]domain.DeliveryEstimate{mode: est}
	} else {
		all, err := provider.CalculateAll(ctx, origin, destination)
		if err != nil {
			return err
		}
		results = all
	}

	view, err := services.NewResultsView(results)
	if err != nil {
		return err
	}

	if opts.expand != "" {
		mode, err := domain.ParseTransportMode(opts.expand)
		if err != nil {
			return err
		}
		view.Toggle(mode)
		if _, ok := view.Selected(); !ok {
			return fmt.Errorf("cannot expand %s: not among the results", mode)
		}
	}

	render(w, view, origin.String(), destination.String())
	return nil
}

// parseLocation treats "lat,lng" as a point and anything else as an address.
func parseLocation(s string) domain.LocationInput {
	parts := strings.Split(s, ",")
	if len(parts) == 2 {
		lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		lng, errLng := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errLat == nil && errLng == nil {
			return domain.PointLocation(lat, lng)
		}
	}
	return domain.AddressLocation(s)
}

func describeError(err error) string {
	var reqErr *estimates.RequestError
	var calcErr *estimates.CalculationError

	switch {
	case errors.As(err, &calcErr):
		return "could not calculate delivery: " + calcErr.Message
	case errors.As(err, &reqErr) && reqErr.StatusCode == 0:
		return "estimate service unreachable: " + reqErr.Message
	case errors.As(err, &reqErr):
		return fmt.Sprintf("estimate service error (%d): %s", reqErr.StatusCode, reqErr.Message)
	default:
		return "error: " + err.Error()
	}
}
