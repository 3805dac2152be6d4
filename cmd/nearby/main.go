package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"nearby-places-service/internal/adapters/geocode"
	"nearby-places-service/internal/adapters/repositories"
	"nearby-places-service/internal/adapters/search"
	"nearby-places-service/internal/config"
	"nearby-places-service/internal/platform/db"
	"nearby-places-service/internal/platform/obs"
	"nearby-places-service/internal/ports"
	"nearby-places-service/internal/report"
	"nearby-places-service/internal/services"
	"os"

	"github.com/rs/zerolog/log"
)

// Reference run.
const (
	defaultAddress  = "1125 west washburne avenue, Chicago, 60608"
	defaultQuery    = "Restaurants"
	defaultLocation = "60608"
	defaultZoom     = 15
	defaultLocale   = "en"
)

var (
	address  = flag.String("address", defaultAddress, "address to search around")
	query    = flag.String("q", defaultQuery, "local search query")
	location = flag.String("location", "", "postal code or region hint for the search (defaults to "+defaultLocation+" for the default address)")
	zoom     = flag.Int("zoom", defaultZoom, "map zoom level scoping the search (1-21)")
	locale   = flag.String("hl", defaultLocale, "result language")
	summary  = flag.Bool("summary", false, "print a per-category summary after the ranked list")
	saved    = flag.Bool("saved", false, "run every saved search from DATABASE_URL instead of -address")
)

// main is the composition root for a single command-line run.
func main() {
	flag.Parse()

	config.LoadDotEnv()
	obs.InitLogger(os.Stderr, "nearby", config.Get("APP_ENV", "development"), config.Get("LOG_LEVEL", "warn"))

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	geocoder, err := geocode.NewNominatimGeocoder(cfg.NominatimURL, cfg.UserAgent, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("geocoder setup failed")
	}

	searcher, err := search.NewSerpAPISearcher(cfg.SerpAPIKey, cfg.SerpAPIURL, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("local search setup failed")
	}

	ctx := obs.NewRun(context.Background())

	if *saved {
		if err := runSaved(ctx, cfg.DatabaseURL, os.Stdout, geocoder, searcher); err != nil {
			log.Fatal().Err(err).Msg("saved searches failed")
		}
		return
	}

	req := services.NearbyRequest{
		Address:  *address,
		Query:    *query,
		Location: regionHint(*address, *location),
		Zoom:     *zoom,
		Locale:   *locale,
	}
	if err := run(ctx, req, os.Stdout, geocoder, searcher, *summary); err != nil {
		log.Fatal().Err(err).Msg("nearby search failed")
	}
}

// regionHint returns location, or the reference region when the reference
// address is searched without one. Other addresses get no hint.
func regionHint(address, location string) string {
	if location == "" && address == defaultAddress {
		return defaultLocation
	}
	return location
}

// run performs one search and prints the ranked places.
// An address that does not geocode prints the not-found message and is not an error.
func run(
	ctx context.Context,
	req services.NearbyRequest,
	out io.Writer,
	geocoder ports.Geocoder,
	searcher ports.LocalSearcher,
	withSummary bool,
) error {
	res, err := services.FindNearby(ctx, req, geocoder, searcher)
	if errors.Is(err, services.ErrAddressNotFound) {
		return report.PrintNotFound(out)
	}
	if err != nil {
		return err
	}

	if err := report.PrintOrigin(out, res.Origin); err != nil {
		return err
	}
	if err := report.PrintRanked(out, res.Places); err != nil {
		return err
	}
	if !withSummary || len(res.Places) == 0 {
		return nil
	}
	return report.PrintSummary(out, services.GroupByType(res.Places))
}

func runSaved(
	ctx context.Context,
	databaseURL string,
	out io.Writer,
	geocoder ports.Geocoder,
	searcher ports.LocalSearcher,
) error {
	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	repo := repositories.NewPostgresSavedSearchRepository(conn)
	return printSaved(ctx, repo, out, geocoder, searcher)
}

func printSaved(
	ctx context.Context,
	repo ports.SavedSearchRepository,
	out io.Writer,
	geocoder ports.Geocoder,
	searcher ports.LocalSearcher,
) error {
	return services.RunSavedSearches(ctx, repo, geocoder, searcher, func(o services.SavedSearchOutcome) error {
		if _, err := fmt.Fprintf(out, "== #%d %s near %s\n", o.Search.ID, o.Search.Query, o.Search.Address); err != nil {
			return err
		}
		if o.NotFound {
			return report.PrintNotFound(out)
		}
		if err := report.PrintOrigin(out, o.Result.Origin); err != nil {
			return err
		}
		return report.PrintRanked(out, o.Result.Places)
	})
}
