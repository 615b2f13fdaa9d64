package ephemeris

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/keyxmakerx/almanac/internal/almanac"
	"github.com/keyxmakerx/almanac/internal/apperror"
	"github.com/keyxmakerx/almanac/internal/astro"
)

// equinoxKeyPrefix is the Redis key prefix for cached equinox results.
const equinoxKeyPrefix = "ephemeris:equinox:"

// The quartic fits behind Equinox are only meant for this span; results
// outside it drift badly, so requests are rejected instead.
const (
	minEquinoxYear = -1000
	maxEquinoxYear = 3000
)

// EphemerisService serves astronomical quantities. Equinox instants are
// immutable, so they cache in Redis indefinitely subject to the TTL.
type EphemerisService interface {
	// Equinox returns the instant a season begins in a Gregorian year.
	Equinox(ctx context.Context, year int, season astro.Season) (*EquinoxView, error)

	// DeltaT returns the dynamical-minus-universal time difference.
	DeltaT(year int) DeltaTView
}

// ephemerisService implements EphemerisService with a Redis read-through
// cache.
type ephemerisService struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewEphemerisService creates a new ephemeris service. A nil client
// disables caching; everything is computed on demand.
func NewEphemerisService(rdb *redis.Client, ttl time.Duration) EphemerisService {
	return &ephemerisService{redis: rdb, ttl: ttl}
}

// Equinox computes (or serves from cache) the requested event. Cache
// failures fall back to computing; the value is small and pure.
func (s *ephemerisService) Equinox(ctx context.Context, year int, season astro.Season) (*EquinoxView, error) {
	if year < minEquinoxYear || year > maxEquinoxYear {
		return nil, apperror.NewValidation(
			fmt.Sprintf("year %d outside supported range %d to %d", year, minEquinoxYear, maxEquinoxYear))
	}

	if s.redis == nil {
		return computeEquinox(year, season), nil
	}

	key := fmt.Sprintf("%s%d:%s", equinoxKeyPrefix, year, season)
	if data, err := s.redis.Get(ctx, key).Bytes(); err == nil {
		var view EquinoxView
		if err := json.Unmarshal(data, &view); err == nil {
			return &view, nil
		}
		// Corrupt entry; fall through and recompute.
	} else if err != redis.Nil {
		slog.Warn("equinox cache read failed", slog.Any("error", err))
	}

	view := computeEquinox(year, season)

	if data, err := json.Marshal(view); err == nil {
		if err := s.redis.Set(ctx, key, data, s.ttl).Err(); err != nil {
			slog.Warn("equinox cache write failed", slog.Any("error", err))
		}
	}
	return view, nil
}

// computeEquinox assembles the view from the astronomy primitives.
func computeEquinox(year int, season astro.Season) *EquinoxView {
	jde := astro.Equinox(year, season)
	deltaT := astro.DeltaT(year)
	jd := jde - deltaT/86400.0

	date, _ := almanac.FromJulianDay(almanac.JulianDay(jd), almanac.KindGregorian)
	return &EquinoxView{
		Year:               year,
		Season:             season.String(),
		JulianEphemerisDay: jde,
		JulianDay:          jd,
		DeltaT:             deltaT,
		EquationOfTime:     astro.EquationOfTime(jde),
		Date:               date.(almanac.Gregorian),
	}
}

// DeltaT wraps the table lookup; no caching, the lookup is trivial.
func (s *ephemerisService) DeltaT(year int) DeltaTView {
	return DeltaTView{Year: year, Seconds: astro.DeltaT(year)}
}
