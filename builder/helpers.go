package builder

import (
	"fmt"

	"github.com/katalvlaran/fcltrace/core"
	"github.com/katalvlaran/fcltrace/dates"
)

// DeliveryID is the ID builders give the delivery from station u to station v.
func DeliveryID(u, v string) string {
	return u + ">" + v
}

// deliveryDates returns the date option for a lot shipped by the station at
// index src, or nil when the config is undated.
func (c builderConfig) deliveryDates(src int) []core.DeliveryOption {
	if !c.dated {
		return nil
	}
	out := c.startDay + float64(src*(c.transit+c.dwell))
	in := out + float64(c.transit)

	return []core.DeliveryOption{core.WithDates(dates.Format(in), dates.Format(out))}
}

// addStations inserts stations idFn(0..n-1) into s.
func addStations(s *core.Snapshot, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if _, err := s.AddStation(id); err != nil {
			return fmt.Errorf("%s: AddStation(%s): %w: %w", method, id, ErrConstructFailed, err)
		}
	}

	return nil
}

// addDelivery inserts the delivery idFn(u) → idFn(v) and returns its ID.
func addDelivery(s *core.Snapshot, cfg builderConfig, method string, u, v int) (string, error) {
	from, to := cfg.idFn(u), cfg.idFn(v)
	id := DeliveryID(from, to)
	if _, err := s.AddDelivery(id, from, to, cfg.deliveryDates(u)...); err != nil {
		return "", fmt.Errorf("%s: AddDelivery(%s): %w: %w", method, id, ErrConstructFailed, err)
	}

	return id, nil
}

// validateMin returns ErrTooFewStations if got < min.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewStations)
	}

	return nil
}

// validateProbability returns ErrInvalidProbability unless 0 ≤ p ≤ 1, and
// ErrNeedRandSource if 0 < p < 1 without an RNG.
func validateProbability(method string, p float64, cfg builderConfig) error {
	if p < minProbability || p > maxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, minProbability, maxProbability, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > minProbability && p < maxProbability {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}

// trial runs one Bernoulli(p) draw; p ∈ {0,1} never touches the RNG.
func (c builderConfig) trial(p float64) bool {
	switch p {
	case minProbability:
		return false
	case maxProbability:
		return true
	}

	return c.rng.Float64() < p
}
