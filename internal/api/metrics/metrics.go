// Package metrics defines the custom Prometheus metrics of the account
// service. HTTP request metrics come from echoprometheus; the counters here
// track business outcomes.
//
// The counters are created unregistered. Register attaches them to the
// registry the /metrics endpoint serves.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hotelhub"

// Login results.
const (
	LoginSuccess        = "success"
	LoginUnknownAccount = "unknown_account"
	LoginBadCredentials = "bad_credentials"
	LoginRateLimited    = "rate_limited"
	LoginError          = "error"
)

// ── Account metrics ───────────────────────────────────────────────────────────

// AccountsRegisteredTotal counts successful registrations.
var AccountsRegisteredTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_registered_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: one of the Login* constants
var LoginsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// PasswordResetsTotal counts successful password resets.
var PasswordResetsTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_resets_total",
		Help:      "Total number of passwords reset.",
	},
)

// ── Token metrics ─────────────────────────────────────────────────────────────

// TokensRefreshedTotal counts tokens re-issued by the refresh middleware.
var TokensRefreshedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_refreshed_total",
		Help:      "Total number of session tokens re-issued inside the refresh window.",
	},
)

// TokenRejectionsTotal counts bearer tokens rejected by the auth middleware.
var TokenRejectionsTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of requests rejected for a missing or invalid bearer token.",
	},
)

// ── Hotel metrics ─────────────────────────────────────────────────────────────

// HotelProfilesCreatedTotal counts newly created hotel profiles.
var HotelProfilesCreatedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hotel_profiles_created_total",
		Help:      "Total number of hotel profiles created.",
	},
)

func collectors() []prometheus.Collector {
	return []prometheus.Collector{
		AccountsRegisteredTotal,
		LoginsTotal,
		PasswordResetsTotal,
		TokensRefreshedTotal,
		TokenRejectionsTotal,
		HotelProfilesCreatedTotal,
	}
}

// Register adds the business counters to reg. Counters already present in reg
// are skipped, so several routers may share one registry.
func Register(reg prometheus.Registerer) error {
	for _, c := range collectors() {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}
