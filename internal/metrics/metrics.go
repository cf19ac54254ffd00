// Package metrics exposes Prometheus counters for the simulation core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SimulationsTotal counts investment simulations by financing variant
	// and outcome.
	SimulationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jssolar_simulations_total",
			Help: "Investment simulations run, by financing variant and status.",
		},
		[]string{"variant", "status"},
	)

	// ChargeCalculationsTotal counts interconnection charge calculations by
	// payment type and outcome.
	ChargeCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jssolar_kepco_charge_calculations_total",
			Help: "Interconnection charge calculations run, by payment type and status.",
		},
		[]string{"payment_type", "status"},
	)
)
