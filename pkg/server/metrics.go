package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors the API updates.
type Metrics struct {
	DecksGenerated  *prometheus.CounterVec
	TemplateMatches *prometheus.CounterVec
	RenderDuration  *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		DecksGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deckgen_decks_generated_total",
				Help: "Deck generation requests by renderer and outcome",
			},
			[]string{"renderer", "outcome"},
		),
		TemplateMatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deckgen_template_matches_total",
				Help: "Template match requests by outcome",
			},
			[]string{"outcome"},
		),
		RenderDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "deckgen_render_duration_seconds",
				Help:    "Duration of deck generation",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"renderer"},
		),
	}
	for _, collector := range []prometheus.Collector{m.DecksGenerated, m.TemplateMatches, m.RenderDuration} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return m, nil
}
