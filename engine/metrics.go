package engine

import "github.com/prometheus/client_golang/prometheus"

// Metrics 引擎结算的 Prometheus 指标
type Metrics struct {
	ActionsTotal      *prometheus.CounterVec
	EventsTotal       *prometheus.CounterVec
	PersonalHonorLost *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ActionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "l5r_actions_total",
			Help: "Total resolved game actions by action name and outcome.",
		}, []string{"action", "outcome"}),
		EventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "l5r_events_total",
			Help: "Total game events by event name and status.",
		}, []string{"event", "status"}),
		PersonalHonorLost: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "l5r_personal_honor_lost_total",
			Help: "Total personal honor tokens discarded, by token kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(m.ActionsTotal, m.EventsTotal, m.PersonalHonorLost)
	return m
}

func (m *Metrics) observeAction(action, outcome string) {
	if m == nil {
		return
	}
	m.ActionsTotal.WithLabelValues(action, outcome).Inc()
}

func (m *Metrics) observeEvent(name EventName, status string) {
	if m == nil {
		return
	}
	m.EventsTotal.WithLabelValues(string(name), status).Inc()
}

func (m *Metrics) observeHonorLost(kind string) {
	if m == nil {
		return
	}
	m.PersonalHonorLost.WithLabelValues(kind).Inc()
}
