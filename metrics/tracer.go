// Package metrics provides a Prometheus-backed connection tracer.
package metrics

import (
	"errors"
	"strconv"

	knp "github.com/ShiftyTR/KcpNatProxy"

	"github.com/prometheus/client_golang/prometheus"
)

const metricNamespace = "knp"

var (
	packetsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "sent_packets_total",
			Help:      "Packets sent",
		},
		[]string{"packet_type"},
	)
	packetsReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "received_packets_total",
			Help:      "Packets received",
		},
		[]string{"packet_type"},
	)
	packetsDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "received_packets_dropped_total",
			Help:      "Packets dropped",
		},
		[]string{"reason"},
	)
	stateChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "connection_state_changes_total",
			Help:      "Connection state transitions",
		},
		[]string{"state"},
	)
	negotiations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "negotiations_completed_total",
			Help:      "Completed negotiations",
		},
		[]string{"result"},
	)
)

// NewTracer creates a new tracer using the default Prometheus registerer.
// The Tracer returned from this function can be set on the Tracer field of
// knp.Config; a single tracer may be shared between connections.
func NewTracer() *knp.Tracer {
	return NewTracerWithRegisterer(prometheus.DefaultRegisterer)
}

// NewTracerWithRegisterer creates a new tracer using a given Prometheus registerer.
func NewTracerWithRegisterer(registerer prometheus.Registerer) *knp.Tracer {
	for _, c := range [...]prometheus.Collector{
		packetsSent,
		packetsReceived,
		packetsDropped,
		stateChanges,
		negotiations,
	} {
		if err := registerer.Register(c); err != nil {
			if ok := errors.As(err, &prometheus.AlreadyRegisteredError{}); !ok {
				panic(err)
			}
		}
	}

	return &knp.Tracer{
		SentPacket: func(packetType knp.PacketType, _ int) {
			packetsSent.WithLabelValues(packetType.String()).Inc()
		},
		ReceivedPacket: func(packetType knp.PacketType, _ int) {
			packetsReceived.WithLabelValues(packetType.String()).Inc()
		},
		DroppedPacket: func(reason knp.PacketDropReason, _ int) {
			packetsDropped.WithLabelValues(reason.String()).Inc()
		},
		StateChanged: func(state knp.ConnectionState) {
			stateChanges.WithLabelValues(state.String()).Inc()
		},
		NegotiationDone: func(success bool, _ uint16) {
			negotiations.WithLabelValues(strconv.FormatBool(success)).Inc()
		},
	}
}
