package engine

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/lixenwraith/lightcycle/events"
)

const instrumentationName = "github.com/lixenwraith/lightcycle/engine"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// simMetrics holds the simulation counters
// Backed by the global meter provider, a no-op unless the host installs one
type simMetrics struct {
	ticks     metric.Int64Counter
	destroyed metric.Int64Counter
	collected metric.Int64Counter
	exploded  metric.Int64Counter
}

func newSimMetrics() *simMetrics {
	m := meter()
	return &simMetrics{
		ticks:     counter(m, "lightcycle.ticks", "Simulation ticks advanced"),
		destroyed: counter(m, "lightcycle.vehicles.destroyed", "Vehicles destroyed, by cause"),
		collected: counter(m, "lightcycle.powerups.collected", "Power-ups picked up from the board"),
		exploded:  counter(m, "lightcycle.bombs.exploded", "Bombs detonated"),
	}
}

func counter(m metric.Meter, name, desc string) metric.Int64Counter {
	c, err := m.Int64Counter(name, metric.WithDescription(desc))
	if err != nil {
		otel.Handle(err)
		return noop.Int64Counter{}
	}
	return c
}

// record updates counters for a published event
func (sm *simMetrics) record(ctx context.Context, ev events.GameEvent) {
	switch ev.Type {
	case events.EventVehicleDestroyed:
		cause := "unknown"
		if p, ok := ev.Payload.(*events.VehicleDestroyedPayload); ok {
			cause = p.Cause.String()
		}
		sm.destroyed.Add(ctx, 1, metric.WithAttributes(attribute.String("cause", cause)))
	case events.EventPowerUpCollected:
		sm.collected.Add(ctx, 1)
	case events.EventBombExploded:
		sm.exploded.Add(ctx, 1)
	}
}
