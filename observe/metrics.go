// Package observe records ability lifecycle metrics through OpenTelemetry.
// [InitProvider] installs an SDK meter provider backed by the Prometheus
// exporter so the arena can serve them on /metrics.
package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/LilRicefield/saints-dragons/ability"
)

const meterName = "github.com/LilRicefield/saints-dragons"

var _ ability.Listener = (*Metrics)(nil)

// Metrics holds the ability instruments. It implements ability.Listener so
// it can be attached to every creature's manager.
type Metrics struct {
	// Starts counts ability starts. Attribute: ability.
	Starts metric.Int64Counter

	// Ends counts ability ends. Attributes: ability, reason.
	Ends metric.Int64Counter

	// Rejections counts TryStart calls that were gated off. Attribute: ability.
	Rejections metric.Int64Counter

	// Active tracks abilities currently in use.
	Active metric.Int64UpDownCounter

	// TicksInUse records how long each activation ran, in ticks.
	TicksInUse metric.Int64Histogram
}

var tickBuckets = []float64{1, 2, 5, 10, 20, 40, 80, 160}

func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Starts, err = m.Int64Counter("dragons.ability.starts",
		metric.WithDescription("Abilities started, by ability."),
	); err != nil {
		return nil, err
	}
	if met.Ends, err = m.Int64Counter("dragons.ability.ends",
		metric.WithDescription("Abilities ended, by ability and reason."),
	); err != nil {
		return nil, err
	}
	if met.Rejections, err = m.Int64Counter("dragons.ability.rejections",
		metric.WithDescription("Start attempts refused by cooldown, slot or host."),
	); err != nil {
		return nil, err
	}
	if met.Active, err = m.Int64UpDownCounter("dragons.ability.active",
		metric.WithDescription("Abilities currently in use."),
	); err != nil {
		return nil, err
	}
	if met.TicksInUse, err = m.Int64Histogram("dragons.ability.ticks_in_use",
		metric.WithDescription("Ticks an activation ran before it ended."),
		metric.WithUnit("{tick}"),
		metric.WithExplicitBucketBoundaries(tickBuckets...),
	); err != nil {
		return nil, err
	}
	return met, nil
}

func abilityAttr(t *ability.Type) attribute.KeyValue {
	return attribute.String("ability", t.Name())
}

func (m *Metrics) AbilityStarted(a *ability.Ability) {
	ctx := context.Background()
	attrs := metric.WithAttributes(abilityAttr(a.Type()))
	m.Starts.Add(ctx, 1, attrs)
	m.Active.Add(ctx, 1, attrs)
}

func (m *Metrics) AbilityEnded(a *ability.Ability, reason ability.EndReason, ticks int) {
	ctx := context.Background()
	name := abilityAttr(a.Type())
	m.Ends.Add(ctx, 1, metric.WithAttributes(name, attribute.String("reason", reason.String())))
	m.Active.Add(ctx, -1, metric.WithAttributes(name))
	m.TicksInUse.Record(ctx, int64(ticks), metric.WithAttributes(name))
}

func (m *Metrics) AbilityRejected(t *ability.Type) {
	m.Rejections.Add(context.Background(), 1, metric.WithAttributes(abilityAttr(t)))
}
