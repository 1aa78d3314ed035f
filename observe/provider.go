package observe

import (
	"context"

	"go.opentelemetry.io/otel"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// InitProvider registers a global meter provider that exports through the
// default Prometheus registry and returns it with its shutdown function.
func InitProvider() (*sdkmetric.MeterProvider, func(context.Context) error, error) {
	exp, err := promexporter.New()
	if err != nil {
		return nil, nil, err
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	otel.SetMeterProvider(mp)
	return mp, mp.Shutdown, nil
}
