package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const (
	defaultServiceName = "mlb-scoreboard"
	otlpPushInterval   = 15 * time.Second
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

func noopShutdown(context.Context) error { return nil }

// Setup builds the meter provider. Metrics are always scraped through a
// private Prometheus registry and additionally pushed over OTLP/HTTP when an
// endpoint is configured. A disabled config yields an in-memory Recorder and
// no handler.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, noopShutdown, nil
	}

	readers, handler, err := buildReaders(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	name := cfg.ServiceName
	if name == "" {
		name = defaultServiceName
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(name)))
	if err != nil {
		return nil, nil, nil, err
	}

	opts := make([]sdkmetric.Option, 0, len(readers)+1)
	for _, r := range readers {
		opts = append(opts, sdkmetric.WithReader(r))
	}
	opts = append(opts, sdkmetric.WithResource(res))
	mp := sdkmetric.NewMeterProvider(opts...)

	inst, err := instrumentFactory(mp)
	if err != nil {
		_ = mp.Shutdown(ctx)
		return nil, nil, nil, err
	}
	return newRecorder(inst), handler, mp.Shutdown, nil
}

func buildReaders(ctx context.Context, cfg TelemetryConfig) ([]sdkmetric.Reader, http.Handler, error) {
	prom, handler, err := promReaderFactory()
	if err != nil {
		return nil, nil, err
	}
	readers := []sdkmetric.Reader{prom}
	if cfg.OtlpEndpoint == "" {
		return readers, handler, nil
	}
	otlp, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
	if err != nil {
		return nil, nil, err
	}
	return append(readers, otlp), handler, nil
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	exp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return exp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exp, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(otlpPushInterval)), nil
}

// otelInstruments mirrors each Recorder operation onto an OpenTelemetry
// counter or histogram. Latencies are recorded in milliseconds.
type otelInstruments struct {
	httpRequests     metric.Int64Counter
	httpLatency      metric.Float64Histogram
	providerAttempts metric.Int64Counter
	providerErrors   metric.Int64Counter
	providerLatency  metric.Float64Histogram
	refreshes        metric.Int64Counter
	refreshFailures  metric.Int64Counter
	refreshLatency   metric.Float64Histogram
	pollerCycles     metric.Int64Counter
	pollerErrors     metric.Int64Counter
	pollerLatency    metric.Float64Histogram
}

// instrumentBuilder keeps the first creation error so construction reads as
// a flat list.
type instrumentBuilder struct {
	meter metric.Meter
	err   error
}

func (b *instrumentBuilder) counter(name, desc string) metric.Int64Counter {
	if b.err != nil {
		return nil
	}
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc))
	b.err = err
	return c
}

func (b *instrumentBuilder) histogram(name, desc string) metric.Float64Histogram {
	if b.err != nil {
		return nil
	}
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc))
	b.err = err
	return h
}

func newOtelInstruments(mp metric.MeterProvider) (*otelInstruments, error) {
	b := &instrumentBuilder{meter: mp.Meter(defaultServiceName)}
	inst := &otelInstruments{
		httpRequests:     b.counter("http_requests_total", "HTTP requests served"),
		httpLatency:      b.histogram("http_request_duration_ms", "HTTP request latency in milliseconds"),
		providerAttempts: b.counter("provider_attempts_total", "Schedule fetch attempts"),
		providerErrors:   b.counter("provider_errors_total", "Schedule fetch failures"),
		providerLatency:  b.histogram("provider_duration_ms", "Schedule fetch latency in milliseconds"),
		refreshes:        b.counter("scoreboard_refreshes_total", "Scoreboard refreshes by surface and outcome"),
		refreshFailures:  b.counter("scoreboard_refresh_failures_total", "Failed scoreboard refreshes"),
		refreshLatency:   b.histogram("scoreboard_refresh_duration_ms", "Scoreboard refresh latency in milliseconds"),
		pollerCycles:     b.counter("poller_cycles_total", "Periodic refresh cycles"),
		pollerErrors:     b.counter("poller_errors_total", "Periodic refresh cycles with at least one failure"),
		pollerLatency:    b.histogram("poller_cycle_duration_ms", "Periodic refresh cycle latency in milliseconds"),
	}
	if b.err != nil {
		return nil, b.err
	}
	return inst, nil
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func outcomeOf(err error) string {
	if err != nil {
		return "failed"
	}
	return "loaded"
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	set := metric.WithAttributes(
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	)
	ctx := context.Background()
	o.httpRequests.Add(ctx, 1, set)
	o.httpLatency.Record(ctx, ms(duration), set)
}

func (o *otelInstruments) recordProviderAttempt(provider string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	set := metric.WithAttributes(attribute.String(AttrProvider, provider))
	ctx := context.Background()
	o.providerAttempts.Add(ctx, 1, set)
	o.providerLatency.Record(ctx, ms(duration), set)
	if err != nil {
		o.providerErrors.Add(ctx, 1, set)
	}
}

func (o *otelInstruments) recordRefresh(surface string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	ctx := context.Background()
	set := metric.WithAttributes(
		attribute.String(AttrSurface, surface),
		attribute.String(AttrOutcome, outcomeOf(err)),
	)
	o.refreshes.Add(ctx, 1, set)
	o.refreshLatency.Record(ctx, ms(duration), set)
	if err != nil {
		o.refreshFailures.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrSurface, surface)))
	}
}

func (o *otelInstruments) recordPoller(duration time.Duration, err error) {
	if o == nil {
		return
	}
	ctx := context.Background()
	o.pollerCycles.Add(ctx, 1)
	o.pollerLatency.Record(ctx, ms(duration))
	if err != nil {
		o.pollerErrors.Add(ctx, 1)
	}
}
