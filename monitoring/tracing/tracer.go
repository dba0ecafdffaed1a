// Package tracing sets up the jaeger exporter for opencensus spans.
package tracing

import (
	"contrib.go.opencensus.io/exporter/jaeger"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
)

var log = logrus.WithField("prefix", "tracing")

// Setup creates and initializes a new tracing configuration. The returned function flushes
// buffered spans and must be called before exit.
func Setup(serviceName, processName, endpoint string, sampleFraction float64, enable bool) (func(), error) {
	if !enable {
		trace.ApplyConfig(trace.Config{DefaultSampler: trace.NeverSample()})
		return func() {}, nil
	}

	if serviceName == "" {
		return nil, errors.New("tracing service name cannot be empty")
	}
	if sampleFraction < 0 || sampleFraction > 1 {
		return nil, errors.Errorf("trace sample fraction %f is not within [0, 1]", sampleFraction)
	}

	trace.ApplyConfig(trace.Config{DefaultSampler: trace.ProbabilitySampler(sampleFraction)})

	log.Infof("Starting Jaeger exporter endpoint at address = %s", endpoint)
	exporter, err := jaeger.NewExporter(jaeger.Options{
		CollectorEndpoint: endpoint,
		Process: jaeger.Process{
			ServiceName: serviceName,
			Tags: []jaeger.Tag{
				jaeger.StringTag("process_name", processName),
			},
		},
		OnError: func(err error) {
			log.WithError(err).Debug("Could not export spans")
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create jaeger exporter")
	}
	trace.RegisterExporter(exporter)

	return func() {
		exporter.Flush()
		trace.UnregisterExporter(exporter)
	}, nil
}
