package labsh

import (
	"github.com/viant/labsh/model"
	"github.com/viant/labsh/model/types"
	"github.com/viant/labsh/policy"
	"github.com/viant/labsh/service/dao"
	"github.com/viant/labsh/session"
	"github.com/viant/labsh/tracing"
	"github.com/viant/x"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises the lab service.
type Option func(s *Service)

// WithConfig applies a configuration. Options passed after it override the
// corresponding settings.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			clone := *config
			s.config = &clone
		}
	}
}

// WithPolicy sets the sandbox policy, overriding Config.Policy.
func WithPolicy(p *policy.Policy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

// WithStore sets the session record store, overriding Config.Store.
func WithStore(store dao.Service[string, model.Record]) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithSessionOptions lets the caller supply additional options passed to
// session.New.
func WithSessionOptions(opts ...session.Option) Option {
	return func(s *Service) {
		s.sessionOptions = append(s.sessionOptions, opts...)
	}
}

// WithExtensionTypes sets the extension types
func WithExtensionTypes(types ...*x.Type) Option {
	return func(s *Service) {
		s.extensionTypes = append(s.extensionTypes, types...)
	}
}

// WithExtensionServices sets the extension services
func WithExtensionServices(services ...types.Service) Option {
	return func(s *Service) {
		s.extensionServices = append(s.extensionServices, services...)
	}
}

// WithTracing configures OpenTelemetry tracing for the service. If outputFile is empty the
// stdout exporter is used; otherwise traces are written to the supplied file path. The function is
// safe to call multiple times – the first successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		s.config.Tracing = TracingConfig{Enabled: true, ServiceName: serviceName, ServiceVersion: serviceVersion, OutputFile: outputFile}
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter, for example
// OTLP, Jaeger or Zipkin.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		s.tracingInit = func() error {
			return tracing.InitWithExporter(serviceName, serviceVersion, exporter)
		}
	}
}
