package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cleancore/pkg/capability"
	"cleancore/pkg/domain"
)

// Service evaluates records against the rules engine and keeps the catalogue
// of bird species contributed by plugins.
type Service struct {
	engine  *RulesEngine
	plugins map[string]PluginMetadata
	species map[string]capability.Bird
	logger  Logger
	metrics MetricsRecorder
	tracer  Tracer
	clock   Clock
}

// Option customises a Service.
type Option func(*Service)

// WithLogger sets the service logger. Nil keeps the no-op logger.
func WithLogger(logger Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder. Nil keeps the no-op recorder.
func WithMetrics(metrics MetricsRecorder) Option {
	return func(s *Service) {
		if metrics != nil {
			s.metrics = metrics
		}
	}
}

// WithTracer sets the tracer. Nil keeps the no-op tracer.
func WithTracer(tracer Tracer) Option {
	return func(s *Service) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// WithClock overrides the clock used for timing operations.
func WithClock(clock Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewService constructs a service around the engine. A nil engine uses
// NewDefaultRulesEngine.
func NewService(engine *RulesEngine, opts ...Option) *Service {
	if engine == nil {
		engine = NewDefaultRulesEngine()
	}
	s := &Service{
		engine:  engine,
		plugins: make(map[string]PluginMetadata),
		species: make(map[string]capability.Bird),
		logger:  noopLogger{},
		metrics: noopMetrics{},
		tracer:  noopTracer{},
		clock:   domain.ClockFunc(time.Now),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Engine returns the rules engine backing the service.
func (s *Service) Engine() *RulesEngine {
	return s.engine
}

// CheckRecord evaluates every rule against the record. A RuleViolationError is
// returned alongside the result when any violation blocks.
func (s *Service) CheckRecord(ctx context.Context, record Record) (Result, error) {
	var res Result
	err := s.run(ctx, "check_record", func(ctx context.Context) error {
		if record == nil {
			return domain.ErrNilRecord
		}
		var err error
		res, err = s.engine.Evaluate(ctx, record)
		if err != nil {
			return err
		}
		for _, v := range res.Violations {
			if v.Severity == SeverityBlock {
				continue
			}
			s.logger.Warn("rule violation", "rule", v.Rule, "entity", string(v.Entity), "field", v.Field, "message", v.Message)
		}
		if res.HasBlocking() {
			return RuleViolationError{Result: res}
		}
		return nil
	})
	return res, err
}

// DescribeProduct renders the product when it validates.
func (s *Service) DescribeProduct(ctx context.Context, product Product) (string, bool) {
	var (
		out string
		ok  bool
	)
	_ = s.run(ctx, "describe_product", func(context.Context) error {
		out, ok = Describe(product)
		if !ok {
			_, err := Validate(product)
			return err
		}
		return nil
	})
	return out, ok
}

func (s *Service) run(ctx context.Context, operation string, fn func(context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, operation)
	started := s.clock.Now()
	err := fn(ctx)
	duration := s.clock.Now().Sub(started)
	span.End(err)
	s.metrics.Observe(ctx, operation, err == nil, duration)

	var violation RuleViolationError
	switch {
	case err == nil:
		s.logger.Debug("operation completed", "operation", operation, "duration", duration)
	case errors.As(err, &violation), errors.Is(err, domain.ErrFieldNotPresent):
		s.logger.Info("record rejected", "operation", operation, "error", err.Error())
	default:
		s.logger.Error("operation failed", "operation", operation, "error", err.Error())
	}
	return err
}

// ErrNotFound is returned when a catalogue lookup fails.
type ErrNotFound struct {
	Kind string
	Name string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.Name)
}

// InstallPlugin registers a plugin, wiring its rules into the active engine
// and its species into the catalogue.
func (s *Service) InstallPlugin(plugin Plugin) (PluginMetadata, error) {
	if plugin == nil {
		return PluginMetadata{}, fmt.Errorf("plugin cannot be nil")
	}
	name := plugin.Name()
	if _, exists := s.plugins[name]; exists {
		return PluginMetadata{}, fmt.Errorf("plugin %s already installed", name)
	}
	registry := NewPluginRegistry()
	if err := plugin.Register(registry); err != nil {
		return PluginMetadata{}, fmt.Errorf("register plugin %s: %w", name, err)
	}
	species := registry.Species()
	for _, bird := range species {
		if _, exists := s.species[bird.Name()]; exists {
			return PluginMetadata{}, fmt.Errorf("plugin %s: species %s already installed", name, bird.Name())
		}
	}

	meta := PluginMetadata{Name: name, Version: plugin.Version()}
	for _, rule := range registry.Rules() {
		s.engine.Register(rule)
		meta.Rules = append(meta.Rules, rule.Name())
	}
	for _, bird := range species {
		s.species[bird.Name()] = bird
		meta.Species = append(meta.Species, bird.Name())
	}
	s.plugins[name] = meta
	s.logger.Info("plugin installed", "plugin", name, "version", meta.Version, "rules", len(meta.Rules), "species", len(meta.Species))
	return meta, nil
}

// InstalledPlugins returns metadata for installed plugins.
func (s *Service) InstalledPlugins() []PluginMetadata {
	out := make([]PluginMetadata, 0, len(s.plugins))
	for _, meta := range s.plugins {
		out = append(out, meta)
	}
	sortPluginMetadata(out)
	return out
}

// Species returns installed species sorted by name.
func (s *Service) Species() []capability.Bird {
	out := make([]capability.Bird, 0, len(s.species))
	for _, bird := range s.species {
		out = append(out, bird)
	}
	sortSpecies(out)
	return out
}

// Classify returns the capability set of an installed species.
func (s *Service) Classify(name string) (capability.Set, error) {
	bird, ok := s.species[name]
	if !ok {
		return nil, ErrNotFound{Kind: "species", Name: name}
	}
	return capability.Capabilities(bird), nil
}

// SpeciesWith returns installed species holding capability c, sorted by name.
func (s *Service) SpeciesWith(c capability.Capability) []capability.Bird {
	var out []capability.Bird
	for _, bird := range s.Species() {
		if capability.Has(bird, c) {
			out = append(out, bird)
		}
	}
	return out
}
