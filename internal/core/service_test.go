package core

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cleancore/pkg/capability"
	"cleancore/pkg/domain"
)

type captureLogger struct{ calls []string }

func (c *captureLogger) Debug(msg string, _ ...any) { c.calls = append(c.calls, "d:"+msg) }
func (c *captureLogger) Info(msg string, _ ...any)  { c.calls = append(c.calls, "i:"+msg) }
func (c *captureLogger) Warn(msg string, _ ...any)  { c.calls = append(c.calls, "w:"+msg) }
func (c *captureLogger) Error(msg string, _ ...any) { c.calls = append(c.calls, "e:"+msg) }

func (c *captureLogger) has(call string) bool {
	for _, got := range c.calls {
		if got == call {
			return true
		}
	}
	return false
}

type captureMetrics struct {
	ops []string
}

func (c *captureMetrics) Observe(_ context.Context, op string, success bool, _ time.Duration) {
	c.ops = append(c.ops, op+":"+statusLabel(success))
}

type stepClock struct{ t time.Time }

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(time.Millisecond)
	return c.t
}

type warnRule struct{}

func (warnRule) Name() string { return "always_warn" }

func (warnRule) Evaluate(context.Context, Record) (Result, error) {
	return Result{Violations: []Violation{{Rule: "always_warn", Severity: SeverityWarn, Message: "heads up"}}}, nil
}

type brokenRule struct{}

func (brokenRule) Name() string { return "broken" }

func (brokenRule) Evaluate(context.Context, Record) (Result, error) {
	return Result{}, errors.New("rule exploded")
}

type testPlugin struct {
	name    string
	species []capability.Bird
	rules   []Rule
	err     error
}

func (p testPlugin) Name() string    { return p.name }
func (p testPlugin) Version() string { return "1.0.0" }

func (p testPlugin) Register(registry *PluginRegistry) error {
	if p.err != nil {
		return p.err
	}
	for _, bird := range p.species {
		if err := registry.RegisterSpecies(bird); err != nil {
			return err
		}
	}
	for _, rule := range p.rules {
		registry.RegisterRule(rule)
	}
	return nil
}

type wren struct{}

func (wren) Name() string { return "wren" }
func (wren) Eat()         {}
func (wren) Fly() int     { return 5 }

type kiwi struct{}

func (kiwi) Name() string { return "kiwi" }
func (kiwi) Eat()         {}
func (kiwi) Run()         {}

func TestServiceCheckRecordReady(t *testing.T) {
	log := &captureLogger{}
	metrics := &captureMetrics{}
	svc := NewService(nil, WithLogger(log), WithMetrics(metrics))
	res, err := svc.CheckRecord(context.Background(), Product{Name: "Pants", Price: 4, Size: domain.SizeM})
	if err != nil {
		t.Fatalf("check record: %v", err)
	}
	if len(res.Violations) != 0 {
		t.Fatalf("expected no violations, got %+v", res.Violations)
	}
	if len(metrics.ops) != 1 || metrics.ops[0] != "check_record:success" {
		t.Fatalf("unexpected metrics %v", metrics.ops)
	}
	if !log.has("d:operation completed") {
		t.Fatalf("expected debug completion log, got %v", log.calls)
	}
}

func TestServiceCheckRecordBlocking(t *testing.T) {
	log := &captureLogger{}
	metrics := &captureMetrics{}
	svc := NewService(NewDefaultRulesEngine(), WithLogger(log), WithMetrics(metrics))
	res, err := svc.CheckRecord(context.Background(), Product{Price: 4})
	var violation RuleViolationError
	if !errors.As(err, &violation) {
		t.Fatalf("expected RuleViolationError, got %v", err)
	}
	if len(res.Violations) != 1 || res.Violations[0].Field != "name" {
		t.Fatalf("expected name violation, got %+v", res.Violations)
	}
	if metrics.ops[0] != "check_record:error" {
		t.Fatalf("unexpected metrics %v", metrics.ops)
	}
	if !log.has("i:record rejected") {
		t.Fatalf("expected rejection log, got %v", log.calls)
	}
}

func TestServiceCheckRecordWarningsAccepted(t *testing.T) {
	engine := NewDefaultRulesEngine()
	engine.Register(warnRule{})
	log := &captureLogger{}
	svc := NewService(engine, WithLogger(log))
	res, err := svc.CheckRecord(context.Background(), Product{Name: "Pants", Price: 4, Size: domain.SizeM})
	if err != nil {
		t.Fatalf("expected warnings to be accepted, got %v", err)
	}
	if len(res.Violations) != 1 || res.Violations[0].Severity != SeverityWarn {
		t.Fatalf("expected one warning, got %+v", res.Violations)
	}
	if !log.has("w:rule violation") {
		t.Fatalf("expected warning log, got %v", log.calls)
	}
}

func TestServiceCheckRecordErrors(t *testing.T) {
	engine := NewRulesEngine()
	engine.Register(brokenRule{})
	log := &captureLogger{}
	svc := NewService(engine, WithLogger(log))
	if _, err := svc.CheckRecord(context.Background(), Product{}); err == nil || !strings.Contains(err.Error(), "rule exploded") {
		t.Fatalf("expected rule error, got %v", err)
	}
	if _, err := svc.CheckRecord(context.Background(), nil); !errors.Is(err, domain.ErrNilRecord) {
		t.Fatalf("expected ErrNilRecord, got %v", err)
	}
	if !log.has("e:operation failed") {
		t.Fatalf("expected error log, got %v", log.calls)
	}
}

func TestServiceCheckRecordUnsupportedKindLogsFailure(t *testing.T) {
	log := &captureLogger{}
	metrics := &captureMetrics{}
	svc := NewService(nil, WithLogger(log), WithMetrics(metrics))
	_, err := svc.CheckRecord(context.Background(), fieldsRecord{{Name: "payload", Kind: "bytes"}})
	var unsupported domain.ErrUnsupportedKind
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected unsupported kind error, got %v", err)
	}
	var violation RuleViolationError
	if errors.As(err, &violation) {
		t.Fatalf("unsupported kind must not surface as a rule violation")
	}
	if !log.has("e:operation failed") || log.has("i:record rejected") {
		t.Fatalf("expected error-level failure log, got %v", log.calls)
	}
	if len(metrics.ops) != 1 || metrics.ops[0] != "check_record:error" {
		t.Fatalf("unexpected metrics %v", metrics.ops)
	}
}

func TestServiceDescribeProduct(t *testing.T) {
	tracer := NewJSONTracer(nil)
	svc := NewService(nil, WithTracer(tracer))
	got, ok := svc.DescribeProduct(context.Background(), Product{Name: "Blue Large Pants", Price: 10, Size: domain.SizeS})
	if !ok || got != "Blue Large Pants (10), S" {
		t.Fatalf("DescribeProduct = %q,%v", got, ok)
	}
	got, ok = svc.DescribeProduct(context.Background(), Product{Name: "Blue Large Pants", Size: domain.SizeS})
	if ok || got != "" {
		t.Fatalf("expected no rendering, got %q", got)
	}
	entries := tracer.Entries()
	if len(entries) != 2 || entries[0].Status != "success" || entries[1].Status != "error" {
		t.Fatalf("unexpected trace entries %+v", entries)
	}
	if entries[1].Error != "price is zero or negative" {
		t.Fatalf("expected trace to carry the field error, got %q", entries[1].Error)
	}
}

func TestServiceOptionsClock(t *testing.T) {
	clk := &stepClock{t: time.Unix(0, 0)}
	metrics := &durationMetrics{}
	svc := NewService(nil, WithClock(clk), WithMetrics(metrics), WithLogger(nil), WithTracer(nil))
	if _, err := svc.CheckRecord(context.Background(), Product{Name: "a", Price: 1, Size: domain.SizeS}); err != nil {
		t.Fatalf("check: %v", err)
	}
	if metrics.last != time.Millisecond {
		t.Fatalf("expected clock-derived duration of 1ms, got %v", metrics.last)
	}
}

type durationMetrics struct{ last time.Duration }

func (d *durationMetrics) Observe(_ context.Context, _ string, _ bool, duration time.Duration) {
	d.last = duration
}

func TestServiceInstallPlugin(t *testing.T) {
	log := &captureLogger{}
	svc := NewService(nil, WithLogger(log))
	meta, err := svc.InstallPlugin(testPlugin{name: "garden", species: []capability.Bird{wren{}, kiwi{}}, rules: []Rule{warnRule{}}})
	if err != nil {
		t.Fatalf("install: %v", err)
	}
	if meta.Name != "garden" || meta.Version != "1.0.0" || len(meta.Rules) != 1 || len(meta.Species) != 2 {
		t.Fatalf("unexpected metadata %+v", meta)
	}
	if names := svc.Engine().Rules(); len(names) != 2 || names[1] != "always_warn" {
		t.Fatalf("expected plugin rule to be appended, got %v", names)
	}
	species := svc.Species()
	if len(species) != 2 || species[0].Name() != "kiwi" || species[1].Name() != "wren" {
		t.Fatalf("expected species sorted by name, got %v", species)
	}
	set, err := svc.Classify("wren")
	if err != nil || !set.Has(capability.Fly) || set.Has(capability.Run) {
		t.Fatalf("unexpected wren classification %v, %v", set, err)
	}
	var notFound ErrNotFound
	if _, err := svc.Classify("dodo"); !errors.As(err, &notFound) || notFound.Name != "dodo" {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	runners := svc.SpeciesWith(capability.Run)
	if len(runners) != 1 || runners[0].Name() != "kiwi" {
		t.Fatalf("expected kiwi as only runner, got %v", runners)
	}
	if plugins := svc.InstalledPlugins(); len(plugins) != 1 || plugins[0].Name != "garden" {
		t.Fatalf("unexpected installed plugins %+v", plugins)
	}
	if !log.has("i:plugin installed") {
		t.Fatalf("expected install log, got %v", log.calls)
	}
}

func TestServiceInstallPluginRejections(t *testing.T) {
	svc := NewService(nil)
	if _, err := svc.InstallPlugin(nil); err == nil {
		t.Fatalf("expected nil plugin error")
	}
	if _, err := svc.InstallPlugin(testPlugin{name: "bad", err: errors.New("nope")}); err == nil || !strings.Contains(err.Error(), "nope") {
		t.Fatalf("expected register error, got %v", err)
	}
	if _, err := svc.InstallPlugin(testPlugin{name: "garden", species: []capability.Bird{wren{}}}); err != nil {
		t.Fatalf("install: %v", err)
	}
	if _, err := svc.InstallPlugin(testPlugin{name: "garden"}); err == nil {
		t.Fatalf("expected duplicate plugin error")
	}
	if _, err := svc.InstallPlugin(testPlugin{name: "other", species: []capability.Bird{wren{}}}); err == nil {
		t.Fatalf("expected duplicate species error")
	}
	if _, err := svc.InstallPlugin(testPlugin{name: "twice", species: []capability.Bird{kiwi{}, kiwi{}}}); err == nil {
		t.Fatalf("expected duplicate species within plugin to fail")
	}
	if len(svc.Species()) != 1 {
		t.Fatalf("expected failed installs to leave the catalogue untouched")
	}
}

func TestPluginRegistryRejectsInvalidSpecies(t *testing.T) {
	registry := NewPluginRegistry()
	if err := registry.RegisterSpecies(nil); err == nil {
		t.Fatalf("expected nil species error")
	}
	if err := registry.RegisterSpecies(unnamed{}); err == nil {
		t.Fatalf("expected unnamed species error")
	}
	registry.RegisterRule(nil)
	if len(registry.Rules()) != 0 {
		t.Fatalf("expected nil rule to be ignored")
	}
}

type unnamed struct{}

func (unnamed) Name() string { return "" }
func (unnamed) Eat()         {}

func TestNoopLogger(_ *testing.T) {
	logger := noopLogger{}
	logger.Debug("test debug message", "key", "value")
	logger.Info("test info message", "key", "value")
	logger.Warn("test warn message", "key", "value")
	logger.Error("test error message", "key", "value")
}
