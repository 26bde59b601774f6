package confluence

import (
	"math"
	"sync"

	"BiasScope/internal/domain/models"
	domsvc "BiasScope/internal/domain/service"
)

// DefaultConfluenceThreshold is the minimum raw weighted score a direction
// needs before it can win the bias verdict.
const DefaultConfluenceThreshold = 3

// Option configures the Engine.
type Option func(*Engine)

// WithThreshold sets the confluence threshold.
func WithThreshold(threshold int) Option {
	return func(e *Engine) { e.threshold = threshold }
}

// WithThresholds replaces the evaluator rule table.
func WithThresholds(th Thresholds) Option {
	return func(e *Engine) { e.th = th }
}

// Engine validates a snapshot, fans it out to the five category evaluators,
// merges their signals in a fixed order, and scores the result.
type Engine struct {
	th        Thresholds
	threshold int

	evaluators []domsvc.Evaluator
}

// NewEngine builds an engine with the default rule table and threshold.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		th:        DefaultThresholds(),
		threshold: DefaultConfluenceThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	// Merge order is fixed so equal inputs always produce equal output.
	e.evaluators = []domsvc.Evaluator{
		NewMomentumEvaluator(e.th),
		NewTrendEvaluator(e.th),
		NewVolatilityEvaluator(e.th),
		NewVolumeEvaluator(e.th),
		NewPriceActionEvaluator(e.th),
	}
	return e
}

// Threshold returns the configured confluence threshold.
func (e *Engine) Threshold() int { return e.threshold }

// Validate checks the snapshot preconditions: positive finite prices,
// finite non-negative volume, and every required indicator present and
// finite. It runs before any evaluator so a bad snapshot fails the whole
// analysis instead of silently skipping rules.
func (e *Engine) Validate(snap *models.Snapshot) error {
	prices := []struct {
		name string
		v    float64
	}{
		{"open", snap.Open},
		{"high", snap.High},
		{"low", snap.Low},
		{"close", snap.Close},
	}
	for _, p := range prices {
		if math.IsNaN(p.v) || math.IsInf(p.v, 0) {
			return &InvalidValueError{Field: p.name, Value: p.v, Reason: "not finite"}
		}
		if p.v <= 0 {
			return &InvalidValueError{Field: p.name, Value: p.v, Reason: "price must be positive"}
		}
	}
	if math.IsNaN(snap.Volume) || math.IsInf(snap.Volume, 0) {
		return &InvalidValueError{Field: "volume", Value: snap.Volume, Reason: "not finite"}
	}
	if snap.Volume < 0 {
		return &InvalidValueError{Field: "volume", Value: snap.Volume, Reason: "volume must be non-negative"}
	}

	for _, name := range models.RequiredFields {
		v, ok := snap.Get(name)
		if !ok {
			return &MissingFieldError{Field: name}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &InvalidValueError{Field: name, Value: v, Reason: "not finite"}
		}
	}
	return nil
}

// Evaluate runs the full cycle: validate, evaluate all categories, merge,
// aggregate. The evaluators are pure and independent, so they run
// concurrently; results are merged by evaluator index to keep the output
// order deterministic.
func (e *Engine) Evaluate(snap *models.Snapshot) (*models.ConfluenceSet, models.BiasResult, error) {
	if err := e.Validate(snap); err != nil {
		return nil, models.BiasResult{}, err
	}

	partial := make([]models.ConfluenceSet, len(e.evaluators))
	var wg sync.WaitGroup
	for i, ev := range e.evaluators {
		wg.Add(1)
		go func(i int, ev domsvc.Evaluator) {
			defer wg.Done()
			partial[i] = ev.Evaluate(snap)
		}(i, ev)
	}
	wg.Wait()

	merged := &models.ConfluenceSet{}
	for _, p := range partial {
		merged.Merge(p)
	}

	return merged, Aggregate(merged, e.threshold), nil
}
