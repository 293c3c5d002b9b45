package fieldval

import (
	"strings"

	"github.com/dmitrymomot/fieldval/pkg/lookup"
	"github.com/dmitrymomot/fieldval/pkg/notifier"
)

// Listener receives outcomes from a validator. Both valid and invalid
// outcomes route to the same handler; inspect Outcome.Kind to tell them
// apart.
type Listener interface {
	HandleOutcome(Outcome)
}

// EventSource is the trigger boundary: anything that can notify a handler
// when a named event fires. pkg/notifier.Bus implements it for in-process
// use; UI adapters implement it over their own event systems.
type EventSource interface {
	Subscribe(event string, handler func(any)) (cancel func())
}

// Validator orchestrates one field's validation lifecycle: value
// resolution, the required-field check, delegation to a Checker, subfield
// reconciliation, and listener notification. Configuration fields may be
// mutated between calls and take effect on the next Validate.
//
// A Validator holds no state across calls beyond configuration and listener
// registrations. It is not safe for concurrent mutation; callers on
// multi-goroutine hosts must serialize access per instance.
type Validator struct {
	Localizer

	// Enabled gates the whole validator. When false, Validate computes
	// nothing, notifies nobody, and returns a valid outcome with no
	// results. Default true.
	Enabled bool

	// Required rejects empty values with a requiredField error. When
	// false, an absent or empty value is trivially valid and the checker
	// never runs. Default true.
	Required bool

	// Field names the validated field on outcomes.
	Field string

	// RequiredFieldError overrides the requiredField message. Empty
	// restores the default.
	RequiredFieldError string

	// ValueFunc, when set, supplies the current value and takes
	// precedence over Source/Property.
	ValueFunc func() any

	// Source and Property locate the current value in structured data via
	// dotted-path lookup. Both must be set together; Source must not be a
	// primitive string. A path that does not resolve yields an absent
	// value, not an error.
	Source   any
	Property string

	// Listener is the explicit notification target. When nil and Source
	// implements Listener, Source receives the outcomes instead.
	Listener Listener

	checker       Checker
	outcomes      *notifier.Notifier[Outcome]
	cancelTrigger func()
}

// Option configures a Validator at construction.
type Option func(*Validator)

// WithField names the field reported on outcomes.
func WithField(name string) Option {
	return func(v *Validator) { v.Field = name }
}

// Optional marks the field as not required.
func Optional() Option {
	return func(v *Validator) { v.Required = false }
}

// Disabled constructs the validator in the inert state.
func Disabled() Option {
	return func(v *Validator) { v.Enabled = false }
}

// WithSource binds a structured-data source and the dotted property path of
// the value within it.
func WithSource(source any, property string) Option {
	return func(v *Validator) {
		v.Source = source
		v.Property = property
	}
}

// WithValueFunc binds a pull function supplying the current value.
func WithValueFunc(fn func() any) Option {
	return func(v *Validator) { v.ValueFunc = fn }
}

// WithListener sets the explicit notification target.
func WithListener(l Listener) Option {
	return func(v *Validator) { v.Listener = l }
}

// New creates a Validator around a checker. Validators are enabled and
// required by default.
func New(checker Checker, opts ...Option) *Validator {
	v := &Validator{
		Enabled:  true,
		Required: true,
		checker:  checker,
		outcomes: notifier.New[Outcome](),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Checker returns the wrapped checker, for callers that constructed the
// validator indirectly and need to reconfigure the algorithm.
func (v *Validator) Checker() Checker {
	return v.checker
}

// Subscribe registers a handler for every non-suppressed outcome and
// returns a cancel function removing it.
func (v *Validator) Subscribe(fn func(Outcome)) (cancel func()) {
	return v.outcomes.Subscribe(fn)
}

// BindTrigger re-validates automatically whenever the named event fires on
// src. Rebinding removes the previous binding first; a nil src just
// unbinds. Configuration errors during triggered validation are discarded.
func (v *Validator) BindTrigger(src EventSource, event string) {
	v.UnbindTrigger()
	if src == nil {
		return
	}
	v.cancelTrigger = src.Subscribe(event, func(any) {
		_, _ = v.Validate()
	})
}

// UnbindTrigger removes the current trigger binding, if any.
func (v *Validator) UnbindTrigger() {
	if v.cancelTrigger != nil {
		v.cancelTrigger()
		v.cancelTrigger = nil
	}
}

// ValidateOption adjusts a single Validate call.
type ValidateOption func(*validateParams)

type validateParams struct {
	value    any
	hasValue bool
	suppress bool
}

// WithValue validates the given value instead of resolving one from the
// bound source.
func WithValue(value any) ValidateOption {
	return func(p *validateParams) {
		p.value = value
		p.hasValue = true
	}
}

// Suppressed computes the outcome without notifying listeners.
func Suppressed() ValidateOption {
	return func(p *validateParams) { p.suppress = true }
}

// Validate resolves the current value, runs the checker, and returns the
// outcome, notifying listeners unless suppressed. The error return carries
// only configuration mistakes; data-dependent failures are always expressed
// in the outcome.
func (v *Validator) Validate(opts ...ValidateOption) (Outcome, error) {
	var p validateParams
	for _, opt := range opts {
		opt(&p)
	}

	value := p.value
	if !p.hasValue {
		resolved, err := v.resolveValue()
		if err != nil {
			return Outcome{}, err
		}
		value = resolved
	}

	// An absent optional value is trivially valid and notifies nobody.
	if value == nil && !v.Required {
		return Outcome{Kind: Valid, Field: v.Field}, nil
	}

	outcome, err := v.run(value)
	if err != nil {
		return Outcome{}, err
	}

	if v.Enabled && !p.suppress {
		v.notify(outcome)
	}
	return outcome, nil
}

// run performs the required-field check, the checker delegation, and the
// subfield reconciliation.
func (v *Validator) run(value any) (Outcome, error) {
	if !v.Enabled {
		return Outcome{Kind: Valid, Field: v.Field}, nil
	}

	// Leading and trailing ASCII spaces do not count as content.
	trimmed := strings.Trim(stringify(value), " ")
	if trimmed == "" {
		if v.Required {
			msg := v.message("", CodeRequiredField, v.RequiredFieldError, nil)
			return Outcome{
				Kind:    Invalid,
				Field:   v.Field,
				Results: []Result{fail("", CodeRequiredField, msg)},
			}, nil
		}
		return Outcome{Kind: Valid, Field: v.Field}, nil
	}

	results, err := v.checker.Check(value)
	if err != nil {
		return Outcome{}, err
	}
	return v.reconcile(results), nil
}

// reconcile derives the outcome kind and guarantees one entry per declared
// subfield on the invalid path: error results keep their order, then
// non-error placeholders are appended in declared subfield order.
func (v *Validator) reconcile(results []Result) Outcome {
	failed := false
	for _, r := range results {
		if r.IsError {
			failed = true
			break
		}
	}

	if !failed {
		outcome := Outcome{Kind: Valid, Field: v.Field}
		if keeper, ok := v.checker.(validResultKeeper); ok && keeper.keepsValidResults() {
			outcome.Results = results
		}
		return outcome
	}

	seen := make(map[string]bool, len(results))
	for _, r := range results {
		seen[r.SubField] = true
	}
	for _, sub := range v.checker.SubFields() {
		if !seen[sub] {
			results = append(results, pass(sub))
		}
	}

	return Outcome{Kind: Invalid, Field: v.Field, Results: results}
}

// resolveValue pulls the current value from the bound source, preferring
// the pull function over the source/property pair. Nothing bound resolves
// to an absent value.
func (v *Validator) resolveValue() (any, error) {
	if v.ValueFunc != nil {
		return v.ValueFunc(), nil
	}

	if _, isString := v.Source.(string); isString {
		return nil, ErrStringSource
	}
	if v.Source == nil && v.Property != "" {
		return nil, ErrMissingSource
	}
	if v.Source != nil && v.Property == "" {
		return nil, ErrMissingProperty
	}
	if v.Source == nil {
		return nil, nil
	}

	value, ok := lookup.Resolve(v.Source, v.Property)
	if !ok {
		return nil, nil
	}
	return value, nil
}

// notify fans the outcome out to the explicit listener (or the source when
// it can listen) and to every subscribed handler, synchronously.
func (v *Validator) notify(outcome Outcome) {
	if v.Listener != nil {
		v.Listener.HandleOutcome(outcome)
	} else if l, ok := v.Source.(Listener); ok {
		l.HandleOutcome(outcome)
	}
	v.outcomes.Notify(outcome)
}

// ValidateAll runs Validate on every enabled validator in order and returns
// only the failing outcomes, preserving input order. The first
// configuration error aborts the batch.
func ValidateAll(validators ...*Validator) ([]Outcome, error) {
	var failed []Outcome
	for _, v := range validators {
		if v == nil || !v.Enabled {
			continue
		}
		outcome, err := v.Validate()
		if err != nil {
			return nil, err
		}
		if outcome.Kind != Valid {
			failed = append(failed, outcome)
		}
	}
	return failed, nil
}
