package fieldval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldval"
	"github.com/dmitrymomot/fieldval/pkg/notifier"
)

// spyChecker records whether its algorithm ran and returns canned results.
type spyChecker struct {
	calls     int
	results   []fieldval.Result
	err       error
	subFields []string
}

func (s *spyChecker) Check(value any) ([]fieldval.Result, error) {
	s.calls++
	return s.results, s.err
}

func (s *spyChecker) SubFields() []string { return s.subFields }

// recordingListener collects every outcome it receives.
type recordingListener struct {
	outcomes []fieldval.Outcome
}

func (r *recordingListener) HandleOutcome(o fieldval.Outcome) {
	r.outcomes = append(r.outcomes, o)
}

// listeningSource doubles as a lookup source and a listener.
type listeningSource struct {
	recordingListener
	data map[string]any
}

func (l *listeningSource) Get(key string) (any, bool) {
	v, ok := l.data[key]
	return v, ok
}

func TestValidator_Validate(t *testing.T) {
	t.Run("passes explicit value to the checker", func(t *testing.T) {
		spy := &spyChecker{}
		v := fieldval.New(spy, fieldval.WithField("amount"))

		outcome, err := v.Validate(fieldval.WithValue("42"))
		require.NoError(t, err)
		assert.Equal(t, fieldval.Valid, outcome.Kind)
		assert.Equal(t, "amount", outcome.Field)
		assert.Equal(t, 1, spy.calls)
	})

	t.Run("empty required value fails with a single requiredField result", func(t *testing.T) {
		spy := &spyChecker{}
		v := fieldval.New(spy)

		outcome, err := v.Validate(fieldval.WithValue("   "))
		require.NoError(t, err)
		assert.Equal(t, fieldval.Invalid, outcome.Kind)
		require.Len(t, outcome.Results, 1)
		assert.True(t, outcome.Results[0].IsError)
		assert.Equal(t, fieldval.CodeRequiredField, outcome.Results[0].Code)
		assert.Equal(t, "This field is required.", outcome.Results[0].Message)
		assert.Equal(t, 0, spy.calls, "algorithm must not run on an empty value")
	})

	t.Run("empty optional value is valid and skips the algorithm", func(t *testing.T) {
		spy := &spyChecker{}
		v := fieldval.New(spy, fieldval.Optional())

		outcome, err := v.Validate(fieldval.WithValue(""))
		require.NoError(t, err)
		assert.Equal(t, fieldval.Valid, outcome.Kind)
		assert.Empty(t, outcome.Results)
		assert.Equal(t, 0, spy.calls)
	})

	t.Run("absent optional value is valid without notifying", func(t *testing.T) {
		spy := &spyChecker{}
		var seen []fieldval.Outcome
		v := fieldval.New(spy, fieldval.Optional())
		v.Subscribe(func(o fieldval.Outcome) { seen = append(seen, o) })

		outcome, err := v.Validate(fieldval.WithValue(nil))
		require.NoError(t, err)
		assert.Equal(t, fieldval.Valid, outcome.Kind)
		assert.Equal(t, 0, spy.calls)
		assert.Empty(t, seen)
	})

	t.Run("custom required message overrides the default and reset restores it", func(t *testing.T) {
		v := fieldval.New(&spyChecker{})
		v.RequiredFieldError = "Please fill this in."

		outcome, err := v.Validate(fieldval.WithValue(""))
		require.NoError(t, err)
		assert.Equal(t, "Please fill this in.", outcome.Results[0].Message)

		v.RequiredFieldError = ""
		outcome, err = v.Validate(fieldval.WithValue(""))
		require.NoError(t, err)
		assert.Equal(t, "This field is required.", outcome.Results[0].Message)
	})

	t.Run("disabled validator is inert", func(t *testing.T) {
		spy := &spyChecker{}
		var seen []fieldval.Outcome
		v := fieldval.New(spy, fieldval.Disabled())
		v.Subscribe(func(o fieldval.Outcome) { seen = append(seen, o) })

		outcome, err := v.Validate(fieldval.WithValue("anything"))
		require.NoError(t, err)
		assert.Equal(t, fieldval.Valid, outcome.Kind)
		assert.Empty(t, outcome.Results)
		assert.Equal(t, 0, spy.calls)
		assert.Empty(t, seen)
	})

	t.Run("re-enabling restores full behavior", func(t *testing.T) {
		spy := &spyChecker{results: []fieldval.Result{
			{IsError: true, Code: "boom", Message: "boom"},
		}}
		v := fieldval.New(spy, fieldval.Disabled())

		outcome, err := v.Validate(fieldval.WithValue("x"))
		require.NoError(t, err)
		assert.Equal(t, fieldval.Valid, outcome.Kind)

		v.Enabled = true
		outcome, err = v.Validate(fieldval.WithValue("x"))
		require.NoError(t, err)
		assert.Equal(t, fieldval.Invalid, outcome.Kind)
		assert.Equal(t, 1, spy.calls)
	})

	t.Run("configuration errors from the checker propagate", func(t *testing.T) {
		spy := &spyChecker{err: fieldval.ErrInvalidFormatChars}
		v := fieldval.New(spy)

		_, err := v.Validate(fieldval.WithValue("x"))
		assert.ErrorIs(t, err, fieldval.ErrInvalidFormatChars)
	})

	t.Run("repeated validation of the same value yields equal outcomes", func(t *testing.T) {
		v := fieldval.New(fieldval.NewEmail(), fieldval.WithField("email"))

		first, err := v.Validate(fieldval.WithValue("not-an-email"))
		require.NoError(t, err)
		second, err := v.Validate(fieldval.WithValue("not-an-email"))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestValidator_Reconcile(t *testing.T) {
	t.Run("placeholders complete the declared subfields on failure", func(t *testing.T) {
		spy := &spyChecker{
			subFields: []string{"day", "month", "year"},
			results: []fieldval.Result{
				{IsError: true, SubField: "month", Code: "wrongMonth", Message: "bad"},
			},
		}
		v := fieldval.New(spy)

		outcome, err := v.Validate(fieldval.WithValue("13/31/1989"))
		require.NoError(t, err)
		require.Len(t, outcome.Results, 3)
		assert.Equal(t, "month", outcome.Results[0].SubField)
		assert.True(t, outcome.Results[0].IsError)
		assert.Equal(t, "day", outcome.Results[1].SubField)
		assert.False(t, outcome.Results[1].IsError)
		assert.Equal(t, "year", outcome.Results[2].SubField)
		assert.False(t, outcome.Results[2].IsError)
	})

	t.Run("valid outcomes drop results unless the checker keeps them", func(t *testing.T) {
		spy := &spyChecker{results: []fieldval.Result{{SubField: "cardNumber"}}}
		v := fieldval.New(spy)

		outcome, err := v.Validate(fieldval.WithValue("x"))
		require.NoError(t, err)
		assert.Equal(t, fieldval.Valid, outcome.Kind)
		assert.Empty(t, outcome.Results)
	})
}

func TestValidator_ValueResolution(t *testing.T) {
	t.Run("value function takes precedence over the source", func(t *testing.T) {
		v := fieldval.New(fieldval.NewStringLength(),
			fieldval.WithSource(map[string]any{"name": "from source"}, "name"),
			fieldval.WithValueFunc(func() any { return "from func" }),
		)
		sl := v.Checker().(*fieldval.StringLength)
		sl.MaxLength = len("from func")

		outcome, err := v.Validate()
		require.NoError(t, err)
		assert.Equal(t, fieldval.Valid, outcome.Kind)
	})

	t.Run("resolves a dotted property path from the source", func(t *testing.T) {
		source := map[string]any{
			"billing": map[string]any{"zip": "12345"},
		}
		v := fieldval.New(fieldval.NewZipCode(), fieldval.WithSource(source, "billing.zip"))

		outcome, err := v.Validate()
		require.NoError(t, err)
		assert.Equal(t, fieldval.Valid, outcome.Kind)
	})

	t.Run("string source is a configuration error", func(t *testing.T) {
		v := fieldval.New(&spyChecker{}, fieldval.WithSource("oops", "field"))

		_, err := v.Validate()
		assert.ErrorIs(t, err, fieldval.ErrStringSource)
	})

	t.Run("property without a source is a configuration error", func(t *testing.T) {
		v := fieldval.New(&spyChecker{})
		v.Property = "field"

		_, err := v.Validate()
		assert.ErrorIs(t, err, fieldval.ErrMissingSource)
	})

	t.Run("source without a property is a configuration error", func(t *testing.T) {
		v := fieldval.New(&spyChecker{})
		v.Source = map[string]any{}

		_, err := v.Validate()
		assert.ErrorIs(t, err, fieldval.ErrMissingProperty)
	})

	t.Run("unresolvable path counts as an absent value", func(t *testing.T) {
		v := fieldval.New(&spyChecker{},
			fieldval.WithSource(map[string]any{}, "missing.path"),
			fieldval.Optional(),
		)

		outcome, err := v.Validate()
		require.NoError(t, err)
		assert.Equal(t, fieldval.Valid, outcome.Kind)
	})

	t.Run("nothing bound resolves to an absent value", func(t *testing.T) {
		v := fieldval.New(&spyChecker{})

		outcome, err := v.Validate()
		require.NoError(t, err)
		assert.Equal(t, fieldval.Invalid, outcome.Kind)
		require.Len(t, outcome.Results, 1)
		assert.Equal(t, fieldval.CodeRequiredField, outcome.Results[0].Code)
	})
}

func TestValidator_Notification(t *testing.T) {
	t.Run("explicit listener receives valid and invalid outcomes", func(t *testing.T) {
		listener := &recordingListener{}
		v := fieldval.New(fieldval.NewZipCode(), fieldval.WithListener(listener))

		_, err := v.Validate(fieldval.WithValue("12345"))
		require.NoError(t, err)
		_, err = v.Validate(fieldval.WithValue("1234"))
		require.NoError(t, err)

		require.Len(t, listener.outcomes, 2)
		assert.Equal(t, fieldval.Valid, listener.outcomes[0].Kind)
		assert.Equal(t, fieldval.Invalid, listener.outcomes[1].Kind)
	})

	t.Run("listening source receives outcomes when no listener is set", func(t *testing.T) {
		source := &listeningSource{data: map[string]any{"zip": "12345"}}
		v := fieldval.New(fieldval.NewZipCode(), fieldval.WithSource(source, "zip"))

		_, err := v.Validate()
		require.NoError(t, err)
		require.Len(t, source.outcomes, 1)
		assert.Equal(t, fieldval.Valid, source.outcomes[0].Kind)
	})

	t.Run("explicit listener shadows the listening source", func(t *testing.T) {
		source := &listeningSource{data: map[string]any{"zip": "12345"}}
		listener := &recordingListener{}
		v := fieldval.New(fieldval.NewZipCode(),
			fieldval.WithSource(source, "zip"),
			fieldval.WithListener(listener),
		)

		_, err := v.Validate()
		require.NoError(t, err)
		assert.Len(t, listener.outcomes, 1)
		assert.Empty(t, source.outcomes)
	})

	t.Run("subscribers are notified in registration order", func(t *testing.T) {
		v := fieldval.New(fieldval.NewZipCode())
		var order []string
		v.Subscribe(func(fieldval.Outcome) { order = append(order, "first") })
		v.Subscribe(func(fieldval.Outcome) { order = append(order, "second") })

		_, err := v.Validate(fieldval.WithValue("12345"))
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("cancel removes a subscriber", func(t *testing.T) {
		v := fieldval.New(fieldval.NewZipCode())
		calls := 0
		cancel := v.Subscribe(func(fieldval.Outcome) { calls++ })

		_, err := v.Validate(fieldval.WithValue("12345"))
		require.NoError(t, err)
		cancel()
		_, err = v.Validate(fieldval.WithValue("12345"))
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("suppressed validation computes the outcome silently", func(t *testing.T) {
		listener := &recordingListener{}
		v := fieldval.New(fieldval.NewZipCode(), fieldval.WithListener(listener))

		outcome, err := v.Validate(fieldval.WithValue("1234"), fieldval.Suppressed())
		require.NoError(t, err)
		assert.Equal(t, fieldval.Invalid, outcome.Kind)
		assert.Empty(t, listener.outcomes)
	})
}

func TestValidator_Triggers(t *testing.T) {
	t.Run("bound trigger re-validates on the event", func(t *testing.T) {
		bus := notifier.NewBus()
		listener := &recordingListener{}
		v := fieldval.New(fieldval.NewZipCode(),
			fieldval.WithValueFunc(func() any { return "12345" }),
			fieldval.WithListener(listener),
		)
		v.BindTrigger(bus, "change")

		bus.Publish("change", nil)
		bus.Publish("change", nil)
		assert.Len(t, listener.outcomes, 2)
	})

	t.Run("rebinding cancels the previous binding", func(t *testing.T) {
		bus := notifier.NewBus()
		listener := &recordingListener{}
		v := fieldval.New(fieldval.NewZipCode(),
			fieldval.WithValueFunc(func() any { return "12345" }),
			fieldval.WithListener(listener),
		)
		v.BindTrigger(bus, "change")
		v.BindTrigger(bus, "blur")

		bus.Publish("change", nil)
		assert.Empty(t, listener.outcomes)
		bus.Publish("blur", nil)
		assert.Len(t, listener.outcomes, 1)
	})

	t.Run("unbind stops triggered validation", func(t *testing.T) {
		bus := notifier.NewBus()
		listener := &recordingListener{}
		v := fieldval.New(fieldval.NewZipCode(),
			fieldval.WithValueFunc(func() any { return "12345" }),
			fieldval.WithListener(listener),
		)
		v.BindTrigger(bus, "change")
		v.UnbindTrigger()

		bus.Publish("change", nil)
		assert.Empty(t, listener.outcomes)
	})
}

func TestValidateAll(t *testing.T) {
	t.Run("returns only failing outcomes in input order", func(t *testing.T) {
		good := fieldval.New(fieldval.NewZipCode(),
			fieldval.WithField("zip"),
			fieldval.WithValueFunc(func() any { return "12345" }),
		)
		badPhone := fieldval.New(fieldval.NewPhone(),
			fieldval.WithField("phone"),
			fieldval.WithValueFunc(func() any { return "555-1234" }),
		)
		badEmail := fieldval.New(fieldval.NewEmail(),
			fieldval.WithField("email"),
			fieldval.WithValueFunc(func() any { return "no-at-sign" }),
		)

		failed, err := fieldval.ValidateAll(good, badPhone, badEmail)
		require.NoError(t, err)
		require.Len(t, failed, 2)
		assert.Equal(t, "phone", failed[0].Field)
		assert.Equal(t, "email", failed[1].Field)
	})

	t.Run("skips nil and disabled validators", func(t *testing.T) {
		spy := &spyChecker{}
		disabled := fieldval.New(spy, fieldval.Disabled())

		failed, err := fieldval.ValidateAll(nil, disabled)
		require.NoError(t, err)
		assert.Empty(t, failed)
		assert.Equal(t, 0, spy.calls)
	})

	t.Run("aborts on the first configuration error", func(t *testing.T) {
		bad := fieldval.New(&spyChecker{}, fieldval.WithSource("oops", "field"))
		after := &spyChecker{}

		_, err := fieldval.ValidateAll(bad, fieldval.New(after))
		assert.ErrorIs(t, err, fieldval.ErrStringSource)
		assert.Equal(t, 0, after.calls)
	})
}
