package cmd

import "errors"

// ErrNullValue is returned by Optional.Get when no value is present.
var ErrNullValue = errors.New("optional is empty")

// Optional holds the outcome of resolving one argument: either a value
// with reason None, or nothing together with the reason it is missing.
type Optional[T any] struct {
	value   T
	present bool
	reason  FailReason
}

// Of builds an Optional from a possibly nil value. A non-nil value is always
// present with reason None. A nil value is absent with the given reason; None
// is not a valid reason for an absent value and is turned into ParsedNull.
func Of[T any](value *T, reason FailReason) Optional[T] {
	if value != nil {
		return Present(*value)
	}
	return Absent[T](reason)
}

// Present returns an Optional holding v.
func Present[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true, reason: None}
}

// Absent returns an empty Optional carrying reason.
func Absent[T any](reason FailReason) Optional[T] {
	if reason == None {
		reason = ParsedNull
	}
	return Optional[T]{reason: reason}
}

func (o Optional[T]) IsPresent() bool { return o.present }

func (o Optional[T]) Reason() FailReason { return o.reason }

// Get returns the value, or ErrNullValue when the Optional is empty.
func (o Optional[T]) Get() (T, error) {
	if !o.present {
		var zero T
		return zero, ErrNullValue
	}
	return o.value, nil
}

// MustGet returns the value and panics when the Optional is empty.
func (o Optional[T]) MustGet() T {
	v, err := o.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// OrDefault returns the value if present, def otherwise.
func (o Optional[T]) OrDefault(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// IfPresent calls fn with the value when present. The returned RestAction
// lets the caller handle the absent case with OrElse.
func (o Optional[T]) IfPresent(fn func(T)) RestAction {
	if o.present {
		fn(o.value)
		return RestAction{present: true, reason: None}
	}
	return RestAction{reason: o.reason}
}

// RestAction is the continuation of IfPresent.
type RestAction struct {
	present bool
	reason  FailReason
}

func (a RestAction) WasValuePresent() bool { return a.present }

// OrElse calls fn with the fail reason when the value was absent.
func (a RestAction) OrElse(fn func(FailReason)) {
	if !a.present {
		fn(a.reason)
	}
}

// Map transforms a present value with fn. An absent Optional maps to an
// absent Optional with the same reason.
func Map[T, U any](o Optional[T], fn func(T) U) Optional[U] {
	if !o.present {
		return Absent[U](o.reason)
	}
	return Present(fn(o.value))
}
