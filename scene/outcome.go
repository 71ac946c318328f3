package scene

// Outcome carries an update's new value plus zero or more follow-up
// events. The events are re-queued for the next frame; effects are
// data here, never side effects performed during the update.
type Outcome[T any] struct {
	Value  T
	Events []Event
}

// Done wraps a value with no follow-up events.
func Done[T any](v T) Outcome[T] {
	return Outcome[T]{Value: v}
}

// Emit wraps a value together with follow-up events.
func Emit[T any](v T, events ...Event) Outcome[T] {
	return Outcome[T]{Value: v, Events: events}
}
