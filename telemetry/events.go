// Package telemetry provides frame timing, field statistics and an effect
// event log with CSV output.
package telemetry

// EventType identifies effect lifecycle events.
type EventType uint8

const (
	EventEffectStart EventType = iota
	EventEffectFade
	EventEffectIdle
)

var eventNames = [...]string{
	EventEffectStart: "start",
	EventEffectFade:  "fade",
	EventEffectIdle:  "idle",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// EffectEvent is one row of the effect log.
type EffectEvent struct {
	Frame  int64   `csv:"frame"`
	Time   float64 `csv:"time"`
	Event  string  `csv:"event"`
	Effect string  `csv:"effect"`
}

// NewEffectEvent classifies an effect-change notification. active with a
// kind is a start, inactive with a kind a fade, inactive without one idle.
func NewEffectEvent(frame int64, now float64, active bool, effect string) EffectEvent {
	t := EventEffectIdle
	switch {
	case active:
		t = EventEffectStart
	case effect != "":
		t = EventEffectFade
	}
	return EffectEvent{Frame: frame, Time: now, Event: t.String(), Effect: effect}
}
