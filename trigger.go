package overlay

import (
	"errors"
	"fmt"
	"strings"
)

// Trigger selects the interaction that opens an overlay.
type Trigger int

const (
	// TriggerPress opens on click or mousedown.
	TriggerPress Trigger = iota
	// TriggerHover opens after the pointer rests on the target.
	TriggerHover
)

// ErrUnknownTrigger is returned when a trigger name cannot be parsed.
var ErrUnknownTrigger = errors.New("unknown trigger")

// String returns the trigger name.
func (t Trigger) String() string {
	switch t {
	case TriggerPress:
		return "press"
	case TriggerHover:
		return "hover"
	}
	return fmt.Sprintf("Trigger(%d)", int(t))
}

// ParseTrigger parses "press" (or "pressed", "click") and "hover".
func ParseTrigger(s string) (Trigger, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "press", "pressed", "click":
		return TriggerPress, nil
	case "hover":
		return TriggerHover, nil
	}
	return TriggerPress, fmt.Errorf("%w: %q", ErrUnknownTrigger, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Trigger) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Trigger) UnmarshalText(text []byte) error {
	v, err := ParseTrigger(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
