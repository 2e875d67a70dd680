package overlay

import (
	"time"

	"github.com/charmbracelet/log"
)

// SourceOptions configures the floating element.
type SourceOptions struct {
	// ClassNames are added to the source on creation.
	ClassNames []string
	// MarkerClass identifies overlay sources to the outside-click rule.
	// Defaults to SourceClass.
	MarkerClass string
}

// TargetOptions configures the trigger element.
type TargetOptions struct {
	// ClassNames are added to the target on creation.
	ClassNames []string
	// ListenerTarget receives the trigger listeners instead of the target.
	ListenerTarget *Node
	// EventTypes lists the press events to listen for. Click wins over
	// mousedown when both are present. Defaults to mousedown.
	EventTypes []EventType
	// Events are extra listeners bound on the listener target.
	Events map[EventType]Listener
}

type controllerConfig struct {
	trigger        Trigger
	hoverInTimeout time.Duration
	modifiers      Modifiers

	source SourceOptions
	target TargetOptions

	container       string
	overlaysToClose []string
	excluded        []string

	shouldOpen       func() bool
	shouldClose      func() bool
	childOverlayOpen func() bool
	cursor           func() (Point, bool)
	isOutside        func(*Event) bool
	onPosition       func(PlacementResult)

	scheduler  Scheduler
	containers *Containers
	logger     *log.Logger
}

func defaultControllerConfig() controllerConfig {
	return controllerConfig{
		trigger:        TriggerPress,
		hoverInTimeout: DefaultHoverInTimeout,
		modifiers:      NewModifiers(),
		source:         SourceOptions{MarkerClass: SourceClass},
		target:         TargetOptions{EventTypes: []EventType{EventMouseDown}},
		container:      OverlayContainer,
	}
}

// Option configures a Controller.
type Option func(*controllerConfig)

// WithTrigger sets the opening interaction.
func WithTrigger(t Trigger) Option {
	return func(c *controllerConfig) {
		c.trigger = t
	}
}

// WithHoverInTimeout sets the delay between hover-in and opening.
func WithHoverInTimeout(d time.Duration) Option {
	return func(c *controllerConfig) {
		if d >= 0 {
			c.hoverInTimeout = d
		}
	}
}

// WithModifiers applies modifier options over the defaults.
func WithModifiers(opts ...ModifierOption) Option {
	return func(c *controllerConfig) {
		c.modifiers = c.modifiers.With(opts...)
	}
}

// WithSourceOptions sets the source element options.
func WithSourceOptions(o SourceOptions) Option {
	return func(c *controllerConfig) {
		if o.MarkerClass == "" {
			o.MarkerClass = SourceClass
		}
		c.source = o
	}
}

// WithTargetOptions sets the target element options.
func WithTargetOptions(o TargetOptions) Option {
	return func(c *controllerConfig) {
		if len(o.EventTypes) == 0 {
			o.EventTypes = []EventType{EventMouseDown}
		}
		c.target = o
	}
}

// WithOverlaysToClose lists containers whose overlays are closed when this
// one opens.
func WithOverlaysToClose(ids ...string) Option {
	return func(c *controllerConfig) {
		c.overlaysToClose = append(c.overlaysToClose, ids...)
	}
}

// WithContainer sets the container the source is moved into while open.
func WithContainer(id string) Option {
	return func(c *controllerConfig) {
		if id != "" {
			c.container = id
		}
	}
}

// WithExcludedContainers adds classes that count as inside for the default
// outside-click rule, so nested dropdowns and menus do not dismiss.
func WithExcludedContainers(classes ...string) Option {
	return func(c *controllerConfig) {
		c.excluded = append(c.excluded, classes...)
	}
}

// WithShouldOpen vetoes opening when fn returns false.
func WithShouldOpen(fn func() bool) Option {
	return func(c *controllerConfig) {
		c.shouldOpen = fn
	}
}

// WithShouldClose vetoes closing when fn returns false.
func WithShouldClose(fn func() bool) Option {
	return func(c *controllerConfig) {
		c.shouldClose = fn
	}
}

// WithChildOverlayOpen vetoes closing while fn reports a nested overlay open.
func WithChildOverlayOpen(fn func() bool) Option {
	return func(c *controllerConfig) {
		c.childOverlayOpen = fn
	}
}

// WithCursor provides the pointer position for cursor-anchored overlays.
func WithCursor(fn func() (Point, bool)) Option {
	return func(c *controllerConfig) {
		c.cursor = fn
	}
}

// WithOutsideCheck replaces the outside-click predicate entirely.
func WithOutsideCheck(fn func(*Event) bool) Option {
	return func(c *controllerConfig) {
		c.isOutside = fn
	}
}

// WithPositionUpdate is called after every positioning pass.
func WithPositionUpdate(fn func(PlacementResult)) Option {
	return func(c *controllerConfig) {
		c.onPosition = fn
	}
}

// WithScheduler replaces the document's timer source.
func WithScheduler(s Scheduler) Option {
	return func(c *controllerConfig) {
		c.scheduler = s
	}
}

// WithContainers replaces the document's container registry.
func WithContainers(r *Containers) Option {
	return func(c *controllerConfig) {
		c.containers = r
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(c *controllerConfig) {
		c.logger = l
	}
}
