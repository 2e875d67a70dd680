package overlay

import "strings"

const (
	// DefaultPopoverPadding is the gap between a popover and its target.
	DefaultPopoverPadding = 12
	// DataPointPopoverPadding is the gap used for data point popovers.
	DataPointPopoverPadding = 8
)

// Popover is a floating panel anchored to a target, closed by escape, an
// outside click, or opening another popover.
type Popover struct {
	parent *Node
	target *Node
	source *Node

	trigger             Trigger
	padding             float64
	dataPoint           bool
	hideWithInsideClick bool
	initiallyOpen       bool
	extra               []Option

	ctrl *Controller
	open bool

	Opened *Events[*Popover]
	Closed *Events[*Popover]
}

// PopoverOption configures a Popover.
type PopoverOption func(*Popover)

// WithPopoverTrigger sets how the popover opens.
func WithPopoverTrigger(t Trigger) PopoverOption {
	return func(p *Popover) {
		p.trigger = t
	}
}

// WithPopoverPadding sets an explicit gap to the target.
func WithPopoverPadding(px float64) PopoverOption {
	return func(p *Popover) {
		p.padding = px
	}
}

// WithDataPoint styles the popover as a data point tooltip.
func WithDataPoint(on bool) PopoverOption {
	return func(p *Popover) {
		p.dataPoint = on
	}
}

// WithHideWithInsideClick closes the popover on any click, inside included.
func WithHideWithInsideClick(on bool) PopoverOption {
	return func(p *Popover) {
		p.hideWithInsideClick = on
	}
}

// WithInitiallyOpen opens the popover as soon as it is mounted.
func WithInitiallyOpen(on bool) PopoverOption {
	return func(p *Popover) {
		p.initiallyOpen = on
	}
}

// WithControllerOptions passes extra options to the underlying controller.
func WithControllerOptions(opts ...Option) PopoverOption {
	return func(p *Popover) {
		p.extra = append(p.extra, opts...)
	}
}

// NewPopover mounts a popover whose source floats around target and lives
// under parent while closed.
func NewPopover(doc *Document, parent, target, source *Node, opts ...PopoverOption) *Popover {
	p := &Popover{
		parent:  parent,
		target:  target,
		source:  source,
		trigger: TriggerPress,
		Opened:  NewEvents[*Popover](),
		Closed:  NewEvents[*Popover](),
	}
	for _, opt := range opts {
		opt(p)
	}
	if source != nil {
		source.AddClass(PopoverClass)
		if p.dataPoint {
			source.AddClass(PopoverDataPointClass)
		}
	}

	ctrlOpts := []Option{
		WithTrigger(p.trigger),
		WithModifiers(PaddingFunc(p.resolvePadding)),
		WithContainer(PopoverContainer),
		WithOverlaysToClose(PopoverContainer),
		WithExcludedContainers(DropdownContainerClass, MenuContainerClass, PopoverContainer),
		WithOutsideCheck(p.isOutside),
		WithPositionUpdate(p.applyTipClass),
	}
	p.ctrl = NewController(doc, p, parent, target, source, p.onStateChange, append(ctrlOpts, p.extra...)...)

	if p.initiallyOpen {
		p.Open()
	}
	return p
}

// Controller returns the underlying controller.
func (p *Popover) Controller() *Controller {
	return p.ctrl
}

// IsOpen reports the popover's open state.
func (p *Popover) IsOpen() bool {
	return p.open
}

// Open opens the popover. It is a no-op when already open.
func (p *Popover) Open() {
	p.ctrl.Open(nil)
}

// Close closes the popover unless a veto applies.
func (p *Popover) Close() {
	p.ctrl.Close()
}

// UpdatePosition re-evaluates the popover placement.
func (p *Popover) UpdatePosition() bool {
	return p.ctrl.UpdatePosition()
}

// Unmount closes the popover and releases the controller.
func (p *Popover) Unmount() {
	p.Close()
	p.ctrl.Dispose()
	p.setOpen(false)
}

func (p *Popover) onStateChange(open bool) {
	if open {
		open = p.ctrl.OpenWithPosition()
	}
	p.setOpen(open)
}

func (p *Popover) setOpen(open bool) {
	if p.open == open {
		return
	}
	p.open = open
	if open {
		p.Opened.Emit(p)
	} else {
		p.Closed.Emit(p)
	}
}

func (p *Popover) resolvePadding() float64 {
	switch {
	case p.padding > 0:
		return p.padding
	case p.dataPoint:
		return DataPointPopoverPadding
	}
	return DefaultPopoverPadding
}

func (p *Popover) isOutside(ev *Event) bool {
	if p.hideWithInsideClick {
		return true
	}
	return p.ctrl.DefaultIsOutside(ev)
}

// tipBase is the class the placement modifier is appended to.
func (p *Popover) tipBase() string {
	if p.dataPoint {
		return PopoverDataPointClass
	}
	return PopoverClass
}

func (p *Popover) applyTipClass(res PlacementResult) {
	base := p.tipBase()
	p.source.RemoveClassFunc(func(c string) bool {
		return c != base && strings.HasPrefix(c, base+"--")
	})
	p.source.AddClass(res.Placement.ClassName(base))
}
