package overlay

import "time"

// Container ids and marker classes shared by controllers and hosts.
const (
	// OverlayContainer holds every floating overlay source while open.
	OverlayContainer = "overlay__container"
	// PopoverContainer nests inside OverlayContainer and holds popovers.
	PopoverContainer = "overlay__popover-container"
	// BackdropContainer holds centered overlays behind a backdrop.
	BackdropContainer = "overlay__backdrop-container"

	BackdropShowClass   = "overlay__backdrop-show"
	BackdropCenterClass = "overlay__backdrop-center"

	// SourceClass marks overlay sources; the default outside-click rule
	// treats any event path carrying it as inside.
	SourceClass = "overlay__source"

	DropdownContainerClass = "overlay__dropdown-container"
	MenuContainerClass     = "overlay__menu-container"

	PopoverClass          = "overlay__popover"
	PopoverDataPointClass = "overlay__popover--data-point"
	ModalClass            = "overlay__modal"
)

const (
	// DefaultHoverInTimeout is the delay between hover-in and opening.
	DefaultHoverInTimeout = 150 * time.Millisecond
	// HoverOutTimeout is the delay between hover-out and closing.
	HoverOutTimeout = 150 * time.Millisecond
)
