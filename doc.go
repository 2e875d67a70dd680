// Package overlay positions floating panels around trigger elements and
// manages their open/close lifecycle.
//
// Users import this single package for the complete public API: the
// headless document model, placement evaluation, overlay controllers, and
// the popover and modal hosts built on them.
package overlay
