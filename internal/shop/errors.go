package shop

import "fmt"

// InvalidListingError reports a listing that cannot back a page: empty, or
// holding entries that fail validation. It indicates a catalog authoring
// bug and aborts page construction.
type InvalidListingError struct {
	Reason string
}

func (e *InvalidListingError) Error() string {
	return "invalid listing: " + e.Reason
}

// UnknownSelectionError reports a selection value that resolves to no entry
// in the control's bound listing, which happens when a selection payload is
// stale or tampered with. The session stays on its current page.
type UnknownSelectionError struct {
	Control string
	Value   string
}

func (e *UnknownSelectionError) Error() string {
	return fmt.Sprintf("control %s: no entry with id %q", e.Control, e.Value)
}

// DeliveryError wraps a platform failure while rendering a page or
// delivering a notice. The core does not retry; the session's current page
// is left unchanged so the caller can safely retry from the same state.
type DeliveryError struct {
	Op  string
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("platform %s failed: %v", e.Op, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
