package shop

// Navigation mediates one forward transition between two pages. A handler
// is constructed fresh on every forward selection and discarded once the
// back-control has been resolved; back-navigation is depth-1, not a
// history stack.
type Navigation struct {
	from *Page
	to   *Page
}

// NewNavigation binds the transition's origin and destination.
func NewNavigation(from, to *Page) *Navigation {
	return &Navigation{from: from, to: to}
}

// Navigate returns the destination page, first making sure it carries a
// back-control. The check is idempotent: a page that already has one keeps
// it, so re-entering a page never duplicates the control. A consequence is
// that the control stays bound to the first origin it was created with,
// even when the page is later reached from elsewhere.
func (n *Navigation) Navigate() *Page {
	if n.to.BackControl() == nil {
		n.to.attach(&BackControl{nav: n})
	}
	return n.to
}

// GoBack returns the origin page unchanged. No recomputation happens: the
// origin is whatever was captured when this handler was constructed.
func (n *Navigation) GoBack() *Page {
	return n.from
}

// BackControl returns to the page that initiated the navigation it was
// created by.
type BackControl struct {
	nav *Navigation
}

func (b *BackControl) ID() string    { return "nav:back" }
func (b *BackControl) Label() string { return "Back" }

// Activate ignores the value; pressing back always yields the bound origin.
func (b *BackControl) Activate(string) (Outcome, error) {
	return Outcome{Next: b.nav.GoBack()}, nil
}
