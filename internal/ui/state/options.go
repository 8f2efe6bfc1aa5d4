// Package state owns the presentation state of the options pane: the rows
// derived from a page's selector, cursor position, filter query, and
// viewport offset. It knows nothing about Bubble Tea or rendering.
package state

// Row is one selectable line in the options pane.
type Row struct {
	ID     string
	Label  string
	Detail string
}

// Options tracks cursor, filter, and viewport over a page's options.
type Options struct {
	Page           string
	Full           []Row
	Rows           []Row
	Filter         string
	FilterCursor   int
	Cursor         int
	ViewportOffset int
}

// NewOptions constructs pane state for the given page id and rows.
func NewOptions(page string, rows []Row) *Options {
	o := &Options{Page: page, Cursor: 0}
	o.Full = CloneRows(rows)
	o.applyFilter()
	return o
}

// CloneRows produces a shallow copy of the provided rows.
func CloneRows(rows []Row) []Row {
	dup := make([]Row, len(rows))
	copy(dup, rows)
	return dup
}

// IndexOf returns the index for a given row id.
func (o *Options) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, row := range o.Rows {
		if row.ID == id {
			return i
		}
	}
	return -1
}

// CurrentRow returns the row under the cursor.
func (o *Options) CurrentRow() (Row, bool) {
	if len(o.Rows) == 0 || o.Cursor < 0 || o.Cursor >= len(o.Rows) {
		return Row{}, false
	}
	return o.Rows[o.Cursor], true
}

// MoveCursorUp moves the cursor one row up, wrapping at the top.
func (o *Options) MoveCursorUp() bool {
	n := len(o.Rows)
	if n == 0 {
		return false
	}
	if o.Cursor > 0 {
		o.Cursor--
	} else {
		o.Cursor = n - 1
	}
	return true
}

// MoveCursorDown moves the cursor one row down, wrapping at the bottom.
func (o *Options) MoveCursorDown() bool {
	n := len(o.Rows)
	if n == 0 {
		return false
	}
	if o.Cursor < n-1 {
		o.Cursor++
	} else {
		o.Cursor = 0
	}
	return true
}

// MoveCursorHome moves the cursor to the first row.
func (o *Options) MoveCursorHome() bool {
	if len(o.Rows) == 0 {
		o.Cursor = 0
		return false
	}
	old := o.Cursor
	o.Cursor = 0
	return old != o.Cursor
}

// MoveCursorEnd moves the cursor to the last row.
func (o *Options) MoveCursorEnd() bool {
	n := len(o.Rows)
	if n == 0 {
		o.Cursor = 0
		return false
	}
	old := o.Cursor
	o.Cursor = n - 1
	return old != o.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (o *Options) MoveCursorPageUp(maxVisible int) bool {
	return o.moveCursorBy(-o.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (o *Options) MoveCursorPageDown(maxVisible int) bool {
	return o.moveCursorBy(o.pageSize(maxVisible))
}

func (o *Options) moveCursorBy(delta int) bool {
	if len(o.Rows) == 0 {
		o.Cursor = 0
		return false
	}
	old := o.Cursor
	if o.Cursor < 0 {
		o.Cursor = 0
	}
	o.Cursor += delta
	if o.Cursor < 0 {
		o.Cursor = 0
	}
	if o.Cursor >= len(o.Rows) {
		o.Cursor = len(o.Rows) - 1
	}
	return o.Cursor != old
}

func (o *Options) pageSize(maxVisible int) int {
	total := len(o.Rows)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (o *Options) EnsureCursorVisible(maxVisible int) {
	if len(o.Rows) == 0 {
		o.Cursor = 0
		o.ViewportOffset = 0
		return
	}
	if o.Cursor < 0 {
		o.Cursor = 0
	}
	if o.Cursor >= len(o.Rows) {
		o.Cursor = len(o.Rows) - 1
	}
	if maxVisible <= 0 {
		o.ViewportOffset = 0
		return
	}
	maxOffset := len(o.Rows) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if o.ViewportOffset > maxOffset {
		o.ViewportOffset = maxOffset
	}
	if o.ViewportOffset < 0 {
		o.ViewportOffset = 0
	}
	if o.Cursor < o.ViewportOffset {
		o.ViewportOffset = o.Cursor
	}
	upper := o.ViewportOffset + maxVisible - 1
	if o.Cursor > upper {
		o.ViewportOffset = o.Cursor - maxVisible + 1
		if o.ViewportOffset < 0 {
			o.ViewportOffset = 0
		}
		if o.ViewportOffset > maxOffset {
			o.ViewportOffset = maxOffset
		}
	}
}
