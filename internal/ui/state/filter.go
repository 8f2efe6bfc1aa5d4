package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter updates the filter query and cursor position.
func (o *Options) SetFilter(query string, cursor int) {
	trimmed := strings.TrimSpace(query)
	o.Filter = query
	runes := []rune(o.Filter)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	o.FilterCursor = cursor
	if trimmed != "" {
		o.Cursor = 0
	}
	o.applyFilter()
	if trimmed != "" && len(o.Rows) > 0 {
		if idx := BestMatchIndex(o.Rows, trimmed); idx >= 0 {
			o.Cursor = idx
		}
	}
}

func (o *Options) applyFilter() {
	o.Rows = FilterRows(o.Full, o.Filter)
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
	if o.ViewportOffset > len(o.Rows)-1 {
		o.ViewportOffset = 0
	}
}

// FilterCursorPos returns the rune offset of the filter cursor.
func (o *Options) FilterCursorPos() int {
	runes := []rune(o.Filter)
	if o.FilterCursor < 0 {
		return 0
	}
	if o.FilterCursor > len(runes) {
		return len(runes)
	}
	return o.FilterCursor
}

// InsertFilterText inserts text into the filter at the cursor position.
func (o *Options) InsertFilterText(text string) bool {
	if text == "" {
		return false
	}
	insert := []rune(text)
	runes := []rune(o.Filter)
	pos := o.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	o.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes a rune before the filter cursor.
func (o *Options) DeleteFilterRuneBackward() bool {
	runes := []rune(o.Filter)
	pos := o.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	o.SetFilter(string(updated), pos-1)
	return true
}

// DeleteFilterWordBackward deletes the word preceding the cursor.
func (o *Options) DeleteFilterWordBackward() bool {
	runes := []rune(o.Filter)
	pos := o.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	updated := append(runes[:i], runes[pos:]...)
	o.SetFilter(string(updated), i)
	return true
}

// MoveFilterCursorStart moves the filter cursor to the start.
func (o *Options) MoveFilterCursorStart() bool {
	if o.FilterCursorPos() == 0 {
		return false
	}
	o.FilterCursor = 0
	return true
}

// MoveFilterCursorEnd moves the filter cursor to the end.
func (o *Options) MoveFilterCursorEnd() bool {
	end := len([]rune(o.Filter))
	if o.FilterCursorPos() == end {
		return false
	}
	o.FilterCursor = end
	return true
}

// MoveFilterCursorRuneBackward moves the filter cursor one rune backward.
func (o *Options) MoveFilterCursorRuneBackward() bool {
	if o.FilterCursorPos() == 0 {
		return false
	}
	o.FilterCursor = o.FilterCursorPos() - 1
	return true
}

// MoveFilterCursorRuneForward moves the filter cursor one rune forward.
func (o *Options) MoveFilterCursorRuneForward() bool {
	runes := []rune(o.Filter)
	pos := o.FilterCursorPos()
	if pos >= len(runes) {
		return false
	}
	o.FilterCursor = pos + 1
	return true
}

// FilterRows returns rows matching the supplied filter string. Fuzzy
// ranking is tried first, then a case-insensitive substring fallback over
// labels and ids.
func FilterRows(rows []Row, query string) []Row {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneRows(rows)
	}
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Row, 0, len(matches))
		for idx, row := range rows {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, row)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Label), lower) || strings.Contains(strings.ToLower(row.ID), lower) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// BestMatchIndex returns the best index for the query among the rows:
// exact match first, then label prefix, id prefix, substring, and finally
// the closest fuzzy rank.
func BestMatchIndex(rows []Row, query string) int {
	trimmed := strings.TrimSpace(query)
	if len(rows) == 0 {
		return -1
	}
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, row := range rows {
		if strings.EqualFold(row.Label, trimmed) || strings.EqualFold(row.ID, trimmed) {
			return i
		}
	}
	for i, row := range rows {
		if strings.HasPrefix(strings.ToLower(row.Label), lower) {
			return i
		}
	}
	for i, row := range rows {
		if strings.HasPrefix(strings.ToLower(row.ID), lower) {
			return i
		}
	}
	for i, row := range rows {
		if strings.Contains(strings.ToLower(row.Label), lower) || strings.Contains(strings.ToLower(row.ID), lower) {
			return i
		}
	}
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(rows) {
		return 0
	}
	return best.OriginalIndex
}
