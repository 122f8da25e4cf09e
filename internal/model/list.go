package model

import "strings"

// List is an ordered collection of items with a display label.
//
// A list owns the items added to it. Lists derived through Filter, AllDone
// or Pending are views: they hold the same *Item pointers as the source, so
// marking an item done through a view is visible in the source list.
//
// The backing slice is always densely packed; a position is valid iff
// 0 <= position < Size().
type List struct {
	label string
	items []*Item
}

// NewList returns an empty list.
func NewList(label string) *List {
	return &List{label: label}
}

func (l *List) Label() string { return l.label }
func (l *List) Size() int     { return len(l.items) }

// Add appends item to the end of the list.
func (l *List) Add(item *Item) error {
	if item == nil {
		return ErrNilItem
	}
	l.items = append(l.items, item)
	return nil
}

// First returns the item at position 0, or false if the list is empty.
func (l *List) First() (*Item, bool) {
	if len(l.items) == 0 {
		return nil, false
	}
	return l.items[0], true
}

// Last returns the item at position Size()-1, or false if the list is empty.
func (l *List) Last() (*Item, bool) {
	if len(l.items) == 0 {
		return nil, false
	}
	return l.items[len(l.items)-1], true
}

// ItemAt returns the item at a zero-based position.
func (l *List) ItemAt(position int) (*Item, error) {
	if err := l.validateIndex(position); err != nil {
		return nil, err
	}
	return l.items[position], nil
}

func (l *List) MarkDoneAt(position int) error {
	it, err := l.ItemAt(position)
	if err != nil {
		return err
	}
	it.MarkDone()
	return nil
}

func (l *List) MarkUndoneAt(position int) error {
	it, err := l.ItemAt(position)
	if err != nil {
		return err
	}
	it.MarkUndone()
	return nil
}

// MarkDone marks the first item titled title as done.
// It reports whether such an item exists.
func (l *List) MarkDone(title string) bool {
	it, ok := l.FindByTitle(title)
	if !ok {
		return false
	}
	it.MarkDone()
	return true
}

// Shift removes and returns the first item.
func (l *List) Shift() (*Item, bool) {
	if len(l.items) == 0 {
		return nil, false
	}
	it := l.items[0]
	l.items[0] = nil
	l.items = l.items[1:]
	return it, true
}

// Pop removes and returns the last item.
func (l *List) Pop() (*Item, bool) {
	n := len(l.items)
	if n == 0 {
		return nil, false
	}
	it := l.items[n-1]
	l.items[n-1] = nil
	l.items = l.items[:n-1]
	return it, true
}

// RemoveAt removes the item at position; later items move down by one.
func (l *List) RemoveAt(position int) (*Item, error) {
	if err := l.validateIndex(position); err != nil {
		return nil, err
	}
	it := l.items[position]
	copy(l.items[position:], l.items[position+1:])
	l.items[len(l.items)-1] = nil
	l.items = l.items[:len(l.items)-1]
	return it, nil
}

// ForEach calls fn for every item in order. fn must not add or remove items.
func (l *List) ForEach(fn func(*Item)) {
	for _, it := range l.items {
		fn(it)
	}
}

// Filter returns a view with the same label holding every item for which
// pred returns true, in order.
func (l *List) Filter(pred func(*Item) bool) *List {
	out := NewList(l.label)
	l.ForEach(func(it *Item) {
		if pred(it) {
			out.items = append(out.items, it)
		}
	})
	return out
}

// FindByTitle returns the first item whose title equals title.
func (l *List) FindByTitle(title string) (*Item, bool) {
	return l.Filter(func(it *Item) bool { return it.Title() == title }).First()
}

func (l *List) AllDone() *List {
	return l.Filter((*Item).IsDone)
}

func (l *List) Pending() *List {
	return l.Filter(func(it *Item) bool { return !it.IsDone() })
}

// IsDone reports whether every item is done. An empty list is done.
func (l *List) IsDone() bool {
	for _, it := range l.items {
		if !it.IsDone() {
			return false
		}
	}
	return true
}

func (l *List) MarkAllDone()   { l.ForEach((*Item).MarkDone) }
func (l *List) MarkAllUndone() { l.ForEach((*Item).MarkUndone) }

// Stats counts done and pending items.
func (l *List) Stats() (done, pending int) {
	for _, it := range l.items {
		if it.IsDone() {
			done++
		} else {
			pending++
		}
	}
	return
}

// ToSlice returns a fresh slice of the current items.
func (l *List) ToSlice() []*Item {
	out := make([]*Item, len(l.items))
	copy(out, l.items)
	return out
}

// String renders the "---- label ----" header followed by one line per item.
func (l *List) String() string {
	lines := make([]string, 0, len(l.items))
	for _, it := range l.items {
		lines = append(lines, it.String())
	}
	return "---- " + l.label + " ----\n" + strings.Join(lines, "\n")
}

func (l *List) validateIndex(position int) error {
	if position < 0 || position >= len(l.items) {
		return &IndexError{Index: position, Size: len(l.items)}
	}
	return nil
}
