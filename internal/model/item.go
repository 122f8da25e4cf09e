package model

// Markers used by Item.String.
const (
	DoneMarker   = "X"
	UndoneMarker = " "
)

// Item is the domain model for a todo entry.
// The title is fixed at construction; only the done flag moves.
type Item struct {
	title string
	done  bool
}

// NewItem returns a not-done item.
func NewItem(title string) *Item {
	return &Item{title: title}
}

func (i *Item) Title() string { return i.title }
func (i *Item) IsDone() bool  { return i.done }

func (i *Item) MarkDone()   { i.done = true }
func (i *Item) MarkUndone() { i.done = false }

// Toggle flips the done flag.
func (i *Item) Toggle() { i.done = !i.done }

// String renders "[X] title" or "[ ] title".
func (i *Item) String() string {
	marker := UndoneMarker
	if i.done {
		marker = DoneMarker
	}
	return "[" + marker + "] " + i.title
}
