// Package demo holds the sample "Today's Todos" session.
package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/model"
)

const Label = "Today's Todos"

// Titles are the sample items, in insertion order.
var Titles = []string{
	"Buy milk",
	"Clean room",
	"Go to the gym",
	"Go shopping",
	"Feed the cats",
	"Study for Launch School",
}

// Seed builds the sample list with "Buy milk" and "Feed the cats" done.
func Seed() *model.List {
	l := model.NewList(Label)
	for _, title := range Titles {
		// NewItem never returns nil.
		_ = l.Add(model.NewItem(title))
	}
	_ = l.MarkDoneAt(0)
	_ = l.MarkDoneAt(4)
	return l
}

// Run prints the sample session to w.
func Run(w io.Writer, logger *log.Logger) error {
	l := Seed()
	logger.Debug("seeded list", "label", l.Label(), "size", l.Size())

	printFound(w, l, "Buy milk")
	printFound(w, l, "Buyxx")
	fmt.Fprintln(w, l.AllDone())

	if !l.MarkDone("Go to the gym") {
		return fmt.Errorf("mark done: %q not found", "Go to the gym")
	}
	logger.Debug("marked done", "title", "Go to the gym")

	fmt.Fprintln(w, l)
	fmt.Fprintln(w, Dump(l.ToSlice()))
	return nil
}

// Dump renders items as "[<item>, <item>]".
func Dump(items []*model.Item) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, it.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func printFound(w io.Writer, l *model.List, title string) {
	if it, ok := l.FindByTitle(title); ok {
		fmt.Fprintln(w, it)
		return
	}
	fmt.Fprintln(w, "<nil>")
}
