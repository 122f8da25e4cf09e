package cli

import (
	"fmt"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

const maxTitle = 80

func panelLines(l *model.List, group bool) []string {
	t := ui.Current()
	d, p := l.Stats()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render(l.Label()),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), l.Size(),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	if group {
		lines = append(lines, groupLines(l)...)
	} else {
		lines = append(lines, flatLines(l)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render("Tip: `todo ls --plain` prints the bare list"))
	return lines
}

func flatLines(l *model.List) []string {
	t := ui.Current()
	if l.Size() == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, l.Size())
	i := 0
	l.ForEach(func(it *model.Item) {
		i++
		box, style := t.BoxUnchecked, t.Muted
		if it.IsDone() {
			box, style = t.BoxChecked, t.Success
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			t.Muted.Render(fmt.Sprintf("%2d.", i)), style.Render(box), truncate(it.Title())))
	})
	return out
}

func groupLines(l *model.List) []string {
	t := ui.Current()
	section := func(name string, sub *model.List) []string {
		lines := []string{t.Accent.Render(name)}
		if sub.Size() == 0 {
			return append(lines, t.Muted.Render("(none)"))
		}
		return append(lines, flatLines(sub)...)
	}
	lines := section("Pending", l.Pending())
	lines = append(lines, "")
	return append(lines, section("Done", l.AllDone())...)
}

func truncate(title string) string {
	r := []rune(title)
	if len(r) > maxTitle {
		return string(r[:maxTitle-3]) + "..."
	}
	return title
}
