package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/demo"
	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Options carry what the root command resolved.
type Options struct {
	Config *config.Config
	Logger *log.Logger
	Stdout io.Writer
	Stderr io.Writer

	// RunTUI replaces tui.Run; tests set it to avoid taking over the terminal.
	RunTUI func(*model.List, *log.Logger) error
}

func (o *Options) defaults() {
	if o.Config == nil {
		o.Config = config.Default()
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.RunTUI == nil {
		o.RunTUI = tui.Run
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		PrintHelp(opt.Stderr)
		return 2
	}
	cmd, a := args[0], args[1:]
	opt.Logger.Debug("dispatch", "cmd", cmd, "args", len(a), "config", opt.Config.File)

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0

	case "demo":
		if len(a) != 0 {
			ui.Fail(opt.Stderr, "usage: todo demo")
			return 2
		}
		if err := demo.Run(opt.Stdout, opt.Logger); err != nil {
			ui.Fail(opt.Stderr, "demo: "+err.Error())
			return 1
		}
		return 0

	case "ls":
		return doList(a, opt)

	case "tui":
		return doTUI(a, opt)
	}

	ui.Fail(opt.Stderr, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `todo - an in-memory todo list

Usage:
  todo [root flags] <subcommand> [args]

Root flags:
  --config <path>      TOML config file (default: ./tada.toml if present)
  --theme <name>       classic, neon or mono
  --label <text>       list label for ad-hoc lists
  --log-level <level>  debug, info, warn, error
  --log-format <fmt>   text, logfmt, json
  --group              group output by pending/done

Subcommands:
  demo                 Run the sample "Today's Todos" session
  ls [flags] [title...]
                       Build a list from titles (or the sample list) and print it
      --done <n,...>   Mark 1-based positions done
      --only-done      Keep only done items
      --pending        Keep only pending items
      --find <title>   Print the first item with this title
      --plain          Plain "[X] title" output
  tui [title...]       Interactive list; nothing is saved

Examples:
  todo demo
  todo ls --done 1,3 "Buy milk" "Clean room" "Go shopping"
  todo ls --find "Buy milk"
  todo --theme neon tui
`)
}

// -------------- subcommand impls ----------------

type listFlags struct {
	done     []int
	onlyDone bool
	pending  bool
	find     string
	plain    bool
}

func doList(args []string, opt Options) int {
	var lf listFlags
	fs := pflag.NewFlagSet("ls", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntSliceVar(&lf.done, "done", nil, "mark 1-based positions done")
	fs.BoolVar(&lf.onlyDone, "only-done", false, "keep only done items")
	fs.BoolVar(&lf.pending, "pending", false, "keep only pending items")
	fs.StringVar(&lf.find, "find", "", "print the first item with this title")
	fs.BoolVar(&lf.plain, "plain", false, "plain output")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			PrintHelp(opt.Stdout)
			return 0
		}
		ui.Fail(opt.Stderr, "ls: "+err.Error())
		return 2
	}
	if lf.onlyDone && lf.pending {
		ui.Fail(opt.Stderr, "ls: --only-done and --pending are exclusive")
		return 2
	}

	l := buildList(fs.Args(), opt)
	for _, n := range lf.done {
		if err := l.MarkDoneAt(n - 1); err != nil {
			return indexFailure(opt, l, n, err)
		}
		opt.Logger.Debug("marked done", "position", n)
	}

	if lf.find != "" {
		it, ok := l.FindByTitle(lf.find)
		if !ok {
			ui.Fail(opt.Stderr, "not found: "+lf.find)
			return 1
		}
		fmt.Fprintln(opt.Stdout, it)
		return 0
	}

	switch {
	case lf.onlyDone:
		l = l.AllDone()
	case lf.pending:
		l = l.Pending()
	}

	if lf.plain {
		fmt.Fprintln(opt.Stdout, l)
		return 0
	}
	fmt.Fprintln(opt.Stdout, ui.Panel(panelLines(l, opt.Config.Group)))
	return 0
}

func doTUI(args []string, opt Options) int {
	l := buildList(args, opt)
	if err := opt.RunTUI(l, opt.Logger); err != nil {
		ui.Fail(opt.Stderr, "tui: "+err.Error())
		return 1
	}
	done, pending := l.Stats()
	opt.Logger.Info("session ended", "done", done, "pending", pending)
	return 0
}

// buildList returns the sample list when no titles are given.
func buildList(titles []string, opt Options) *model.List {
	if len(titles) == 0 {
		return demo.Seed()
	}
	l := model.NewList(opt.Config.Label)
	for _, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		if err := l.Add(model.NewItem(title)); err != nil {
			opt.Logger.Error("add", "title", title, "err", err)
			continue
		}
		opt.Logger.Debug("added", "title", title)
	}
	return l
}

func indexFailure(opt Options, l *model.List, userIndex int, err error) int {
	if !errors.Is(err, model.ErrInvalidIndex) {
		ui.Fail(opt.Stderr, err.Error())
		return 1
	}
	ui.Fail(opt.Stderr, fmt.Sprintf("index out of range: have %d, got %d", l.Size(), userIndex))
	ui.Hint(opt.Stderr, "positions are 1-based; run `todo ls` to see valid indexes")
	return 2
}
