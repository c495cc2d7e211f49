package agent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"marios/internal/cli"
)

// errExit ends the loop.
var errExit = errors.New("exit")

// ToolCaller is the part of the control client the shell needs.
type ToolCaller interface {
	ListTools(ctx context.Context) ([]string, error)
	Call(ctx context.Context, name string, args map[string]interface{}) (string, error)
}

// REPL represents the Read-Eval-Print Loop for the control server
type REPL struct {
	client  ToolCaller
	out     io.Writer
	printer *cli.Printer
	tools   []string
	rl      *readline.Instance
}

// NewREPL creates a new REPL instance writing to out.
func NewREPL(client ToolCaller, out io.Writer, options cli.PrinterOptions) *REPL {
	return &REPL{
		client:  client,
		out:     out,
		printer: cli.NewPrinter(out, options),
	}
}

// Run reads commands until exit, EOF or ctx is done.
func (r *REPL) Run(ctx context.Context) error {
	tools, err := r.client.ListTools(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tools: %w", err)
	}
	r.tools = tools

	config := &readline.Config{
		Prompt:          "marios> ",
		HistoryFile:     filepath.Join(os.TempDir(), ".marios_ctl_history"),
		AutoComplete:    r.createCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	}

	rl, err := readline.NewEx(config)
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()
	r.rl = rl

	fmt.Fprintf(r.out, "Connected. %d tools available. Type 'help' for commands.\n\n", len(tools))

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := r.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			fmt.Fprintln(r.out, "Goodbye!")
			return nil
		} else if err != nil {
			return fmt.Errorf("readline error: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		if err := r.Execute(ctx, input); err != nil {
			if errors.Is(err, errExit) {
				fmt.Fprintln(r.out, "Goodbye!")
				return nil
			}
			fmt.Fprintf(r.out, "Error: %v\n", err)
		}
		fmt.Fprintln(r.out)
	}
}

func (r *REPL) createCompleter() *readline.PrefixCompleter {
	windows := func(string) []string { return r.windowIDs() }
	tools := func(string) []string { return r.tools }

	var items []readline.PrefixCompleterInterface
	for _, c := range commands {
		switch c.arg {
		case argWindow:
			items = append(items, readline.PcItem(c.name, readline.PcItemDynamic(windows)))
		case argTool:
			items = append(items, readline.PcItem(c.name, readline.PcItemDynamic(tools)))
		default:
			items = append(items, readline.PcItem(c.name))
		}
	}
	return readline.NewPrefixCompleter(items...)
}

// windowIDs asks the desktop for the current window ids.
func (r *REPL) windowIDs() []string {
	result, err := r.client.Call(context.Background(), "list_windows", nil)
	if err != nil {
		return nil
	}
	return parseWindowIDs(result)
}

// filterInput blocks Ctrl+Z, which would suspend the shell.
func filterInput(r rune) (rune, bool) {
	switch r {
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
