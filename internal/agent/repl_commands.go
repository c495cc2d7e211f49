package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"marios/internal/mcpserver"
)

type argKind int

const (
	argNone argKind = iota
	argWindow
	argTool
	argOther
)

type command struct {
	name  string
	usage string
	help  string
	arg   argKind
}

var commands = []command{
	{name: "help", usage: "help", help: "Show this help message"},
	{name: "tools", usage: "tools", help: "List the control tools"},
	{name: "state", usage: "state", help: "Show the desktop state"},
	{name: "windows", usage: "windows", help: "List the windows"},
	{name: "open", usage: "open <window>", help: "Open a window", arg: argWindow},
	{name: "close", usage: "close <window>", help: "Close a window", arg: argWindow},
	{name: "focus", usage: "focus <window>", help: "Focus a visible window", arg: argWindow},
	{name: "minimize", usage: "minimize <window>", help: "Minimize a window", arg: argWindow},
	{name: "maximize", usage: "maximize <window>", help: "Toggle maximize", arg: argWindow},
	{name: "cycle", usage: "cycle", help: "Focus the next visible window"},
	{name: "tap", usage: "tap <launcher>", help: "Tap a taskbar launcher", arg: argOther},
	{name: "key", usage: "key <combo>", help: "Press a key combination, e.g. alt+tab", arg: argOther},
	{name: "resize", usage: "resize <width> <height>", help: "Resize the viewport", arg: argOther},
	{name: "call", usage: "call <tool> [key=value...]", help: "Call any tool", arg: argTool},
	{name: "exit", usage: "exit", help: "Exit the shell"},
}

var windowTools = map[string]string{
	"open":     "open_window",
	"close":    "close_window",
	"focus":    "focus_window",
	"minimize": "minimize_window",
	"maximize": "toggle_maximize",
}

// Execute parses and runs one command line.
func (r *REPL) Execute(ctx context.Context, input string) error {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil
	}
	name, args := strings.ToLower(parts[0]), parts[1:]

	switch name {
	case "help", "?":
		r.showHelp()
		return nil

	case "exit", "quit":
		return errExit

	case "tools":
		tools, err := r.client.ListTools(ctx)
		if err != nil {
			return err
		}
		r.tools = tools
		for _, t := range tools {
			fmt.Fprintf(r.out, "  %s\n", t)
		}
		return nil

	case "state":
		return r.call(ctx, "get_state", nil)

	case "windows":
		return r.call(ctx, "list_windows", nil)

	case "cycle":
		return r.call(ctx, "cycle_windows", nil)

	case "open", "close", "focus", "minimize", "maximize":
		if len(args) != 1 {
			return usageError(name)
		}
		return r.call(ctx, windowTools[name], map[string]interface{}{"id": args[0]})

	case "tap":
		if len(args) != 1 {
			return usageError(name)
		}
		return r.call(ctx, "tap_launcher", map[string]interface{}{"launcher": args[0]})

	case "key":
		if len(args) != 1 {
			return usageError(name)
		}
		return r.call(ctx, "press_key", map[string]interface{}{"key": args[0]})

	case "resize":
		if len(args) != 2 {
			return usageError(name)
		}
		w, errW := strconv.Atoi(args[0])
		h, errH := strconv.Atoi(args[1])
		if errW != nil || errH != nil {
			return usageError(name)
		}
		return r.call(ctx, "resize_viewport", map[string]interface{}{"width": w, "height": h})

	case "call":
		if len(args) < 1 {
			return usageError(name)
		}
		toolArgs, err := mcpserver.ParseArgs(args[1:])
		if err != nil {
			return err
		}
		return r.call(ctx, args[0], toolArgs)
	}

	return fmt.Errorf("unknown command: %s. Type 'help' for available commands", name)
}

func (r *REPL) call(ctx context.Context, tool string, args map[string]interface{}) error {
	result, err := r.client.Call(ctx, tool, args)
	if err != nil {
		return err
	}
	return r.printer.PrintToolResult(result)
}

// showHelp displays available commands
func (r *REPL) showHelp() {
	fmt.Fprintln(r.out, "Available commands:")
	for _, c := range commands {
		fmt.Fprintf(r.out, "  %-28s - %s\n", c.usage, c.help)
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Keyboard shortcuts:")
	fmt.Fprintln(r.out, "  TAB                          - Auto-complete commands and window ids")
	fmt.Fprintln(r.out, "  ↑/↓ (arrow keys)             - Navigate command history")
	fmt.Fprintln(r.out, "  Ctrl+R                       - Search command history")
	fmt.Fprintln(r.out, "  Ctrl+D                       - Exit")
}

func usageError(name string) error {
	for _, c := range commands {
		if c.name == name {
			return fmt.Errorf("usage: %s", c.usage)
		}
	}
	return fmt.Errorf("usage: %s", name)
}

// parseWindowIDs extracts the ids from a list_windows result.
func parseWindowIDs(result string) []string {
	var windows []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(result), &windows); err != nil {
		return nil
	}
	ids := make([]string, 0, len(windows))
	for _, w := range windows {
		ids = append(ids, w.ID)
	}
	return ids
}
