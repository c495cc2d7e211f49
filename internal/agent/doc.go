// Package agent implements an interactive shell for the MCP control server
// of a running desktop.
//
// The shell maps short commands onto control tools, e.g. "open about" calls
// open_window with window=about, and prints the returned desktop state as
// tables. Anything else can be called directly with "call <tool> key=value".
package agent
