// Package cli formats window manager state for the command line: tables for
// people, JSON and YAML for scripts.
package cli
