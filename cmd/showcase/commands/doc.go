// Package commands wires the showcase CLI: the carousel TUI as the root
// command plus catalogue maintenance subcommands.
package commands
