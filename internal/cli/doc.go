// Package cli defines the Cobra command tree for the advent CLI. Each file
// in this package registers one top-level command (run, list, check, etc.)
// with the root command. Command implementations delegate to internal packages
// for dispatch and solving and only handle flag parsing, I/O formatting, and
// user interaction.
package cli
