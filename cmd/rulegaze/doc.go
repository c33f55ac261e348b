// Package rulegaze provides the command-line interface for the rulegaze
// tool. It configures subcommands (scan, rules, version), parses flags,
// and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/rulegaze/rulegaze/cmd/rulegaze"
//	func main() { rulegaze.Execute() }
package rulegaze
