// Package core provides a small, stable facade over rulegaze's internal
// scanner for external integrations. It deliberately re-exports a narrow
// API surface so third-party tools can depend on a stable import path
// without reaching into internal implementation packages.
//
// Example:
//
//	summary, err := core.Scan(ruleSource, "my rules",
//		core.Bytes(data, "payload"), core.Defaults())
//	if err != nil { /* handle */ }
//	fmt.Printf("%d rules matched\n", len(summary.Matched))
package core
