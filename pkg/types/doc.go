// Package types defines the shared types used across hyprkit.
//
// It holds the filesystem abstraction every engine is written against,
// the managed-path table entries, and the result types the orchestrators
// hand back to the CLI for reporting.
package types
