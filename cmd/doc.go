// Package cmd provides the command-line interface for localvec.
//
// This package implements all CLI commands using the Cobra framework.
//
// # Available Commands
//
//   - wc: Count lines, words and bytes of text files
//   - config show: Decode a JSON or YAML service configuration, optionally watching it
//   - config validate: Check a service configuration for missing or malformed values
//   - vec: Run a script of push/pop/insert/remove/clear against a hybrid vector
//   - version: Show build information
//
// # Command Examples
//
//	// Count with locale-aware number formatting
//	localvec wc README.md main.go
//
//	// Machine-readable counts
//	localvec wc -o json *.go
//
//	// Print a service config and re-print it on every save
//	localvec config show service.yaml --watch
//
//	// Watch a vector with inline capacity 2 spill on the third push
//	localvec vec --capacity 2 push a push b push c pop
//
// # Configuration Integration
//
// Commands respect configuration from multiple sources in order of precedence:
//
//  1. Command-line flags (highest priority)
//  2. Environment variables (LOCALVEC_*)
//  3. Configuration file (.localvec.yml, or --config / LOCALVEC_CONFIG_FILE)
//  4. Default values (lowest priority)
//
// # Error Handling
//
// Commands return errors to Cobra, which prints them; the process exits
// with status 1. Multi-file commands keep going past a failing file and
// report every failure at the end.
package cmd
