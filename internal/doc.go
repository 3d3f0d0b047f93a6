// Package internal contains the implementation packages behind the localvec
// CLI.
//
// These packages follow Go's internal package convention and are not
// importable by other modules. The reusable container lives in
// pkg/hybridvec.
//
// # Package Organization
//
//   - config: CLI settings resolved through Viper, with validation
//   - configfile: Service configuration decoding by file extension, plus a
//     debounced fsnotify watcher
//   - errors: Typed errors with codes and a Collector for multi-file commands
//   - logging: slog-backed structured logger and operation timing
//   - testutils: Fixtures shared by package tests
//   - validation: URL and port checks used by configfile
//   - version: Build information from ldflags and VCS stamps
//   - wordcount: Line, word and byte counting over UTF-8 files
//
// # Dependencies Between Packages
//
// errors stores collected failures in a hybridvec.Vec, and wordcount returns
// its per-file results in one, so a handful of files never touches the heap
// beyond the Vec itself. Every package logs through logging.Logger and
// reports failures as *errors.Error values carrying a code, which the cmd
// package prints unchanged.
package internal
