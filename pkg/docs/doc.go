// Package docs describes localvec: a small-vector container and a CLI that
// exercises it.
//
// The container, hybridvec.Vec, keeps up to a fixed number of elements in an
// inline buffer chosen at construction and moves them to a growable heap
// slice the first time that capacity is exceeded. The move is one way:
// removing or clearing elements never returns a spilled Vec to inline
// storage.
//
// # Quick Start
//
//	v := hybridvec.New[string](4)
//	v.Push("a")
//	v.Push("b")
//	fmt.Println(v.Len(), v.Spilled()) // 2 false
//
//	v.Extend("c", "d", "e")
//	fmt.Println(v.Len(), v.Spilled()) // 5 true
//
// # Command Line
//
//	// Count lines, words and bytes with locale-aware numbers
//	localvec wc notes.txt main.go
//
//	// Decode a JSON or YAML service config, re-printing on change
//	localvec config show service.yaml --watch
//
//	// Step through vector operations and watch the spill happen
//	localvec vec --capacity 2 push a push b push c
//
// # Architecture
//
//   - Container (pkg/hybridvec/): Vec, its iterators and a mutex-guarded Synced
//   - CLI Commands (cmd/): Cobra-based command interface
//   - Configuration (internal/config/): Viper-based settings management
//   - Service configs (internal/configfile/): Extension-dispatched decoders
//   - Word counting (internal/wordcount/): Per-file counts with error collection
//
// # Configuration
//
// localvec reads its own settings from, in increasing precedence:
//
//   - Default values
//   - Configuration file (.localvec.yml, --config, or LOCALVEC_CONFIG_FILE)
//   - Environment variables (LOCALVEC_*)
//   - Command-line flags
//
// Example configuration:
//
//	log:
//	  level: info
//	  format: text
//	vec:
//	  inline_capacity: 8
//	wc:
//	  locale: en
package docs
