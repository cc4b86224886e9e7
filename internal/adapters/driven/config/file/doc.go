// Package file provides file-based implementations of driven port interfaces.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - LoadSources: YAML catalog source lists for refresh runs
package file
