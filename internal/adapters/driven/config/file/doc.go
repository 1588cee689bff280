// Package file provides a TOML file-based implementation of the config
// store, with change watching backed by fsnotify.
package file
