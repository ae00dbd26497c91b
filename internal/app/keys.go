package app

import "github.com/nhle/wellup/internal/keys"

// KeyMap is re-exported from the keys package so callers configuring the
// program do not need a second import.
type KeyMap = keys.KeyMap

// DefaultKeyMap delegates to keys.DefaultKeyMap.
func DefaultKeyMap() *KeyMap {
	return keys.DefaultKeyMap()
}
