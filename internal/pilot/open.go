package pilot

import (
	"strings"

	"github.com/vovakirdan/debris-shooter/internal/registry"
)

// Open resolves a --pilot value: a path ending in .lua loads a script,
// anything else names a registered pilot.
func Open(name string) (registry.Pilot, error) {
	if strings.HasSuffix(strings.ToLower(name), ".lua") {
		return LoadLua(name)
	}
	return registry.Create(name)
}
