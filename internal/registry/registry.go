// Package registry maps pilot names to factories. Built-in pilots register
// from init, and the CLI lists them and builds one per headless run.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/debris-shooter/internal/core"
	"github.com/vovakirdan/debris-shooter/internal/games/debris"
)

// Pilot drives the ship without a human at the keyboard.
// Pilots see the same state a player would and answer with an input frame;
// they never touch the game directly.
type Pilot interface {
	// ID names the pilot in logs and run results (e.g., "gunner").
	ID() string

	// Poll returns the input for the next tick given the current state.
	Poll(s debris.Snapshot) (core.InputFrame, error)
}

// PilotInfo describes a registered pilot for listings.
type PilotInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh pilot. Pilots keep per-run state, so every run gets its own.
type Factory func() Pilot

type entry struct {
	info PilotInfo
	make Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register makes a pilot available under info.ID. It is meant to be called
// from init and panics on an empty ID, a nil factory or a duplicate ID.
func Register(info PilotInfo, f Factory) {
	if info.ID == "" || f == nil {
		panic("registry: pilot needs an ID and a factory")
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[info.ID]; dup {
		panic(fmt.Sprintf("registry: pilot %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, make: f}
}

// List returns every registered pilot ordered by ID.
func List() []PilotInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]PilotInfo, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, e.info)
	}
	slices.SortFunc(infos, func(a, b PilotInfo) int { return strings.Compare(a.ID, b.ID) })
	return infos
}

// Create builds a new pilot registered under id.
func Create(id string) (Pilot, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown pilot %q (see \"debris pilots\")", id)
	}
	return e.make(), nil
}
