package handlers

import (
	"sync"

	"wordingo/internal/engine"
)

// EngineHub keeps one game engine per device. Engines hold in-memory
// session state, so every request for a device must run against the same
// instance, one at a time.
type EngineHub struct {
	store engine.Store

	mu      sync.Mutex
	engines map[string]*engineEntry
}

type engineEntry struct {
	mu  sync.Mutex
	eng *engine.Engine
}

// NewEngineHub creates a hub whose engines share a persistence store
func NewEngineHub(store engine.Store) *EngineHub {
	return &EngineHub{
		store:   store,
		engines: make(map[string]*engineEntry),
	}
}

// Do runs fn against the device's engine while holding its lock
func (h *EngineHub) Do(deviceID string, fn func(*engine.Engine) error) error {
	entry := h.entry(deviceID)

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.eng)
}

func (h *EngineHub) entry(deviceID string) *engineEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry, ok := h.engines[deviceID]
	if !ok {
		entry = &engineEntry{eng: engine.New(h.store, nil, nil)}
		h.engines[deviceID] = entry
	}
	return entry
}
