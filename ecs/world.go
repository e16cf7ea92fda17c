package ecs

import "github.com/milk9111/fpsplayer/ecs/component"

// System updates a world once per fixed tick.
type System interface {
	Update(w *World)
}

// World owns entities, component storage and the current tick duration.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	delta    float64
	ticks    uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]*SparseSet),
		delta:  1.0 / 60.0,
	}
}

// SetDelta sets the fixed tick duration in seconds.
func (w *World) SetDelta(seconds float64) {
	if w == nil || seconds <= 0 {
		return
	}
	w.delta = seconds
}

// Delta returns the fixed tick duration in seconds.
func (w *World) Delta() float64 {
	if w == nil {
		return 0
	}
	return w.delta
}

// Ticks returns how many ticks the scheduler has completed.
func (w *World) Ticks() uint64 {
	if w == nil {
		return 0
	}
	return w.ticks
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes the entity and every component attached to it.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.entities()
}
