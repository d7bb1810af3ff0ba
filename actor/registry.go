package actor

import (
	"reflect"

	"go.uber.org/zap"
)

// slot maps one final kind to at most one live occupant. The occupant is
// held by Ref, so a destroyed actor leaves a stale slot that is
// reclaimed lazily by the next reconciliation.
type slot struct {
	occupant Ref
}

// Registry tracks the singleton instance per final kind for one world.
// It starts detached; Attach binds it to a world and sweeps actors that
// were spawned before the registry existed. All access is single
// threaded, matching the world it serves.
type Registry struct {
	logger *zap.Logger
	world  *World
	slots  map[*Kind]*slot
	stats  Stats
	ready  bool
}

// Stats counts what the registry has done since creation.
type Stats struct {
	Claims     int64 // slots claimed, including reclaims of stale slots
	Reclaims   int64 // claims that replaced a destroyed occupant
	Duplicates int64 // duplicate actors handed to a removal strategy
	Unmanaged  int64 // actors skipped because no terminal boundary exists
}

// NewRegistry creates a detached registry. A nil logger falls back to a
// no-op logger.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		logger: logger,
		slots:  make(map[*Kind]*slot),
	}
}

// Attach binds the registry to w and performs the one-time sweep over
// every actor already spawned there. This covers the ordering race where
// actors are constructed before the world's registry exists: their
// reconciliation silently no-ops and is re-run here. No further
// automatic sweeps happen afterwards.
//
// Attaching twice, or attaching to a world that already has a registry,
// panics.
func (r *Registry) Attach(w *World) {
	if w == nil {
		r.logger.DPanic("registry attach to nil world")
		return
	}
	if r.world != nil {
		panic("actor: registry already attached to a world")
	}
	if w.registry != nil {
		panic("actor: world already has a registry")
	}
	r.world = w
	if w.logger != nil {
		r.logger = w.logger
	}
	w.registry = r
	r.ready = true

	// Snapshot first: reconciliation destroys duplicates as it goes.
	for _, a := range w.Actors() {
		w.Reconcile(a)
	}
}

// Ready reports whether the registry has been attached to a world.
func (r *Registry) Ready() bool { return r.ready }

// World returns the attached world, or nil.
func (r *Registry) World() *World { return r.world }

// Stats returns a snapshot of the registry's counters.
func (r *Registry) Stats() Stats { return r.stats }

// Lookup returns the current live occupant for a final kind. It does not
// resolve boundaries; pass the kind returned by FinalKind, or use
// Instance for the resolving accessor.
func (r *Registry) Lookup(final *Kind) (Actor, bool) {
	s, ok := r.slots[final]
	if !ok {
		return nil, false
	}
	return s.occupant.Resolve(r.world)
}

// claim unconditionally overwrites the slot occupant for a final kind.
func (r *Registry) claim(final *Kind, a Actor) {
	r.getOrCreateSlot(final).occupant = NewRef(a)
}

// getOrCreateSlot returns the mutable slot for a final kind, creating an
// empty one if absent.
func (r *Registry) getOrCreateSlot(final *Kind) *slot {
	s, ok := r.slots[final]
	if !ok {
		s = &slot{}
		r.slots[final] = s
	}
	return s
}

// Instance returns the live singleton for the given kind's resolved
// boundary in w, or nil. A nil world or kind is a programmer error and
// reports through the logger before returning nil; a world without an
// attached registry simply has no singletons yet and returns nil
// silently.
func Instance(w *World, k *Kind) Actor {
	if w == nil {
		return nil
	}
	if k == nil {
		w.logger.DPanic("Instance called with nil kind", zap.String("world", w.name))
		return nil
	}
	r := w.registry
	if r == nil {
		return nil
	}
	final := k.FinalKind()
	if final == nil {
		w.logger.Error("kind hierarchy has no terminal boundary",
			zap.String("world", w.name),
			zap.String("kind", k.name))
		return nil
	}
	a, ok := r.Lookup(final)
	if !ok {
		return nil
	}
	return a
}

// InstanceOf is the typed version of Instance. It returns nil when there
// is no live singleton, or when the occupant's concrete type differs
// from T (kinds sharing a final boundary may be occupied by a sibling
// type).
func InstanceOf[T any](w *World) *T {
	if w == nil {
		return nil
	}
	k := w.kinds.kindForType(reflect.TypeFor[T]())
	if k == nil {
		w.logger.DPanic("InstanceOf called with unregistered type",
			zap.String("world", w.name),
			zap.String("type", reflect.TypeFor[T]().String()))
		return nil
	}
	a := Instance(w, k)
	if a == nil {
		return nil
	}
	t, ok := any(a).(*T)
	if !ok {
		return nil
	}
	return t
}
