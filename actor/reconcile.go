package actor

import "go.uber.org/zap"

// Reconcile runs duplicate elimination for a single actor: the actor
// either claims the open singleton slot for its final kind or is removed
// as a duplicate. Spawn calls it automatically and the registry re-runs
// it during its attach sweep; calling it again on an actor that already
// occupies its slot is a no-op.
//
// It silently does nothing when the actor is not live, is transient, is
// a canonical representative, or when the world has no attached registry
// yet (the attach sweep picks those up later). A hierarchy without a
// terminal boundary is a configuration error: it is logged and the actor
// is left unmanaged.
func (w *World) Reconcile(a Actor) {
	if a == nil {
		return
	}
	b := a.base()
	if !b.spawned || b.destroying || b.destroyed || b.transient {
		return
	}
	if b.representative {
		return
	}

	r := w.registry
	if r == nil || !r.ready {
		return
	}

	final := b.kind.FinalKind()
	if final == nil {
		r.stats.Unmanaged++
		w.logger.Error("kind hierarchy has no terminal boundary, actor left unmanaged",
			zap.String("world", w.name),
			zap.String("kind", b.kind.name),
			zap.Uint64("actor", uint64(b.id)))
		return
	}

	s := r.getOrCreateSlot(final)
	if s.occupant.id == b.id {
		return
	}

	if _, live := s.occupant.Resolve(w); !live {
		stale := s.occupant.id != 0
		r.claim(final, a)
		r.stats.Claims++
		if stale {
			r.stats.Reclaims++
		}
		w.logger.Warn("actor is now the singleton instance of its kind, further instances in this world will be destroyed",
			zap.String("world", w.name),
			zap.String("kind", final.name),
			zap.Uint64("actor", uint64(b.id)))
		return
	}

	// The slot is held by a different live actor, so this one is a
	// duplicate. Always logged as an error and always removed.
	r.stats.Duplicates++
	w.logger.Error("world can have only one instance of this kind, removing duplicate",
		zap.String("world", w.name),
		zap.String("kind", final.name),
		zap.Uint64("actor", uint64(b.id)),
		zap.Uint64("instance", uint64(s.occupant.id)))

	w.removal().Remove(w, a)
}
