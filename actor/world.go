package actor

import (
	"github.com/kamstrup/intmap"
	"go.uber.org/zap"
)

// Mode describes how a world is currently being driven.
type Mode uint8

const (
	// ModeLive is a running simulation. Duplicate actors are destroyed
	// directly.
	ModeLive Mode = iota
	// ModeEdit is an interactive editing session. Duplicate actors are
	// removed through the world's editor removal strategy so that
	// selection bookkeeping stays consistent.
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeLive:
		return "live"
	case ModeEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// World owns a set of spawned actors and, once one is attached, the
// singleton registry that polices them. All World methods must be called
// from a single goroutine; the world performs no locking of its own.
type World struct {
	name     string
	mode     Mode
	kinds    *KindSet
	logger   *zap.Logger
	actors   *intmap.Map[ID, Actor]
	order    []ID
	nextID   ID
	registry *Registry
	editor   RemovalStrategy
	deferred []func()
	dirty    bool
}

// WorldOption configures a world at construction time.
type WorldOption func(*World)

// WithMode sets the world's initial mode. The default is ModeLive.
func WithMode(m Mode) WorldOption {
	return func(w *World) { w.mode = m }
}

// WithLogger sets the logger used for singleton claims, duplicate
// removals and misuse reports. The default is a no-op logger.
func WithLogger(l *zap.Logger) WorldOption {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithEditorRemoval installs the removal strategy used for duplicates
// found while the world is in ModeEdit. Without one, edit-mode worlds
// fall back to immediate destruction.
func WithEditorRemoval(s RemovalStrategy) WorldOption {
	return func(w *World) { w.editor = s }
}

// NewWorld creates an empty world bound to the given kind set.
func NewWorld(name string, kinds *KindSet, opts ...WorldOption) *World {
	if kinds == nil {
		panic("actor: NewWorld requires a KindSet")
	}
	w := &World{
		name:   name,
		kinds:  kinds,
		logger: zap.NewNop(),
		actors: intmap.New[ID, Actor](64),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Name returns the world's name, used in log output.
func (w *World) Name() string { return w.name }

// Mode returns the world's current mode.
func (w *World) Mode() Mode { return w.mode }

// SetMode switches the world between live simulation and editing.
func (w *World) SetMode(m Mode) { w.mode = m }

// Logger returns the world's logger.
func (w *World) Logger() *zap.Logger { return w.logger }

// Registry returns the attached singleton registry, or nil before one
// has been attached.
func (w *World) Registry() *Registry { return w.registry }

// Len returns the number of live actors in the world.
func (w *World) Len() int { return w.actors.Len() }

// Get returns the live actor with the given ID.
func (w *World) Get(id ID) (Actor, bool) {
	return w.actors.Get(id)
}

// Actors returns the world's live actors in construction order.
func (w *World) Actors() []Actor {
	out := make([]Actor, 0, w.actors.Len())
	for _, id := range w.order {
		if a, ok := w.actors.Get(id); ok {
			out = append(out, a)
		}
	}
	return out
}

// SpawnOption configures a single spawn.
type SpawnOption func(*Base)

// Transient marks the spawned actor as ephemeral. Transient actors are
// ignored by duplicate elimination, mirroring the dummy objects editors
// create while dragging things around.
func Transient() SpawnOption {
	return func(b *Base) { b.transient = true }
}

// Spawner is an optional hook run after an actor has been placed into a
// world and reconciled. It is skipped when the actor was removed as a
// duplicate during reconciliation.
type Spawner interface {
	OnSpawn(w *World)
}

// Destroyer is an optional hook run while an actor is being destroyed.
type Destroyer interface {
	OnDestroy(w *World)
}

// Spawn places the actor into the world and runs duplicate
// reconciliation on it. The returned ID is assigned even when the actor
// loses reconciliation and is removed; check Alive afterwards if that
// matters. The actor's concrete type must have been registered with the
// world's KindSet.
func (w *World) Spawn(a Actor, opts ...SpawnOption) ID {
	if a == nil {
		w.logger.DPanic("spawn of nil actor", zap.String("world", w.name))
		return 0
	}
	b := a.base()
	if b.representative {
		w.logger.DPanic("spawn of canonical representative",
			zap.String("world", w.name),
			zap.String("kind", b.kind.name))
		return 0
	}
	if b.spawned || b.destroyed {
		w.logger.DPanic("actor spawned twice", zap.String("world", w.name))
		return b.id
	}
	kind := w.kinds.KindOf(a)
	if kind == nil {
		panic("actor: type not registered with this world's KindSet")
	}

	for _, opt := range opts {
		opt(b)
	}
	w.nextID++
	b.id = w.nextID
	b.world = w
	b.kind = kind
	b.spawned = true
	w.actors.Put(b.id, a)
	w.order = append(w.order, b.id)

	w.Reconcile(a)

	if b.Alive() {
		if s, ok := a.(Spawner); ok {
			s.OnSpawn(w)
		}
	}
	return b.id
}

// Destroy removes the actor from the world. Destroying an actor that is
// not live in this world is a no-op. Singleton registry slots pointing
// at it are reclaimed lazily by the next reconciliation, not here.
func (w *World) Destroy(a Actor) {
	if a == nil {
		return
	}
	b := a.base()
	if !b.spawned || b.destroying || b.destroyed || b.world != w {
		return
	}
	b.destroying = true
	if d, ok := a.(Destroyer); ok {
		d.OnDestroy(w)
	}
	w.actors.Del(b.id)
	b.destroying = false
	b.destroyed = true
}

// Defer queues fn to run on the next Tick. Editor removal uses this for
// cleanup that must happen one tick after a deletion.
func (w *World) Defer(fn func()) {
	w.deferred = append(w.deferred, fn)
}

// Tick drains and runs the world's deferred functions in order.
func (w *World) Tick() {
	fns := w.deferred
	w.deferred = nil
	for _, fn := range fns {
		fn()
	}
}

// MarkDirty flags the editing session as having unsaved changes.
func (w *World) MarkDirty() { w.dirty = true }

// Dirty reports whether the editing session has unsaved changes.
func (w *World) Dirty() bool { return w.dirty }

// removal picks the strategy used to get rid of a duplicate: the editor
// strategy during editing sessions, direct destruction otherwise.
func (w *World) removal() RemovalStrategy {
	if w.mode == ModeEdit && w.editor != nil {
		return w.editor
	}
	return ImmediateRemoval{}
}
