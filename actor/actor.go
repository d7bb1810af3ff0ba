package actor

// ID identifies a spawned actor within its world. IDs are never reused
// during a world's lifetime, so a stale ID simply resolves to nothing.
type ID uint64

// Actor is implemented by any type that embeds Base. User-defined actor
// types should embed Base as their first field and register themselves
// with a KindSet before spawning.
type Actor interface {
	base() *Base
}

// Base carries the per-instance state every actor needs: its identity,
// the world it was spawned into, its registered kind, and lifecycle flags.
// Embed it in concrete actor types.
type Base struct {
	id             ID
	world          *World
	kind           *Kind
	transient      bool
	representative bool
	spawned        bool
	destroying     bool
	destroyed      bool
}

func (b *Base) base() *Base { return b }

// ID returns the actor's world-scoped identifier, or 0 before spawning.
func (b *Base) ID() ID { return b.id }

// World returns the world the actor was spawned into, or nil.
func (b *Base) World() *World { return b.world }

// Kind returns the actor's registered kind. For spawned actors and
// canonical representatives this is always non-nil.
func (b *Base) Kind() *Kind { return b.kind }

// Transient reports whether the actor was spawned as transient.
// Transient actors are never subject to duplicate elimination.
func (b *Base) Transient() bool { return b.transient }

// Alive reports whether the actor is currently spawned and not in any
// stage of destruction.
func (b *Base) Alive() bool {
	return b.spawned && !b.destroying && !b.destroyed
}

// Ref is a stable reference to an actor by ID. Unlike holding the Actor
// directly, a Ref can be resolved against the world later and reports
// whether the target is still live.
type Ref struct {
	id ID
}

// NewRef creates a reference to the given actor. A nil or unspawned
// actor yields the zero Ref, which never resolves.
func NewRef(a Actor) Ref {
	if a == nil {
		return Ref{}
	}
	return Ref{id: a.base().id}
}

// ID returns the referenced actor's ID (0 for the zero Ref).
func (r Ref) ID() ID { return r.id }

// Resolve returns the referenced actor if it is still live in w.
func (r Ref) Resolve(w *World) (Actor, bool) {
	if w == nil || r.id == 0 {
		return nil, false
	}
	a, ok := w.actors.Get(r.id)
	if !ok || !a.base().Alive() {
		return nil, false
	}
	return a, true
}

// NoticeProvider lets an actor type customize the title and body of the
// notice shown when one of its duplicates is removed during an editing
// session. Types that do not implement it get the editor's defaults.
type NoticeProvider interface {
	NoticeTitle() string
	NoticeBody() string
}
