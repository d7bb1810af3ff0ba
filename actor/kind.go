package actor

import (
	"reflect"
)

// KindSet manages kind registration for a group of worlds. Each world is
// bound to exactly one KindSet; independent sets can coexist without
// interference.
type KindSet struct {
	byName map[string]*Kind
	byType map[reflect.Type]*Kind
}

// NewKindSet creates an empty kind set.
func NewKindSet() *KindSet {
	return &KindSet{
		byName: make(map[string]*Kind),
		byType: make(map[reflect.Type]*Kind),
	}
}

// Kind is the registration-time metadata for an actor type: its name,
// its place in the kind hierarchy, and a canonical representative
// instance used to evaluate type-level predicates without ever spawning
// anything. Representatives are never placed into a world.
type Kind struct {
	set      *KindSet
	name     string
	typ      reflect.Type
	parent   *Kind
	abstract bool
	rep      Actor
}

// KindOption configures a kind at registration time.
type KindOption func(*Kind)

// Abstract marks the kind as abstract. Abstract kinds are not terminal
// by default, so their subclasses are compared as distinct singletons
// unless an ancestor overrides the boundary.
func Abstract() KindOption {
	return func(k *Kind) { k.abstract = true }
}

// Parent places the kind under p in the hierarchy. p must belong to the
// same KindSet.
func Parent(p *Kind) KindOption {
	return func(k *Kind) { k.parent = p }
}

// RegisterKind binds the Go type T to a new kind in the given set.
// T must embed Base. This must be called once per actor type before any
// instance of it is spawned. Registering the same name or type twice
// panics, as does a parent from a different set.
func RegisterKind[T any](set *KindSet, name string, opts ...KindOption) *Kind {
	typ := reflect.TypeFor[T]()
	rep, ok := any(new(T)).(Actor)
	if !ok {
		panic("actor: type " + typ.String() + " does not embed actor.Base")
	}
	if _, dup := set.byName[name]; dup {
		panic("actor: kind " + name + " already registered")
	}
	if _, dup := set.byType[typ]; dup {
		panic("actor: type " + typ.String() + " already registered")
	}

	k := &Kind{
		set:  set,
		name: name,
		typ:  typ,
		rep:  rep,
	}
	for _, opt := range opts {
		opt(k)
	}
	if k.parent != nil && k.parent.set != set {
		panic("actor: parent kind " + k.parent.name + " belongs to a different set")
	}

	rep.base().kind = k
	rep.base().representative = true

	set.byName[name] = k
	set.byType[typ] = k
	return k
}

// KindOf returns the kind registered for the actor's concrete type, or
// nil if the type was never registered.
func (s *KindSet) KindOf(a Actor) *Kind {
	if a == nil {
		return nil
	}
	return s.kindForType(reflect.TypeOf(a).Elem())
}

// KindNamed returns the kind registered under name, or nil.
func (s *KindSet) KindNamed(name string) *Kind {
	return s.byName[name]
}

func (s *KindSet) kindForType(typ reflect.Type) *Kind {
	return s.byType[typ]
}

// Name returns the kind's registered name.
func (k *Kind) Name() string { return k.name }

// Parent returns the kind directly above this one, or nil for a root.
func (k *Kind) Parent() *Kind { return k.parent }

// IsAbstract reports whether the kind was registered with Abstract().
func (k *Kind) IsAbstract() bool { return k.abstract }

// Representative returns the kind's canonical representative instance.
// It exists purely to evaluate type-level predicates; spawning it or
// mutating its state is a misuse.
func (k *Kind) Representative() Actor { return k.rep }

// New allocates a fresh, unspawned instance of the kind's Go type.
func (k *Kind) New() Actor {
	return reflect.New(k.typ).Interface().(Actor)
}
