package actor_test

import (
	"fmt"

	"github.com/plus3/highlander/actor"
)

type MusicDirector struct {
	actor.Base
}

type AmbientLight struct {
	actor.Base
}

type PointLight struct {
	actor.Base
}

// ExampleNewWorld demonstrates the basic singleton guarantee: spawning a
// second actor of the same kind into one world removes it on the spot.
func ExampleNewWorld() {
	kinds := actor.NewKindSet()
	actor.RegisterKind[MusicDirector](kinds, "MusicDirector")

	world := actor.NewWorld("arena", kinds)
	actor.NewRegistry(nil).Attach(world)

	first := &MusicDirector{}
	second := &MusicDirector{}
	world.Spawn(first)
	world.Spawn(second)

	fmt.Printf("first alive: %v\n", first.Alive())
	fmt.Printf("second alive: %v\n", second.Alive())
	fmt.Printf("instance is first: %v\n", actor.InstanceOf[MusicDirector](world) == first)

	// Output:
	// first alive: true
	// second alive: false
	// instance is first: true
}

// ExampleRegistry_Attach demonstrates the attach sweep: actors spawned
// before the world has a registry are reconciled once it appears.
func ExampleRegistry_Attach() {
	kinds := actor.NewKindSet()
	actor.RegisterKind[MusicDirector](kinds, "MusicDirector")

	world := actor.NewWorld("arena", kinds)

	// No registry yet: both spawns survive unchecked.
	first := &MusicDirector{}
	second := &MusicDirector{}
	world.Spawn(first)
	world.Spawn(second)
	fmt.Printf("before sweep: %d actors\n", world.Len())

	// Attaching sweeps the world and removes the duplicate.
	actor.NewRegistry(nil).Attach(world)
	fmt.Printf("after sweep: %d actors\n", world.Len())

	// Output:
	// before sweep: 2 actors
	// after sweep: 1 actors
}

// ExampleRegisterKind demonstrates hierarchy boundaries: an abstract
// parent is skipped, so each concrete light kind is its own singleton.
func ExampleRegisterKind() {
	kinds := actor.NewKindSet()
	light := actor.RegisterKind[AmbientLight](kinds, "AmbientLight")
	actor.RegisterKind[PointLight](kinds, "PointLight", actor.Parent(light))

	world := actor.NewWorld("arena", kinds)
	actor.NewRegistry(nil).Attach(world)

	ambient := &AmbientLight{}
	point := &PointLight{}
	world.Spawn(ambient)
	world.Spawn(point)

	// AmbientLight is concrete, so it is the boundary for PointLight
	// too: the second spawn was a duplicate.
	fmt.Printf("ambient alive: %v\n", ambient.Alive())
	fmt.Printf("point alive: %v\n", point.Alive())

	// Output:
	// ambient alive: true
	// point alive: false
}
