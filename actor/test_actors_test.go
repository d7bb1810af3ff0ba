package actor_test

import "github.com/plus3/highlander/actor"

// Common test actor types

// GameDirector is a plain concrete root: its own boundary.
type GameDirector struct {
	actor.Base
}

// Weather is an abstract root; its concrete children are distinct
// singletons.
type Weather struct {
	actor.Base
}

type RainWeather struct {
	actor.Base
}

type SnowWeather struct {
	actor.Base
}

// Spawner is an abstract root with a concrete child that becomes the
// boundary for everything below it.
type Spawner struct {
	actor.Base
}

type BossSpawner struct {
	actor.Base
}

type MiniBossSpawner struct {
	actor.Base
}

// FloatingConfig is concrete but opts out of ever being terminal, so a
// hierarchy made only of it has no boundary at all.
type FloatingConfig struct {
	actor.Base
}

func (*FloatingConfig) IsFinalKind() bool { return false }

// Zone is abstract but forces itself terminal, so all zones compare as
// one singleton.
type Zone struct {
	actor.Base
}

func (*Zone) IsFinalKind() bool { return true }

type ForestZone struct {
	actor.Base
}

type DesertZone struct {
	actor.Base
}

// Cinematic overrides the editor notice text.
type Cinematic struct {
	actor.Base
}

func (*Cinematic) NoticeTitle() string { return "Cinematic Removed" }
func (*Cinematic) NoticeBody() string {
	return "Only one cinematic director may exist per level."
}

type testKinds struct {
	set *actor.KindSet

	director  *actor.Kind
	weather   *actor.Kind
	rain      *actor.Kind
	snow      *actor.Kind
	spawner   *actor.Kind
	boss      *actor.Kind
	miniBoss  *actor.Kind
	floating  *actor.Kind
	zone      *actor.Kind
	forest    *actor.Kind
	desert    *actor.Kind
	cinematic *actor.Kind
}

func newTestKinds() *testKinds {
	set := actor.NewKindSet()
	k := &testKinds{set: set}
	k.director = actor.RegisterKind[GameDirector](set, "GameDirector")
	k.weather = actor.RegisterKind[Weather](set, "Weather", actor.Abstract())
	k.rain = actor.RegisterKind[RainWeather](set, "RainWeather", actor.Parent(k.weather))
	k.snow = actor.RegisterKind[SnowWeather](set, "SnowWeather", actor.Parent(k.weather))
	k.spawner = actor.RegisterKind[Spawner](set, "Spawner", actor.Abstract())
	k.boss = actor.RegisterKind[BossSpawner](set, "BossSpawner", actor.Parent(k.spawner))
	k.miniBoss = actor.RegisterKind[MiniBossSpawner](set, "MiniBossSpawner", actor.Parent(k.boss))
	k.floating = actor.RegisterKind[FloatingConfig](set, "FloatingConfig")
	k.zone = actor.RegisterKind[Zone](set, "Zone", actor.Abstract())
	k.forest = actor.RegisterKind[ForestZone](set, "ForestZone", actor.Parent(k.zone))
	k.desert = actor.RegisterKind[DesertZone](set, "DesertZone", actor.Parent(k.zone))
	k.cinematic = actor.RegisterKind[Cinematic](set, "Cinematic")
	return k
}
