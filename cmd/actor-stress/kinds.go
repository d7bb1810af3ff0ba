package main

import "github.com/plus3/highlander/actor"

// Stress hierarchy: an abstract root, a handful of concrete managers,
// and a boundary shared by a spawner family so the run exercises both
// per-kind slots and a shared final kind.

type Manager struct{ actor.Base }

type AudioManager struct{ actor.Base }
type CameraManager struct{ actor.Base }
type WeatherManager struct{ actor.Base }
type NavManager struct{ actor.Base }
type PhysicsManager struct{ actor.Base }
type UIManager struct{ actor.Base }
type SaveManager struct{ actor.Base }

type SpawnManager struct{ actor.Base }
type BossSpawnManager struct{ actor.Base }
type RaidSpawnManager struct{ actor.Base }

// buildKinds registers the stress hierarchy and returns the concrete,
// spawnable kinds.
func buildKinds() (*actor.KindSet, []*actor.Kind) {
	set := actor.NewKindSet()
	root := actor.RegisterKind[Manager](set, "Manager", actor.Abstract())

	spawnable := []*actor.Kind{
		actor.RegisterKind[AudioManager](set, "AudioManager", actor.Parent(root)),
		actor.RegisterKind[CameraManager](set, "CameraManager", actor.Parent(root)),
		actor.RegisterKind[WeatherManager](set, "WeatherManager", actor.Parent(root)),
		actor.RegisterKind[NavManager](set, "NavManager", actor.Parent(root)),
		actor.RegisterKind[PhysicsManager](set, "PhysicsManager", actor.Parent(root)),
		actor.RegisterKind[UIManager](set, "UIManager", actor.Parent(root)),
		actor.RegisterKind[SaveManager](set, "SaveManager", actor.Parent(root)),
	}

	// SpawnManager is the boundary for its whole family.
	spawn := actor.RegisterKind[SpawnManager](set, "SpawnManager", actor.Parent(root))
	spawnable = append(spawnable,
		spawn,
		actor.RegisterKind[BossSpawnManager](set, "BossSpawnManager", actor.Parent(spawn)),
		actor.RegisterKind[RaidSpawnManager](set, "RaidSpawnManager", actor.Parent(spawn)),
	)
	return set, spawnable
}
