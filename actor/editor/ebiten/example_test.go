package ebiten_test

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/highlander/actor"
	"github.com/plus3/highlander/actor/editor"
	editorebiten "github.com/plus3/highlander/actor/editor/ebiten"
)

type SkySettings struct {
	actor.Base
}

// Editor implements ebiten.Game and hosts an edit-mode world with the
// duplicate-notice overlay rendered through ImGui.
type Editor struct {
	world   *actor.World
	notices *editor.NoticeWindow
	backend editorebiten.Backend
}

func (e *Editor) Update() error {
	// Begin ImGui frame before rendering editor widgets
	e.backend.BeginFrame()

	e.notices.Render()

	// Run deferred editor cleanup queued by duplicate removal
	e.world.Tick()

	// End ImGui frame after widgets complete
	e.backend.EndFrame()

	return nil
}

func (e *Editor) Draw(screen *ebiten.Image) {
	// Draw world content to screen
	// ...

	// Draw ImGui overlay on top
	e.backend.Draw(screen)
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	// Create Ebiten window and ImGui backend
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow("Editor Example", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	// Register the singleton kind
	kinds := actor.NewKindSet()
	actor.RegisterKind[SkySettings](kinds, "SkySettings")

	// Edit-mode world with the interactive removal path installed
	notices := editor.NewNoticeWindow()
	sub := editor.NewSubsystem(notices)
	world := actor.NewWorld("level-1", kinds,
		actor.WithMode(actor.ModeEdit),
		actor.WithEditorRemoval(sub))
	actor.NewRegistry(nil).Attach(world)

	// The second spawn is a duplicate; the overlay pops the notice
	world.Spawn(&SkySettings{})
	world.Spawn(&SkySettings{})

	ed := &Editor{
		world:   world,
		notices: notices,
		backend: editorebiten.Backend{EbitenBackend: backend},
	}

	if err := ebiten.RunGame(ed); err != nil {
		panic(err)
	}
}
