// Package ebiten provides Dear ImGui backend integration for hosting the
// editor's notice windows inside an Ebiten game loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// Backend wraps the Ebiten-specific Dear ImGui backend implementation.
// Use this to render editor notices on top of an Ebiten game.
type Backend struct {
	*ebitenbackend.EbitenBackend
}
