package editor

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// NoticeWindow is a Notifier that queues notices and renders them as a
// Dear ImGui window, one at a time. Call Render each frame from inside
// an active ImGui frame.
type NoticeWindow struct {
	pending []queuedNotice
}

type queuedNotice struct {
	title string
	body  string
}

// NewNoticeWindow creates an empty notice window.
func NewNoticeWindow() *NoticeWindow {
	return &NoticeWindow{}
}

// Notify implements Notifier.
func (n *NoticeWindow) Notify(title, body string) {
	n.pending = append(n.pending, queuedNotice{title: title, body: body})
}

// HasPending reports whether any notice is still waiting to be
// acknowledged.
func (n *NoticeWindow) HasPending() bool {
	return len(n.pending) > 0
}

// Render draws the oldest pending notice and pops it when the user
// acknowledges it. Does nothing when the queue is empty.
func (n *NoticeWindow) Render() {
	if len(n.pending) == 0 {
		return
	}
	head := n.pending[0]

	imgui.SetNextWindowPosV(imgui.NewVec2(200, 200), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 0), imgui.CondOnce)

	if !imgui.BeginV(head.title+"###duplicate-notice", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	imgui.Text(head.body)
	imgui.Separator()
	if imgui.Button("OK") {
		n.pending = n.pending[1:]
	}
	imgui.End()
}
