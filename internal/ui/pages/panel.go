package pages

import (
	"github.com/charmbracelet/bubbles/viewport"
	cblog "github.com/charmbracelet/log"

	"coinmind/internal/ui/input/types"
	"coinmind/internal/ui/views"
)

// textPanel is a scrollable block of markdown text
type textPanel struct {
	markdown bool
	vp       viewport.Model
	ready    bool
	text     string
	width    int
	dirty    bool
}

func newTextPanel(markdown bool) *textPanel {
	return &textPanel{markdown: markdown}
}

func (t *textPanel) SetText(s string) {
	t.text = s
	t.dirty = true
}

func (t *textPanel) Text() string { return t.text }

func (t *textPanel) scroll(k types.Key) bool {
	if !t.ready {
		return false
	}
	switch k {
	case types.KeyUp:
		t.vp.ScrollUp(1)
		return true
	case types.KeyDown:
		t.vp.ScrollDown(1)
		return true
	}
	return false
}

func (t *textPanel) View(width, height int) string {
	if !t.ready {
		t.vp = viewport.New(width, height)
		t.ready = true
	}
	t.vp.Width = width
	t.vp.Height = height
	if t.dirty || width != t.width {
		t.width = width
		t.dirty = false
		content := t.text
		if t.markdown && content != "" {
			out, err := views.RenderMarkdown(content, width)
			if err != nil {
				cblog.With("component", "panel").Warn("Markdown render failed", "err", err)
			}
			content = out
		}
		t.vp.SetContent(content)
		t.vp.GotoTop()
	}
	return t.vp.View()
}
