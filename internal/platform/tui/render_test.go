package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/binbreak/internal/core"
)

func TestScreenRunsSplitOnColorChange(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorGreen)
	s.DrawText(4, 0, "ef", core.ColorGreen)
	s.DrawText(6, 0, "gh", core.ColorRed)

	want := []colorRun{
		{core.ColorRed, "ab"},
		{core.ColorGreen, "cdef"},
		{core.ColorRed, "gh"},
	}
	got := screenRuns(s, 0)
	if len(got) != len(want) {
		t.Fatalf("screenRuns() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	blank := screenRuns(s, 1)
	if len(blank) != 1 || blank[0].color != core.ColorDefault || blank[0].text != "        " {
		t.Errorf("blank row runs = %+v", blank)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawText(0, 1, "10", core.ColorModeGreen)
	s.DrawText(2, 1, "01", core.ColorBrightRed)

	out := RenderScreen(s)
	if n := strings.Count(out, "\n"); n != s.Height()-1 {
		t.Errorf("expected %d newlines, got %d", s.Height()-1, n)
	}
	for _, text := range []string{"10", "01"} {
		if !strings.Contains(out, text) {
			t.Errorf("rendered screen missing %q: %q", text, out)
		}
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(250)).Render("x"); got != colorStyles[core.ColorDefault].Render("x") {
		t.Errorf("unknown color should render with the default style, got %q", got)
	}
}
