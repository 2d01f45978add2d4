package game

import (
	"math"
	"strings"
	"testing"

	"portfoliohud/content"
	"portfoliohud/view"
)

func TestOverlayHeroCallToAction(t *testing.T) {
	o := newTestOverlay(t)
	o.Activate()

	if o.Router().Current() != view.Projects {
		t.Fatalf("expected projects, got %s", o.Router().Current())
	}
	if _, open := o.Router().Selected(); open {
		t.Error("the call to action should not open a project")
	}
}

func TestOverlayGalleryCursor(t *testing.T) {
	o := newTestOverlay(t)
	n := len(o.catalog.Projects)

	o.MoveCursor(1)
	if o.Cursor() != 0 {
		t.Error("cursor should not move outside the gallery")
	}

	o.Navigate(view.Projects)
	o.MoveCursor(-1)
	if o.Cursor() != n-1 {
		t.Errorf("expected wrap to %d, got %d", n-1, o.Cursor())
	}
	o.MoveCursor(1)
	if o.Cursor() != 0 {
		t.Errorf("expected wrap to 0, got %d", o.Cursor())
	}

	o.MoveCursor(1)
	o.Activate()
	id, open := o.Router().Selected()
	if !open || id != o.catalog.Projects[1].ID {
		t.Fatalf("expected %s open, got %q (%v)", o.catalog.Projects[1].ID, id, open)
	}

	o.MoveCursor(1)
	if o.Cursor() != 1 {
		t.Error("cursor should be frozen while a project is open")
	}

	o.Back()
	if _, open := o.Router().Selected(); open {
		t.Error("Back should close the project")
	}
	o.Navigate(view.Skills)
	o.Activate()
	if _, open := o.Router().Selected(); open {
		t.Error("Enter outside the gallery should not open a project")
	}
}

func TestOverlaySlideSettles(t *testing.T) {
	o := newTestOverlay(t)
	o.Update()
	if o.Slide() != 0 {
		t.Fatalf("no page change, slide = %v", o.Slide())
	}

	o.Navigate(view.Contact)
	o.Update()
	if o.Slide() <= 0 || o.Slide() > slideDistance {
		t.Errorf("slide after a page change = %v, want in (0,%d]", o.Slide(), slideDistance)
	}

	for i := 0; i < 300; i++ {
		o.Update()
	}
	if math.Abs(o.Slide()) > 0.5 {
		t.Errorf("slide did not settle: %v", o.Slide())
	}
}

func TestOverlayDrawsEveryPage(t *testing.T) {
	tests := []struct {
		name  string
		setup func(o *Overlay)
		want  string
	}{
		{name: "home", setup: func(o *Overlay) {}, want: "[Enter] View My Work"},
		{name: "gallery", setup: func(o *Overlay) { o.Navigate(view.Projects) }, want: "> E-Commerce Analytics Dashboard"},
		{name: "detail", setup: func(o *Overlay) { o.Navigate(view.Projects); o.Activate() }, want: "[Backspace] Back to Gallery"},
		{name: "skills", setup: func(o *Overlay) { o.Navigate(view.Skills) }, want: "Skills & Expertise"},
		{name: "contact", setup: func(o *Overlay) { o.Navigate(view.Contact) }, want: "luiscsmodesto@outlook.com"},
		{name: "spanish", setup: func(o *Overlay) { o.ToggleLanguage(); o.Navigate(view.Contact) }, want: "Contactame"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestOverlay(t)
			tt.setup(o)
			c := newCanvas()
			o.Draw(c, 1280, 900)

			if !c.drew(tt.want) {
				t.Errorf("expected %q among %d strings drawn", tt.want, len(c.texts))
			}
			if c.calls["clear"] != 0 {
				t.Error("the overlay must not clear the background")
			}
		})
	}
}

func TestOverlayDetailDrawsCharts(t *testing.T) {
	o := newTestOverlay(t)
	o.Navigate(view.Projects)
	o.Activate()

	c := newCanvas()
	o.Draw(c, 1600, 1400)

	p := o.catalog.Projects[0]
	for _, ch := range p.Charts {
		if !c.drew(fold(ch.Title.Get(content.EN))) {
			t.Errorf("chart %q not drawn", ch.Title.EN)
		}
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Contáctame", "Contactame"},
		{"¿Tienes un proyecto en mente?", "Tienes un proyecto en mente?"},
		{"Tecnologías", "Tecnologias"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := fold(tt.in); got != tt.want {
			t.Errorf("fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWrap(t *testing.T) {
	lines := wrap("the quick brown fox jumps over the lazy dog", 10)
	for _, l := range lines {
		if len(l) > 10 {
			t.Errorf("line %q longer than 10", l)
		}
	}
	if got := strings.Join(lines, " "); got != "the quick brown fox jumps over the lazy dog" {
		t.Errorf("wrap lost words: %q", got)
	}
	if got := wrap("", 10); len(got) != 0 {
		t.Errorf("expected no lines, got %v", got)
	}
}

func TestOverlayGalleryScrollsToCursor(t *testing.T) {
	o := newTestOverlay(t)
	o.Navigate(view.Projects)
	projects := o.catalog.Projects
	last := len(projects) - 1

	o.MoveCursor(-1)
	if o.Cursor() != last {
		t.Fatalf("cursor = %d, want %d", o.Cursor(), last)
	}

	// Tall enough for two gallery rows only.
	c := newCanvas()
	o.Draw(c, 1280, 250)
	if !c.drew("> " + fold(projects[last].Title.Get(content.EN))) {
		t.Errorf("highlighted project %s is not drawn: %q", projects[last].ID, c.texts)
	}
	if c.drew("  " + fold(projects[0].Title.Get(content.EN))) {
		t.Error("first project should have scrolled out of view")
	}

	o.MoveCursor(1)
	c = newCanvas()
	o.Draw(c, 1280, 250)
	if !c.drew("> " + fold(projects[0].Title.Get(content.EN))) {
		t.Error("wrapping to the top should scroll back")
	}
}
