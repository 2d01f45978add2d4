package game

import (
	"fmt"
	"image/color"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/harmonica"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"portfoliohud/content"
	"portfoliohud/hud"
	"portfoliohud/view"
)

// Overlay geometry in logical pixels. basicfont glyphs are 7x13.
const (
	navHeight     = 36
	footerHeight  = 28
	lineHeight    = 16
	glyphWidth    = 7
	wideMargin    = 48
	narrowMargin  = 16
	slideDistance = 48
	chartHeight   = 170
	chartGap      = 12
	skillBarWidth = 200
)

// Spring tuning for the page slide-in.
const (
	slideFPS       = 60
	slideFrequency = 6.0
	slideDamping   = 0.7
)

var glyphReplacer = strings.NewReplacer("¿", "", "¡", "", "«", "\"", "»", "\"", "·", "-", "£", "GBP")

// fold reduces s to the ASCII the HUD font can draw: accents are stripped
// and a few punctuation marks replaced.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, glyphReplacer.Replace(s))
	if err != nil {
		return s
	}
	return out
}

// wrap breaks s into lines of at most width characters on word boundaries.
func wrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(s) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// Overlay is the portfolio drawn over the background: navigation, the
// current page and the footer.
type Overlay struct {
	catalog    *content.Catalog
	router     *view.Router
	lang       content.Language
	cursor     int
	year       int
	breakpoint float64

	theme hud.Theme
	style chartStyle

	spring   harmonica.Spring
	slide    float64
	slideVel float64
	page     string
}

// OverlayConfig wires an Overlay to its content and colours.
type OverlayConfig struct {
	Catalog  *content.Catalog
	Theme    hud.Theme
	Palette  []color.NRGBA
	Language content.Language

	// Breakpoint is the width at or below which narrow margins are used
	Breakpoint float64
}

// NewOverlay starts on Home.
func NewOverlay(cfg OverlayConfig) *Overlay {
	th := cfg.Theme
	o := &Overlay{
		catalog:    cfg.Catalog,
		lang:       cfg.Language,
		year:       time.Now().Year(),
		breakpoint: cfg.Breakpoint,
		theme:      th,
		style: chartStyle{
			frame:   hud.Fade(th.Accent, 0.5),
			text:    th.Accent,
			series:  th.Bar,
			palette: cfg.Palette,
		},
		spring: harmonica.NewSpring(harmonica.FPS(slideFPS), slideFrequency, slideDamping),
	}
	o.router = view.NewRouter(func(id string) bool {
		_, err := cfg.Catalog.Project(id)
		return err == nil
	})
	o.page = o.pageKey()
	return o
}

func (o *Overlay) Router() *view.Router       { return o.router }
func (o *Overlay) Language() content.Language { return o.lang }
func (o *Overlay) Cursor() int                { return o.cursor }

// Slide is the current horizontal offset of the page content.
func (o *Overlay) Slide() float64 { return o.slide }

func (o *Overlay) ToggleLanguage() {
	o.lang = o.lang.Toggle()
}

func (o *Overlay) Navigate(v view.View) {
	o.router.Navigate(v)
}

// MoveCursor moves the gallery highlight, wrapping at both ends.
func (o *Overlay) MoveCursor(delta int) {
	n := len(o.catalog.Projects)
	if n == 0 || o.router.Current() != view.Projects {
		return
	}
	if _, open := o.router.Selected(); open {
		return
	}
	o.cursor = ((o.cursor+delta)%n + n) % n
}

// Activate is Enter: the hero call to action on Home, open the highlighted
// project in the gallery.
func (o *Overlay) Activate() {
	switch o.router.Current() {
	case view.Home:
		o.router.ViewProjects()
	case view.Projects:
		if _, open := o.router.Selected(); open || len(o.catalog.Projects) == 0 {
			return
		}
		o.router.Select(o.catalog.Projects[o.cursor].ID)
	}
}

// Back closes the open project.
func (o *Overlay) Back() {
	o.router.Back()
}

func (o *Overlay) pageKey() string {
	id, _ := o.router.Selected()
	return o.router.Current().String() + "/" + id
}

// Update advances the slide-in spring, restarting it whenever the page changes.
func (o *Overlay) Update() {
	if key := o.pageKey(); key != o.page {
		o.page = key
		o.slide, o.slideVel = slideDistance, 0
	}
	o.slide, o.slideVel = o.spring.Update(o.slide, o.slideVel, 0)
}

func (o *Overlay) margin(w float64) float64 {
	if w > o.breakpoint {
		return wideMargin
	}
	return narrowMargin
}

// Draw paints navigation, page and footer for a w x h logical screen.
func (o *Overlay) Draw(c hud.Canvas, w, h float64) {
	o.drawNav(c, w)

	x := o.margin(w) + o.slide
	y := float64(navHeight + 40)
	width := w - 2*o.margin(w)

	switch o.router.Current() {
	case view.Home:
		o.drawHome(c, x, y, width)
	case view.Projects:
		if id, open := o.router.Selected(); open {
			o.drawProject(c, id, x, y, width, h-footerHeight)
		} else {
			o.drawGallery(c, x, y, width, h-footerHeight)
		}
	case view.Skills:
		o.drawSkills(c, x, y, h-footerHeight)
	case view.Contact:
		o.drawContact(c, x, y)
	}

	o.drawFooter(c, w, h)
}

func (o *Overlay) text(c hud.Canvas, s string, x, y float64, clr color.Color) {
	c.DrawText(fold(s), x, y, clr)
}

func (o *Overlay) drawNav(c hud.Canvas, w float64) {
	t := o.catalog.Strings(o.lang)
	c.FillRect(0, 0, w, navHeight, hud.Fade(o.theme.Background, 0.85))
	c.StrokeLine(0, navHeight, w, navHeight, 1, hud.Fade(o.theme.Accent, 0.3))
	o.text(c, t.Hero.Title, o.margin(w), 23, o.theme.Accent)

	items := []string{t.Nav.Home, t.Nav.Projects, t.Nav.Skills, t.Nav.Contact}
	x := w - o.margin(w)
	for i := len(items) - 1; i >= 0; i-- {
		label := fmt.Sprintf("%d %s", i+1, fold(items[i]))
		x -= float64(len(label)*glyphWidth) + 20
		clr := hud.Fade(o.theme.Accent, 0.6)
		if view.All[i] == o.router.Current() {
			clr = o.theme.Accent
			c.StrokeLine(x, navHeight-6, x+float64(len(label)*glyphWidth), navHeight-6, 2, o.theme.Accent)
		}
		c.DrawText(label, x, 23, clr)
	}
	o.text(c, strings.ToUpper(string(o.lang)), x-40, 23, hud.Fade(o.theme.Accent, 0.6))
}

func (o *Overlay) drawHome(c hud.Canvas, x, y, width float64) {
	t := o.catalog.Strings(o.lang).Hero
	o.text(c, t.Greeting, x, y+40, hud.Fade(o.theme.Accent, 0.7))
	o.text(c, strings.ToUpper(t.Title), x, y+40+lineHeight*2, o.theme.Accent)
	for i, l := range wrap(fold(t.Subtitle), int(width/glyphWidth)) {
		c.DrawText(l, x, y+40+lineHeight*float64(4+i), hud.Fade(o.theme.Accent, 0.8))
	}
	cta := "[Enter] " + fold(t.CTA)
	by := y + 40 + lineHeight*7
	c.StrokeRect(x-6, by-14, float64(len(cta)*glyphWidth)+12, 20, 1, o.theme.Accent)
	c.DrawText(cta, x, by, o.theme.Accent)
}

func (o *Overlay) drawGallery(c hud.Canvas, x, y, width, bottom float64) {
	t := o.catalog.Strings(o.lang).Projects
	o.text(c, t.Title, x, y, o.theme.Accent)
	y += lineHeight * 2

	cols := int(width / glyphWidth)

	// Scroll so the highlighted row is the last one that fits.
	const rowHeight = lineHeight * 4
	visible := max(1, int((bottom-y-lineHeight*3)/rowHeight)+1)
	first := 0
	if o.cursor >= visible {
		first = o.cursor - visible + 1
	}
	for i := first; i < len(o.catalog.Projects); i++ {
		p := o.catalog.Projects[i]
		if y+lineHeight*3 > bottom {
			break
		}
		clr := hud.Fade(o.theme.Accent, 0.6)
		marker := "  "
		if i == o.cursor {
			clr = o.theme.Accent
			marker = "> "
			c.FillRect(x-6, y-13, width+12, lineHeight*3+2, hud.Fade(o.theme.Bar, 0.12))
		}
		c.DrawText(marker+fold(p.Title.Get(o.lang)), x, y, clr)
		lines := wrap(fold(p.ShortDescription.Get(o.lang)), cols-2)
		if len(lines) > 2 {
			lines = lines[:2]
		}
		for j, l := range lines {
			c.DrawText("  "+l, x, y+lineHeight*float64(j+1), hud.Fade(o.theme.Accent, 0.5))
		}
		y += rowHeight
	}
}

func (o *Overlay) drawProject(c hud.Canvas, id string, x, y, width, bottom float64) {
	p, err := o.catalog.Project(id)
	if err != nil {
		return
	}
	t := o.catalog.Strings(o.lang).Projects
	cols := int(width / glyphWidth)

	c.DrawText("[Backspace] "+fold(t.BackToGallery), x, y, hud.Fade(o.theme.Accent, 0.6))
	y += lineHeight * 2
	o.text(c, p.Title.Get(o.lang), x, y, o.theme.Accent)
	y += lineHeight
	o.text(c, p.Category, x, y, hud.Fade(o.theme.Accent, 0.5))
	y += lineHeight * 2

	o.text(c, t.Technologies+": "+strings.Join(p.Technologies, ", "), x, y, hud.Fade(o.theme.Accent, 0.8))
	y += lineHeight * 2

	o.text(c, t.Overview, x, y, o.theme.Accent)
	y += lineHeight
	for _, l := range wrap(fold(p.Description.Get(o.lang)), cols) {
		c.DrawText(l, x, y, hud.Fade(o.theme.Accent, 0.7))
		y += lineHeight
	}
	y += lineHeight

	o.text(c, t.KeyFeatures, x, y, o.theme.Accent)
	y += lineHeight
	for _, f := range p.Features.Get(o.lang) {
		for i, l := range wrap(fold(f), cols-2) {
			prefix := "  "
			if i == 0 {
				prefix = "- "
			}
			c.DrawText(prefix+l, x, y, hud.Fade(o.theme.Accent, 0.7))
			y += lineHeight
		}
	}
	y += lineHeight

	o.drawCharts(c, p.Charts, x, y, width, bottom)
}

// drawCharts lays charts out three to a row on wide screens, one on narrow.
func (o *Overlay) drawCharts(c hud.Canvas, charts []content.Chart, x, y, width, bottom float64) {
	cols := 1
	if width+2*wideMargin > o.breakpoint {
		cols = 3
	}
	cw := (width - chartGap*float64(cols-1)) / float64(cols)
	for i, ch := range charts {
		cx := x + float64(i%cols)*(cw+chartGap)
		cy := y + float64(i/cols)*(chartHeight+chartGap)
		if cy+chartHeight > bottom {
			return
		}
		drawChart(c, o.style, ch, o.lang, cx, cy, cw, chartHeight)
	}
}

func (o *Overlay) drawSkills(c hud.Canvas, x, y, bottom float64) {
	t := o.catalog.Strings(o.lang).Skills
	o.text(c, t.Title, x, y, o.theme.Accent)
	y += lineHeight * 2

	for _, group := range o.catalog.SkillsByCategory() {
		o.text(c, strings.ToUpper(group.Name), x, y, hud.Fade(o.theme.Accent, 0.6))
		y += lineHeight
		for _, s := range group.Skills {
			if y > bottom {
				return
			}
			o.text(c, s.Name, x, y, o.theme.Accent)
			bx := x + 120
			c.FillRect(bx, y-9, skillBarWidth, 8, hud.Fade(o.theme.Bar, 0.15))
			c.FillRect(bx, y-9, skillBarWidth*float64(s.Level)/100, 8, hud.Fade(o.theme.Bar, 0.8))
			c.DrawText(fmt.Sprintf("%d%%", s.Level), bx+skillBarWidth+10, y, hud.Fade(o.theme.Accent, 0.7))
			y += lineHeight
		}
		y += lineHeight / 2
	}

	y += lineHeight
	o.text(c, t.Certifications, x, y, o.theme.Accent)
	y += lineHeight
	for _, cert := range o.catalog.Certifications {
		if y > bottom {
			return
		}
		o.text(c, fmt.Sprintf("- %s (%s, %s)", cert.Title.Get(o.lang), cert.Issuer, cert.Date), x, y, hud.Fade(o.theme.Accent, 0.7))
		y += lineHeight
	}
}

func (o *Overlay) drawContact(c hud.Canvas, x, y float64) {
	t := o.catalog.Strings(o.lang).Contact
	o.text(c, t.Title, x, y, o.theme.Accent)
	y += lineHeight
	o.text(c, t.Subtitle, x, y, hud.Fade(o.theme.Accent, 0.7))
	y += lineHeight * 2

	for _, l := range []string{t.Location, t.Email} {
		o.text(c, l, x, y, hud.Fade(o.theme.Accent, 0.85))
		y += lineHeight
	}
	y += lineHeight
	o.text(c, t.Social, x, y, o.theme.Accent)
	y += lineHeight
	for _, link := range t.Links {
		o.text(c, link, x, y, hud.Fade(o.theme.Accent, 0.7))
		y += lineHeight
	}
}

func (o *Overlay) drawFooter(c hud.Canvas, w, h float64) {
	t := o.catalog.Strings(o.lang).Footer
	top := h - footerHeight
	c.FillRect(0, top, w, footerHeight, hud.Fade(o.theme.Background, 0.85))
	c.StrokeLine(0, top, w, top, 1, hud.Fade(o.theme.Accent, 0.3))

	left := fmt.Sprintf("(c) %d Luis Modesto. %s", o.year, fold(t.Rights))
	c.DrawText(left, o.margin(w), top+18, hud.Fade(o.theme.Accent, 0.6))

	right := fold(t.MadeWith + " <3 " + t.By)
	rx := w - o.margin(w) - float64(len(right)*glyphWidth)
	if rx > o.margin(w)+float64(len(left)*glyphWidth)+20 {
		c.DrawText(right, rx, top+18, hud.Fade(o.theme.Accent, 0.6))
	}
}
