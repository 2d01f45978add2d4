package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"portfoliohud/view"
)

// windowedSizeRatio sizes the window when leaving fullscreen.
const windowedSizeRatio = 0.9

// Action is one user command, decoupled from the key that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionFullscreen
	ActionDebug
	ActionHome
	ActionProjects
	ActionSkills
	ActionContact
	ActionUp
	ActionDown
	ActionSelect
	ActionBack
	ActionLanguage
)

// actionForKey maps a freshly pressed key. With alt held, Enter toggles
// fullscreen instead of selecting.
func actionForKey(k ebiten.Key, alt bool) Action {
	switch k {
	case ebiten.KeyEscape, ebiten.KeyQ:
		return ActionQuit
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		if alt {
			return ActionFullscreen
		}
		return ActionSelect
	case ebiten.KeyF1:
		return ActionDebug
	case ebiten.KeyDigit1, ebiten.KeyNumpad1:
		return ActionHome
	case ebiten.KeyDigit2, ebiten.KeyNumpad2:
		return ActionProjects
	case ebiten.KeyDigit3, ebiten.KeyNumpad3:
		return ActionSkills
	case ebiten.KeyDigit4, ebiten.KeyNumpad4:
		return ActionContact
	case ebiten.KeyArrowUp, ebiten.KeyW:
		return ActionUp
	case ebiten.KeyArrowDown, ebiten.KeyS:
		return ActionDown
	case ebiten.KeyBackspace:
		return ActionBack
	case ebiten.KeyL:
		return ActionLanguage
	}
	return ActionNone
}

// handleInput applies every key pressed since the last update. It returns
// ebiten.Termination on quit.
func (g *Game) handleInput() error {
	alt := ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if err := g.apply(actionForKey(k, alt)); err != nil {
			return err
		}
	}
	return nil
}

// apply runs one action against the overlay and window.
func (g *Game) apply(a Action) error {
	switch a {
	case ActionQuit:
		return ebiten.Termination
	case ActionFullscreen:
		g.toggleFullscreen()
	case ActionDebug:
		GetDebugState().Toggle()
	case ActionHome:
		g.overlay.Navigate(view.Home)
	case ActionProjects:
		g.overlay.Navigate(view.Projects)
	case ActionSkills:
		g.overlay.Navigate(view.Skills)
	case ActionContact:
		g.overlay.Navigate(view.Contact)
	case ActionUp:
		g.overlay.MoveCursor(-1)
	case ActionDown:
		g.overlay.MoveCursor(1)
	case ActionSelect:
		g.overlay.Activate()
	case ActionBack:
		g.overlay.Back()
	case ActionLanguage:
		g.overlay.ToggleLanguage()
		g.log.Debug("game: language %s", g.overlay.Language())
	}
	return nil
}

func (g *Game) toggleFullscreen() {
	isCurrentlyFullscreen := ebiten.IsFullscreen()
	ebiten.SetFullscreen(!isCurrentlyFullscreen)

	if isCurrentlyFullscreen {
		monitorWidth, monitorHeight := ebiten.ScreenSizeInFullscreen()
		ebiten.SetWindowSize(int(float64(monitorWidth)*windowedSizeRatio), int(float64(monitorHeight)*windowedSizeRatio))
	}
}
