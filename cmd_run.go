package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"portfoliohud/content"
	"portfoliohud/game"
)

func newRunCmd() *cobra.Command {
	var (
		lang       string
		fullscreen bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the portfolio window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, cat, err := setup()
			if err != nil {
				return err
			}
			defer log.Close()

			if cmd.Flags().Changed("lang") {
				l, err := content.ParseLanguage(lang)
				if err != nil {
					return err
				}
				cfg.Content.Language = string(l)
			}
			if fullscreen {
				cfg.Window.Fullscreen = true
			}

			g, err := game.NewGame(cfg, cat, log)
			if err != nil {
				return err
			}
			defer g.Close()

			ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
			ebiten.SetWindowTitle(cfg.Window.Title)
			if cfg.Window.Resizable {
				ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			}
			ebiten.SetFullscreen(cfg.Window.Fullscreen)

			log.Info("run: %dx%d, %d projects, language %s", cfg.Window.Width, cfg.Window.Height, len(cat.Projects), cfg.Content.Language)
			if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "initial language (en or es)")
	cmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "start fullscreen")
	return cmd
}
