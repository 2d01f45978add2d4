package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"portfoliohud/content"
	"portfoliohud/game"
	"portfoliohud/view"
)

func parseView(s string) (view.View, error) {
	for _, v := range view.All {
		if strings.EqualFold(s, v.String()) {
			return v, nil
		}
	}
	return view.Home, fmt.Errorf("unknown view %q", s)
}

func newSnapshotCmd() *cobra.Command {
	var (
		width, height float64
		dpr           float64
		frames        int
		seed          int64
		out           string
		overlay       bool
		page          string
		project       string
		lang          string
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render frames headlessly and write the last one as PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, cat, err := setup()
			if err != nil {
				return err
			}
			defer log.Close()

			opts := game.SnapshotOptions{
				Width:    width,
				Height:   height,
				Scale:    dpr,
				Frames:   frames,
				Seed:     seed,
				Settings: cfg.HUD,
				Theme:    cfg.HUD.Theme,
				Language: cfg.Language(),
				Logger:   log,
			}
			if cmd.Flags().Changed("lang") {
				if opts.Language, err = content.ParseLanguage(lang); err != nil {
					return err
				}
			}
			if overlay || project != "" {
				opts.Catalog = cat
				if opts.View, err = parseView(page); err != nil {
					return err
				}
				opts.Project = project
			}

			surface, err := game.Snapshot(opts)
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := surface.WritePNG(f); err != nil {
				f.Close()
				return fmt.Errorf("write %s: %w", out, err)
			}
			if err := f.Close(); err != nil {
				return err
			}

			pw, ph := surface.PhysicalSize()
			log.Info("snapshot: %d frames, %dx%d px @%.2fx written to %s", frames, pw, ph, surface.Scale(), out)
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&width, "width", 1280, "logical width")
	f.Float64Var(&height, "height", 720, "logical height")
	f.Float64Var(&dpr, "dpr", 1, "device pixel ratio")
	f.IntVar(&frames, "frames", 60, "frames to run before capturing")
	f.Int64Var(&seed, "seed", 1, "random seed for particles and data streams")
	f.StringVarP(&out, "out", "o", "hud.png", "output PNG path")
	f.BoolVar(&overlay, "overlay", false, "draw the portfolio overlay on top")
	f.StringVar(&page, "view", "home", "overlay page: home, projects, skills or contact")
	f.StringVar(&project, "project", "", "open this project (implies --overlay)")
	f.StringVar(&lang, "lang", "", "overlay language (en or es)")
	return cmd
}
