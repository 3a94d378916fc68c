package main

import (
	"github.com/automoto/summit/config"
	"github.com/automoto/summit/fonts"
	"github.com/automoto/summit/game"
	"github.com/automoto/summit/scenes"
	"github.com/automoto/summit/settings"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window",
	Long: `Open a window and play a level.

Examples:
  summit play
  summit play --level ./levels/ridge.tmx
  summit play --tuning ./floaty.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// Window adapts the scene to ebiten.Game.
type Window struct {
	scene *scenes.PlatformerScene
}

func (w *Window) Update() error {
	w.scene.Update()
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.scene.Draw(screen)
}

func (w *Window) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func runPlay(cmd *cobra.Command, args []string) error {
	lvl, err := loadLevel(flagLevel)
	if err != nil {
		return err
	}
	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	store := settings.Open(logger)
	g := game.New(lvl, game.WithSeed(flagSeed), game.WithLogger(logger))
	scene := scenes.NewPlatformerScene(g, store, flagSeed, logger)

	scale := scene.Scale()
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width*scale, config.C.Height*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	return ebiten.RunGame(&Window{scene: scene})
}
