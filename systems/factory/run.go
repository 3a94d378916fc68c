package factory

import (
	"github.com/automoto/summit/archetypes"
	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/world"
	"github.com/yohamta/donburi"
)

// CreateRun creates the run bookkeeping singleton with the intro message.
func CreateRun(w *world.World) *donburi.Entry {
	run := archetypes.Run.Spawn(w.ECS)
	components.Run.SetValue(run, components.RunData{
		ActiveCheckpoint: components.NoCheckpoint,
		RespawnTile:      w.Level.Spawn,
	})
	components.MessageState.SetValue(run, components.MessageStateData{
		Text:  cfg.Run.IntroMessage,
		Timer: cfg.Run.IntroMessageFor,
	})
	return run
}
