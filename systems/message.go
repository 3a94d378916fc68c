package systems

import (
	"math"

	"github.com/automoto/summit/components"
	"github.com/automoto/summit/world"
)

// ShowMessage replaces the status line for duration seconds.
func ShowMessage(w *world.World, text string, duration float64) {
	msg := components.MessageState.Get(components.MessageState.MustFirst(w.ECS))
	msg.Text = text
	msg.Timer = duration
}

// UpdateMessage counts the status line down. The text is kept after the
// timer expires; only the timer decides visibility.
func UpdateMessage(w *world.World, dt float64) {
	msg := components.MessageState.Get(components.MessageState.MustFirst(w.ECS))
	if msg.Timer > 0 {
		msg.Timer = math.Max(0, msg.Timer-dt)
	}
}
