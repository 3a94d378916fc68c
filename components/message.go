package components

import "github.com/yohamta/donburi"

// MessageStateData is the transient status line.
type MessageStateData struct {
	Text  string
	Timer float64 // seconds left on screen
}

var MessageState = donburi.NewComponentType[MessageStateData]()
