package sketch

import "github.com/philipparndt/gosketch/pkg/geometry"

// Event is an input the machine reacts to
type Event interface {
	isEvent()
}

// Button identifies a pointer button
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Key identifies a keyboard key the core knows about
type Key int

const (
	KeyOther      Key = iota
	KeyConfirm        // Enter
	KeyFullscreen     // F11
	KeyQuit           // Esc
)

// Press is a pointer button going down at Pos
type Press struct {
	Button Button
	Pos    geometry.Vector2
}

// Release is a pointer button going up at Pos
type Release struct {
	Button Button
	Pos    geometry.Vector2
}

// Move is the pointer moving to Pos
type Move struct {
	Pos geometry.Vector2
}

// KeyPress is a key going down. Rune is set for printable keys.
type KeyPress struct {
	Key  Key
	Rune rune
}

// Command is an action invoked from the overlay
type Command int

const (
	CommandNone Command = iota
	CommandPlace
	CommandMove
	CommandConnect
	CommandFullscreen
	CommandQuit
)

func (Press) isEvent()    {}
func (Release) isEvent()  {}
func (Move) isEvent()     {}
func (KeyPress) isEvent() {}
func (Command) isEvent()  {}

func (c Command) String() string {
	switch c {
	case CommandPlace:
		return "place"
	case CommandMove:
		return "move"
	case CommandConnect:
		return "connect"
	case CommandFullscreen:
		return "fullscreen"
	case CommandQuit:
		return "quit"
	default:
		return "none"
	}
}

// Effect is a request from the core to the window owner
type Effect int

const (
	EffectNone Effect = iota
	EffectToggleFullscreen
	EffectQuit
)
