package sketch

import (
	"go.uber.org/zap"
)

// Machine interprets input events according to the current mode and keeps
// the store consistent with it. It is the only writer of mode and store.
type Machine struct {
	mode   Mode
	store  *Store
	snap   *Snapper
	logger *zap.Logger
}

// NewMachine creates a machine in Menu mode
func NewMachine(store *Store, snap *Snapper, logger *zap.Logger) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Machine{
		mode:   Menu{},
		store:  store,
		snap:   snap,
		logger: logger,
	}
}

// Mode returns the current mode
func (m *Machine) Mode() Mode {
	return m.mode
}

// Store returns the store the machine edits
func (m *Machine) Store() *Store {
	return m.store
}

// AcceptsOverlayInput reports whether raw input should reach the overlay.
// Only Menu lets the overlay see events.
func (m *Machine) AcceptsOverlayInput() bool {
	_, ok := m.mode.(Menu)
	return ok
}

// Handle applies one event and returns what the window owner should do
func (m *Machine) Handle(ev Event) Effect {
	switch ev := ev.(type) {
	case KeyPress:
		return m.handleKey(ev)
	case Command:
		return m.handleCommand(ev)
	}

	switch mode := m.mode.(type) {
	case Menu:
		// drawing input is ignored

	case PlacingPoints:
		if press, ok := ev.(Press); ok && press.Button == ButtonPrimary {
			i := m.store.AddPoint(press.Pos)
			m.logger.Debug("point placed", zap.Int("index", i), zap.Float64("x", press.Pos.X), zap.Float64("y", press.Pos.Y))
		}

	case MovingPoint:
		switch ev := ev.(type) {
		case Press:
			if ev.Button != ButtonPrimary || mode.Dragging() {
				break
			}
			if i, ok := m.snap.Nearest(m.store, ev.Pos); ok {
				m.setMode(MovingPoint{Selected: i})
			}
		case Move:
			if mode.Dragging() {
				m.store.SetPoint(mode.Selected, ev.Pos)
			}
		case Release:
			if ev.Button == ButtonPrimary && mode.Dragging() {
				p := m.store.Point(mode.Selected)
				m.logger.Debug("point moved", zap.Int("index", mode.Selected), zap.Float64("x", p.X), zap.Float64("y", p.Y))
				m.setMode(MovingPoint{Selected: NoPoint})
			}
		}

	case ConnectingPoints:
		press, ok := ev.(Press)
		if !ok || press.Button != ButtonPrimary {
			break
		}
		end, found := m.snap.Nearest(m.store, press.Pos)
		if !found {
			break
		}
		if !mode.Anchored() {
			m.setMode(ConnectingPoints{Anchor: end})
			break
		}
		if end == mode.Anchor {
			m.logger.Debug("self-referencing segment", zap.Int("point", end))
		}
		m.store.AddSegment(mode.Anchor, end)
		m.logger.Info("segment added",
			zap.Int("a", mode.Anchor),
			zap.Int("b", end),
			zap.Int("segments", m.store.SegmentCount()))
		m.setMode(ConnectingPoints{Anchor: NoPoint})
	}

	return EffectNone
}

func (m *Machine) handleKey(ev KeyPress) Effect {
	switch ev.Key {
	case KeyConfirm:
		if _, ok := m.mode.(Menu); !ok {
			m.setMode(Menu{})
		}
	case KeyFullscreen:
		return EffectToggleFullscreen
	case KeyQuit:
		return EffectQuit
	}
	return EffectNone
}

func (m *Machine) handleCommand(cmd Command) Effect {
	switch cmd {
	case CommandFullscreen:
		return EffectToggleFullscreen
	case CommandQuit:
		return EffectQuit
	}

	if _, ok := m.mode.(Menu); !ok {
		m.logger.Debug("command ignored outside menu", zap.Stringer("command", cmd), zap.Stringer("mode", m.mode))
		return EffectNone
	}

	switch cmd {
	case CommandPlace:
		m.setMode(PlacingPoints{})
	case CommandMove:
		m.setMode(MovingPoint{Selected: NoPoint})
	case CommandConnect:
		m.setMode(ConnectingPoints{Anchor: NoPoint})
	}
	return EffectNone
}

func (m *Machine) setMode(next Mode) {
	if next == m.mode {
		return
	}
	m.logger.Debug("mode change", zap.Stringer("from", m.mode), zap.Stringer("to", next))
	m.mode = next
}
