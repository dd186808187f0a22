// Package replay drives the editor core from a text script of input events.
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/philipparndt/gosketch/internal/sketch"
	"github.com/philipparndt/gosketch/pkg/geometry"
)

// ErrSyntax is wrapped by every script parse error
var ErrSyntax = errors.New("replay: syntax error")

// Step is one script line
type Step struct {
	Line int
	// Event is dispatched to the controller; nil for cursor/wait lines
	Event sketch.Event
	// Cursor moves the pointer without generating an event
	Cursor *geometry.Vector2
	// Wait advances the frame clock
	Wait time.Duration
}

var keyNames = map[string]sketch.Key{
	"confirm":    sketch.KeyConfirm,
	"enter":      sketch.KeyConfirm,
	"fullscreen": sketch.KeyFullscreen,
	"f11":        sketch.KeyFullscreen,
	"quit":       sketch.KeyQuit,
	"esc":        sketch.KeyQuit,
}

var commandNames = map[string]sketch.Command{
	"place":      sketch.CommandPlace,
	"move":       sketch.CommandMove,
	"connect":    sketch.CommandConnect,
	"fullscreen": sketch.CommandFullscreen,
	"quit":       sketch.CommandQuit,
}

var buttonNames = map[string]sketch.Button{
	"primary":   sketch.ButtonPrimary,
	"left":      sketch.ButtonPrimary,
	"secondary": sketch.ButtonSecondary,
	"right":     sketch.ButtonSecondary,
	"middle":    sketch.ButtonMiddle,
}

// Parse reads a script. Blank lines and lines starting with # are skipped.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		step, err := parseLine(strings.Fields(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		step.Line = lineNo
		steps = append(steps, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	return steps, nil
}

func parseLine(fields []string) (Step, error) {
	verb, args := strings.ToLower(fields[0]), fields[1:]

	switch verb {
	case "press", "release":
		if len(args) != 2 && len(args) != 3 {
			return Step{}, fmt.Errorf("%w: %s takes X Y [button]", ErrSyntax, verb)
		}
		pos, err := parsePos(args[0], args[1])
		if err != nil {
			return Step{}, err
		}
		button := sketch.ButtonPrimary
		if len(args) == 3 {
			b, ok := buttonNames[strings.ToLower(args[2])]
			if !ok {
				return Step{}, fmt.Errorf("%w: unknown button %q", ErrSyntax, args[2])
			}
			button = b
		}
		if verb == "press" {
			return Step{Event: sketch.Press{Button: button, Pos: pos}}, nil
		}
		return Step{Event: sketch.Release{Button: button, Pos: pos}}, nil

	case "move", "cursor":
		if len(args) != 2 {
			return Step{}, fmt.Errorf("%w: %s takes X Y", ErrSyntax, verb)
		}
		pos, err := parsePos(args[0], args[1])
		if err != nil {
			return Step{}, err
		}
		if verb == "cursor" {
			return Step{Cursor: &pos}, nil
		}
		return Step{Event: sketch.Move{Pos: pos}}, nil

	case "key":
		if len(args) != 1 {
			return Step{}, fmt.Errorf("%w: key takes one name", ErrSyntax)
		}
		if k, ok := keyNames[strings.ToLower(args[0])]; ok {
			return Step{Event: sketch.KeyPress{Key: k}}, nil
		}
		runes := []rune(args[0])
		if len(runes) != 1 {
			return Step{}, fmt.Errorf("%w: unknown key %q", ErrSyntax, args[0])
		}
		return Step{Event: sketch.KeyPress{Key: sketch.KeyOther, Rune: runes[0]}}, nil

	case "command":
		if len(args) != 1 {
			return Step{}, fmt.Errorf("%w: command takes one name", ErrSyntax)
		}
		c, ok := commandNames[strings.ToLower(args[0])]
		if !ok {
			return Step{}, fmt.Errorf("%w: unknown command %q", ErrSyntax, args[0])
		}
		return Step{Event: c}, nil

	case "wait":
		if len(args) != 1 {
			return Step{}, fmt.Errorf("%w: wait takes a duration", ErrSyntax)
		}
		d, err := time.ParseDuration(args[0])
		if err != nil || d < 0 {
			return Step{}, fmt.Errorf("%w: bad duration %q", ErrSyntax, args[0])
		}
		return Step{Wait: d}, nil
	}

	return Step{}, fmt.Errorf("%w: unknown verb %q", ErrSyntax, fields[0])
}

func parsePos(xs, ys string) (geometry.Vector2, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return geometry.Vector2{}, fmt.Errorf("%w: bad X %q", ErrSyntax, xs)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return geometry.Vector2{}, fmt.Errorf("%w: bad Y %q", ErrSyntax, ys)
	}
	return geometry.NewVector2(x, y), nil
}
