// Package command parses the operator commands typed into the explorer.
package command

import (
	"errors"
	"fmt"
	"strings"

	"isa-explorer/pkg/types"
)

type Type string

const (
	SeaLevelTemperature Type = "T"
	Query               Type = "Q"
	Launch              Type = "L"
	Altitude            Type = "A"
	AscentRate          Type = "R"
	CutDown             Type = "C"
)

var typeAliases = map[string]Type{
	"T": SeaLevelTemperature, "TEMP": SeaLevelTemperature,
	"Q": Query, "QUERY": Query,
	"L": Launch, "LAUNCH": Launch,
	"A": Altitude, "ALT": Altitude, "ALTITUDE": Altitude,
	"R": AscentRate, "RATE": AscentRate,
	"C": CutDown, "CUT": CutDown,
}

// ErrNoSelection is returned for a probe command with no ID and no selected probe.
var ErrNoSelection = errors.New("no probe selected")

// Command is one parsed line. ProbeID is empty for T, Q and L.
type Command struct {
	ProbeID types.ProbeID
	Type    Type
	Value   string
}

// Global commands act on the model or the column rather than on a probe.
func (t Type) Global() bool {
	return t == SeaLevelTemperature || t == Query || t == Launch
}

func lookup(word string) (Type, bool) {
	t, ok := typeAliases[strings.ToUpper(word)]
	return t, ok
}

// Parse reads one of
//
//	T <K> | Q <m> | L <site>
//	[<probe>] A <m> | [<probe>] R <m/s> | [<probe>] C | C <probe>
//
// Probe commands without an ID go to selected.
func Parse(line string, selected types.ProbeID) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, errors.New("empty command")
	}

	first, isType := lookup(parts[0])
	switch {
	case isType && first.Global():
		if len(parts) != 2 {
			return Command{}, fmt.Errorf("invalid command %q, expected %s <value>", line, first)
		}
		return Command{Type: first, Value: parts[1]}, nil
	case isType && first == CutDown && len(parts) <= 2:
		id := selected
		if len(parts) == 2 {
			id = types.ProbeID(strings.ToUpper(parts[1]))
		}
		if id == "" {
			return Command{}, ErrNoSelection
		}
		return Command{ProbeID: id, Type: CutDown}, nil
	case isType && len(parts) == 1:
		return Command{}, fmt.Errorf("%s needs a value", first)
	case isType && len(parts) == 2:
		if selected == "" {
			return Command{}, ErrNoSelection
		}
		return Command{ProbeID: selected, Type: first, Value: parts[1]}, nil
	}

	// <probe> <type> [value]
	if len(parts) < 2 {
		return Command{}, fmt.Errorf("unknown command %q", parts[0])
	}
	id := types.ProbeID(strings.ToUpper(parts[0]))
	t, ok := lookup(parts[1])
	if !ok || t.Global() {
		return Command{}, fmt.Errorf("unknown command type %q", parts[1])
	}
	switch {
	case t == CutDown && len(parts) == 2:
		return Command{ProbeID: id, Type: CutDown}, nil
	case t != CutDown && len(parts) == 3:
		return Command{ProbeID: id, Type: t, Value: parts[2]}, nil
	}
	return Command{}, fmt.Errorf("invalid command %q", line)
}
