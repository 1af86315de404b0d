package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isa-explorer/pkg/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		selected types.ProbeID
		want     Command
	}{
		{"sea level temperature", "T 300", "", Command{Type: SeaLevelTemperature, Value: "300"}},
		{"query lowercase", "q 25000", "RS100", Command{Type: Query, Value: "25000"}},
		{"launch", "L den", "", Command{Type: Launch, Value: "den"}},
		{"launch long form", "LAUNCH OAK", "", Command{Type: Launch, Value: "OAK"}},
		{"altitude on selection", "A 8000", "RS100", Command{ProbeID: "RS100", Type: Altitude, Value: "8000"}},
		{"rate on selection", "rate 7", "RS101", Command{ProbeID: "RS101", Type: AscentRate, Value: "7"}},
		{"altitude with id", "rs102 A 12000", "RS100", Command{ProbeID: "RS102", Type: Altitude, Value: "12000"}},
		{"cut down selection", "C", "RS100", Command{ProbeID: "RS100", Type: CutDown}},
		{"id then cut down", "RS101 C", "", Command{ProbeID: "RS101", Type: CutDown}},
		{"id then cut down overrides selection", "RS101 c", "RS100", Command{ProbeID: "RS101", Type: CutDown}},
		{"cut down then id", "C rs103", "", Command{ProbeID: "RS103", Type: CutDown}},
		{"extra spaces", "  RS100   R   4.5 ", "", Command{ProbeID: "RS100", Type: AscentRate, Value: "4.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line, tt.selected)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		selected types.ProbeID
		wantMsg  string
	}{
		{"empty", "   ", "", "empty command"},
		{"global missing value", "T", "", `invalid command "T", expected T <value>`},
		{"global extra value", "Q 1 2", "", `invalid command "Q 1 2", expected Q <value>`},
		{"cut down without selection", "C", "", "no probe selected"},
		{"altitude without selection", "A 8000", "", "no probe selected"},
		{"altitude without value", "A", "RS100", "A needs a value"},
		{"unknown word", "HELLO", "RS100", `unknown command "HELLO"`},
		{"unknown type", "RS100 X 5", "", `unknown command type "X"`},
		{"global after id", "RS100 T 300", "", `unknown command type "T"`},
		{"cut down with value", "RS100 C 5", "", `invalid command "RS100 C 5"`},
		{"altitude with id no value", "RS100 A", "", `invalid command "RS100 A"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.line, tt.selected)
			require.Error(t, err)
			assert.EqualError(t, err, tt.wantMsg)
		})
	}

	_, err := Parse("C", "")
	assert.ErrorIs(t, err, ErrNoSelection)
}
