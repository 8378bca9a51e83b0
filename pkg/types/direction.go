package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Direction is the three-way outcome of a signal evaluation.
// A single Direction replaces the long/short boolean pair so the
// invalid "both long and short" state cannot be represented inside
// the decision pipeline.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLong
	DirectionShort
)

func (d Direction) String() string {
	switch d {
	case DirectionLong:
		return "LONG"
	case DirectionShort:
		return "SHORT"
	default:
		return "NONE"
	}
}

// IsDirectional reports whether the direction is LONG or SHORT.
func (d Direction) IsDirectional() bool {
	return d == DirectionLong || d == DirectionShort
}

// MarshalJSON encodes the direction as its upper-case name.
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a direction from its upper-case name.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection maps a string onto a Direction. The empty string and
// "NONE" both map to DirectionNone; matching is case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "NONE":
		return DirectionNone, nil
	case "LONG":
		return DirectionLong, nil
	case "SHORT":
		return DirectionShort, nil
	default:
		return DirectionNone, fmt.Errorf("unknown direction %q", s)
	}
}

// CrossState is the pre-computed crossover flag carried by the momentum
// sub-record of a snapshot. The indicator collaborator detects the
// crossover; the engine only reads the flag.
type CrossState int

const (
	CrossNone CrossState = iota
	CrossBullish
	CrossBearish
)

func (c CrossState) String() string {
	switch c {
	case CrossBullish:
		return "BULLISH"
	case CrossBearish:
		return "BEARISH"
	default:
		return "NONE"
	}
}

// MarshalJSON encodes the cross state as its upper-case name.
func (c CrossState) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a cross state from its upper-case name.
func (c *CrossState) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCrossState(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCrossState maps a string onto a CrossState. The empty string and
// "NONE" both map to CrossNone; matching is case-insensitive.
func ParseCrossState(s string) (CrossState, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "NONE":
		return CrossNone, nil
	case "BULLISH":
		return CrossBullish, nil
	case "BEARISH":
		return CrossBearish, nil
	default:
		return CrossNone, fmt.Errorf("unknown cross state %q", s)
	}
}
