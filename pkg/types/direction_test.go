package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "NONE", DirectionNone.String())
	assert.Equal(t, "LONG", DirectionLong.String())
	assert.Equal(t, "SHORT", DirectionShort.String())
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input    string
		expected Direction
	}{
		{"LONG", DirectionLong},
		{"short", DirectionShort},
		{" Long ", DirectionLong},
		{"NONE", DirectionNone},
		{"", DirectionNone},
	}

	for _, tt := range tests {
		d, err := ParseDirection(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, d, "input %q", tt.input)
	}

	_, err := ParseDirection("SIDEWAYS")
	assert.Error(t, err)
}

func TestParseCrossState(t *testing.T) {
	c, err := ParseCrossState("bullish")
	require.NoError(t, err)
	assert.Equal(t, CrossBullish, c)

	c, err = ParseCrossState("BEARISH")
	require.NoError(t, err)
	assert.Equal(t, CrossBearish, c)

	c, err = ParseCrossState("")
	require.NoError(t, err)
	assert.Equal(t, CrossNone, c)

	_, err = ParseCrossState("sideways")
	assert.Error(t, err)
}

func TestSnapshot_JSONRoundTrip(t *testing.T) {
	raw := `{
		"symbol": "BTCUSDT",
		"last_price": "64250.5",
		"price_precision": 2,
		"qty_precision": 3,
		"momentum": {"wt1": -48.2, "wt2": -51.0, "wt1_prev": -55.1, "wt2_prev": -52.3, "direction": "LONG", "cross": "BULLISH", "is_bullish": true, "is_bearish": false},
		"rsi": {"value": 42.1, "prev": 38.9, "avg": 40.0, "avg_prev": 39.5},
		"stoch": {"k": 18.4, "d": 15.2, "k_prev": 12.1, "d_prev": 14.8},
		"macd": {"macd": 12.4, "signal": 10.1, "histogram": 2.3, "histogram_prev": -0.4},
		"adx": {"adx": 28.5, "di_plus": 24.1, "di_minus": 14.6},
		"vwap": {"vwap": 64100.0},
		"money_flow": {"mfi": 58.2, "mfi_avg": 52.1, "value": 120.5, "is_bullish": true}
	}`

	var snap IndicatorSnapshot
	require.NoError(t, json.Unmarshal([]byte(raw), &snap))

	assert.Equal(t, "BTCUSDT", snap.Symbol)
	assert.True(t, snap.LastPrice.Equal(decimal.RequireFromString("64250.5")))
	assert.Equal(t, CrossBullish, snap.Momentum.Cross)
	assert.Equal(t, DirectionLong, snap.Momentum.Direction)
	assert.True(t, snap.HasMarketIdentity())
	assert.InDelta(t, 64250.5, snap.Price(), 1e-9)

	out, err := json.Marshal(&snap)
	require.NoError(t, err)

	var back IndicatorSnapshot
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, snap.Momentum, back.Momentum)
	assert.Equal(t, snap.ADX, back.ADX)
}

func TestSnapshot_MissingIdentity(t *testing.T) {
	var snap IndicatorSnapshot
	assert.False(t, snap.HasMarketIdentity())

	snap.Symbol = "ETHUSDT"
	assert.False(t, snap.HasMarketIdentity(), "zero price must not count as identity")

	snap.LastPrice = decimal.NewFromFloat(3120.55)
	assert.True(t, snap.HasMarketIdentity())
}

func TestSignalDecision_Direction(t *testing.T) {
	d := SignalDecision{HasSignal: true, IsLong: true}
	assert.Equal(t, DirectionLong, d.Direction())

	d = SignalDecision{HasSignal: true, IsShort: true}
	assert.Equal(t, DirectionShort, d.Direction())

	d = SignalDecision{}
	assert.Equal(t, DirectionNone, d.Direction())
}
