package convert

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertIdentity(t *testing.T) {
	e := NewEngine()

	for _, u := range SupportedUnits() {
		res, err := e.Convert("2.5", u, u, "")
		require.NoError(t, err, "unit %s", u)
		assert.Equal(t, 2.5, res.Quantity)
		assert.Equal(t, fmt.Sprintf("2.5 %s = 2.5 %s", u, u), res.Formatted)
	}

	// 帶食材時同樣直接回傳
	res, err := e.Convert("3", UnitCup, UnitCup, "flour")
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Quantity)
	assert.Equal(t, "3 cup = 3 cup of flour", res.Formatted)
}

func TestConvertCupToTbsp(t *testing.T) {
	e := NewEngine()

	res, err := e.Convert("2", UnitCup, UnitTbsp, "")
	require.NoError(t, err)
	assert.Equal(t, "2 cup = 32.00 tbsp", res.Formatted)
	assert.Equal(t, 32.00, res.Quantity)
}

func TestConvertVolumeToMassWithDensity(t *testing.T) {
	e := NewEngine()

	// 236.588 ml/cup × 0.6 g/ml
	flour, err := e.Convert("1", UnitCup, UnitGram, "flour")
	require.NoError(t, err)
	assert.InDelta(t, 141.95, flour.Quantity, 0.01)
	assert.Equal(t, "1 cup = 141.95 g of flour", flour.Formatted)

	honey, err := e.Convert("1", UnitCup, UnitGram, "honey")
	require.NoError(t, err)
	assert.InDelta(t, 335.96, honey.Quantity, 0.01)

	// 不同密度必須產生不同結果
	assert.NotEqual(t, flour.Quantity, honey.Quantity)
}

func TestConvertVolumeToMassDefaultsToWater(t *testing.T) {
	e := NewEngine()

	res, err := e.Convert("100", UnitML, UnitGram, "")
	require.NoError(t, err)
	assert.Equal(t, 100.0, res.Quantity)
	assert.Equal(t, "100 ml = 100.00 g", res.Formatted)
}

func TestConvertRoundTrip(t *testing.T) {
	e := NewEngine()

	pairs := []struct{ from, to Unit }{
		{UnitCup, UnitTbsp},
		{UnitCup, UnitML},
		{UnitTsp, UnitML},
		{UnitL, UnitFlOz},
		{UnitLb, UnitGram},
		{UnitKG, UnitOz},
		{UnitCup, UnitGram},
		{UnitOz, UnitML},
	}

	for _, p := range pairs {
		forward, err := e.Convert("3", p.from, p.to, "")
		require.NoError(t, err, "%s -> %s", p.from, p.to)

		back, err := e.Convert(strconv.FormatFloat(forward.Quantity, 'f', -1, 64), p.to, p.from, "")
		require.NoError(t, err, "%s -> %s", p.to, p.from)

		// 只允許四捨五入造成的飄移
		assert.InEpsilon(t, 3.0, back.Quantity, 0.1, "%s <-> %s", p.from, p.to)
	}
}

func TestConvertUnsupportedPair(t *testing.T) {
	e := NewEngine()

	_, err := e.Convert("1", UnitPinch, UnitLb, "")
	assert.ErrorIs(t, err, ErrUnsupportedConversion)

	// 近似單位沒有反向條目
	_, err = e.Convert("1", UnitTsp, UnitPinch, "")
	assert.ErrorIs(t, err, ErrUnsupportedConversion)

	_, err = e.Convert("1", Unit("stone"), UnitGram, "")
	assert.ErrorIs(t, err, ErrUnsupportedConversion)
}

func TestConvertApproxUnits(t *testing.T) {
	e := NewEngine()

	res, err := e.Convert("2", UnitPinch, UnitTsp, "")
	require.NoError(t, err)
	assert.Equal(t, 0.13, res.Quantity)

	res, err = e.Convert("1", UnitDash, UnitML, "")
	require.NoError(t, err)
	assert.Equal(t, 0.62, res.Quantity)

	// 近似單位不受密度影響
	withIngredient, err := e.Convert("1", UnitPinch, UnitGram, "honey")
	require.NoError(t, err)
	without, err := e.Convert("1", UnitPinch, UnitGram, "")
	require.NoError(t, err)
	assert.Equal(t, without.Quantity, withIngredient.Quantity)
}

func TestConvertInvalidQuantity(t *testing.T) {
	e := NewEngine()

	for _, q := range []string{"", "abc", "1.2.3", "NaN", "Inf"} {
		_, err := e.Convert(q, UnitCup, UnitTbsp, "")
		assert.ErrorIs(t, err, ErrInvalidQuantity, "quantity %q", q)
	}
}

func TestLookupDensity(t *testing.T) {
	assert.Equal(t, 0.6, LookupDensity("all-purpose flour"))
	assert.Equal(t, 1.42, LookupDensity("Honey"))
	// 先命中先贏："brown sugar" 排在 "sugar" 前
	assert.Equal(t, 0.93, LookupDensity("brown sugar cookie"))
	assert.Equal(t, 0.85, LookupDensity("granulated sugar"))
	// 查無條目時使用預設密度
	assert.Equal(t, 0.8, LookupDensity("dragon fruit"))
}
