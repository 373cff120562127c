package hydrosat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 物性値一覧表の作成のテスト
func Test_Tabulate(t *testing.T) {
	pt := Tabulate(273.15, 373.15, 10.0)

	assert.Equal(t, len(pt.TK), 11)
	assert.InDelta(t, pt.TK[0], 273.15, 1e-9)
	assert.InDelta(t, pt.TK[10], 373.15, 1e-9)

	// 各列は点計算の関数と一致する
	assert.Equal(t, pt.Pws[3], Pws(pt.TK[3]))
	assert.Equal(t, pt.DPws[3], DPws(pt.TK[3]))
	assert.Equal(t, pt.HV[3], EnthalpyVapor(pt.TK[3]))
	assert.Equal(t, pt.B[3], Blin(pt.TK[3]))
	assert.Equal(t, pt.C[3], Clin(pt.TK[3]))
	assert.Equal(t, pt.RhoW[3], DensityWater(pt.TK[3]))
	assert.Equal(t, pt.HW[3], EnthalpyWater(pt.TK[3]))
}

// 相ごとの適用範囲外の列のテスト
// 三重点未満では液相の列、三重点超では固相の列がnanとなる
func Test_Tabulate_PhaseColumns(t *testing.T) {
	pt := Tabulate(253.15, 293.15, 20.0)
	// TK = 253.15, 273.15, 293.15

	// 三重点未満: 液相の列はnan、固相の列は値を持つ
	assert.True(t, math.IsNaN(pt.RhoW[0]))
	assert.True(t, math.IsNaN(pt.VW[0]))
	assert.True(t, math.IsNaN(pt.HW[0]))
	assert.False(t, math.IsNaN(pt.VI[0]))
	assert.False(t, math.IsNaN(pt.HI[0]))

	// 三重点超: 固相の列はnan、液相の列は値を持つ
	assert.True(t, math.IsNaN(pt.VI[2]))
	assert.True(t, math.IsNaN(pt.HI[2]))
	assert.False(t, math.IsNaN(pt.RhoW[2]))
	assert.False(t, math.IsNaN(pt.HW[2]))

	// 水蒸気の列は全域で値を持つ
	assert.False(t, math.IsNaN(pt.HV[0]))
	assert.False(t, math.IsNaN(pt.HV[2]))
}

// 三重点ちょうどでは液相と固相の両方の列が値を持つ
func Test_Tabulate_TriplePoint(t *testing.T) {
	pt := Tabulate(TTriple, TTriple, 1.0)

	assert.False(t, math.IsNaN(pt.RhoW[0]))
	assert.False(t, math.IsNaN(pt.HW[0]))
	assert.False(t, math.IsNaN(pt.VI[0]))
	assert.False(t, math.IsNaN(pt.HI[0]))
}

// 1点のみの一覧表の作成のテスト
func Test_Tabulate_SinglePoint(t *testing.T) {
	pt := Tabulate(293.15, 293.15, 1.0)

	assert.Equal(t, len(pt.TK), 1)
	assert.Equal(t, pt.TK[0], 293.15)
	assert.Equal(t, pt.Pws[0], Pws(293.15))
}
