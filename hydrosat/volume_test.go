package hydrosat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 氷の比容積の計算のテスト
// Notes:
//
//	期待値は同じ相関式を実装した検証用スクリプト(倍精度)から取得しました。
func Test_VolumeIce(t *testing.T) {
	assert.InDelta(t, VolumeIce(TTriple), 1.0909040178932014e-3, 1e-12)
	assert.InDelta(t, VolumeIce(173.15), 1.0768165987511474e-3, 1e-12)
	assert.InDelta(t, VolumeIce(253.15), 1.0874905322951474e-3, 1e-12)

	// 氷は温度の上昇とともに膨張する
	assert.True(t, VolumeIce(173.15) < VolumeIce(223.15))
	assert.True(t, VolumeIce(223.15) < VolumeIce(TTriple))
}

// 飽和水の密度の計算のテスト
// Notes:
//
//	水の密度は約277 K (4℃)で最大(約999.97 kg/m3)となる。
func Test_DensityWater(t *testing.T) {
	assert.InDelta(t, DensityWater(277.13), 999.97199630887576, 1e-9)
	assert.InDelta(t, DensityWater(293.15), 998.20413220058367, 1e-9)
	assert.InDelta(t, DensityWater(373.15), 958.36365705165758, 1e-9)

	// 密度最大点の確認
	assert.True(t, DensityWater(277.13) > DensityWater(TTriple))
	assert.True(t, DensityWater(277.13) > DensityWater(283.15))
}

// 飽和水の比容積の計算のテスト
func Test_VolumeWater(t *testing.T) {
	assert.InDelta(t, VolumeWater(293.15), 1.0017990987429167e-3, 1e-12)
	assert.InDelta(t, VolumeWater(TTriple), 1.0001598261049562e-3, 1e-12)

	assert.Equal(t, VolumeWater(293.15), 1.0/DensityWater(293.15))
}
