package hydrosat

import "math"

//--------------------------------------
// 飽和水蒸気のビリアル係数
//--------------------------------------

// 温度 TK [K] における飽和水蒸気の第2ビリアル係数 B' [1/Pa] を求める。
func Blin(TK float64) float64 {
	return 0.70e-8 - 0.147184e-8*math.Exp(1734.29/TK)
}

// 温度 TK [K] における飽和水蒸気の第3ビリアル係数 C' [1/Pa2] を求める。
func Clin(TK float64) float64 {
	return 0.104e-14 - 0.335297e-17*math.Exp(3645.09/TK)
}

// 第2ビリアル係数の温度微分 dB'/dT [1/(Pa K)] を求める。
func DBlin(TK float64) float64 {
	return 0.147184e-8 * 1734.29 / (TK * TK) * math.Exp(1734.29/TK)
}

// 第3ビリアル係数の温度微分 dC'/dT [1/(Pa2 K)] を求める。
func DClin(TK float64) float64 {
	return 0.335297e-17 * 3645.09 / (TK * TK) * math.Exp(3645.09/TK)
}
