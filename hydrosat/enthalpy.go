package hydrosat

import "math"

//--------------------------------------
// 飽和水・氷・水蒸気の比エンタルピー
//--------------------------------------
// いずれも三重点の飽和水を基準(h=0)とする。

// 水蒸気の気体定数 (単位:J/(kg K))
const Rv = 461.520

// 飽和水のエンタルピーの分岐温度 (単位:K)
const (
	tSplitWater = 373.125 // 低温域と高温域の係数切替点
	tPowWater   = 403.128 // 高温域のべき乗補正項の開始点
)

// 氷の比エンタルピーの係数 (3次式 + 飽和水蒸気圧の項)
var coefHIce = [...]float64{-6.37973761e+5, 9.58346865e-1, 4.56164629e+0, -1.7692954e-3, 1.0909e-3}

// 飽和水の比エンタルピーの係数 (低温域 TK < 373.125 K、4次式 + 指数補正項)
var coefHWaterLo = [...]float64{-1.24916338e+6, 5.48027604e+3, -5.8221858e+0, 1.15037981e-2, -8.51330333e-6, -4.72929014e+2, -3.6e-2}

// 飽和水の比エンタルピーの係数 (高温域 TK >= 373.125 K、4次式 + べき乗補正項)
var coefHWaterHi = [...]float64{-1.22415642e+6, 5.02479421e+3, -3.22338076e+0, 5.45661209e-3, -3.49504552e-6, 1.46731004e-4}

// 飽和水蒸気の比エンタルピーの係数 (5次式)
var coefHVapor = [...]float64{1.99781493e+6, 1.80518117e+3, 3.61062613e-1, -1.4662241e-3, 2.87616785e-6, -1.75896192e-9}

// 三重点における圧力仕事項 β0 [J/kg]
var betaWater0 = betaWater(TTriple)

// 飽和水の圧力仕事項 β = TK・v・dPws/dT [J/kg] を求める。
func betaWater(TK float64) float64 {
	return TK * VolumeWater(TK) * DPws_l(TK)
}

// 温度 TK [K] における氷の比エンタルピー [J/kg] を求める。
// 適用範囲は 173.15 K <= TK <= 273.16 K。
func EnthalpyIce(TK float64) float64 {
	return coefHIce[0] + TK*(coefHIce[1]+TK*(coefHIce[2]+coefHIce[3]*TK)) + coefHIce[4]*Pws_s(TK)
}

// 温度 TK [K] における飽和水の比エンタルピー [J/kg] を求める。
// 適用範囲は 273.16 K <= TK <= 473.15 K。
func EnthalpyWater(TK float64) float64 {
	var alpha float64
	if TK < tSplitWater {
		alpha = coefHWaterLo[0] + TK*(coefHWaterLo[1]+TK*(coefHWaterLo[2]+TK*(coefHWaterLo[3]+coefHWaterLo[4]*TK))) +
			coefHWaterLo[5]*math.Pow(10.0, coefHWaterLo[6]*(TK-TTriple))
	} else {
		alpha = coefHWaterHi[0] + TK*(coefHWaterHi[1]+TK*(coefHWaterHi[2]+TK*(coefHWaterHi[3]+coefHWaterHi[4]*TK)))
		if TK > tPowWater {
			alpha -= coefHWaterHi[5] * math.Pow(TK-tPowWater, 3.1)
		}
	}
	return alpha + betaWater(TK) - betaWater0
}

// 温度 TK [K] における飽和水蒸気の比エンタルピー [J/kg] を求める。
// 理想気体のエンタルピーにビリアル係数による実在気体の補正を加えたもの。
// 適用範囲は 173.15 K <= TK <= 473.15 K。
func EnthalpyVapor(TK float64) float64 {
	h0 := coefHVapor[0] + TK*(coefHVapor[1]+TK*(coefHVapor[2]+TK*(coefHVapor[3]+TK*(coefHVapor[4]+coefHVapor[5]*TK))))
	p := Pws(TK)
	return h0 - Rv*TK*TK*p*(DBlin(TK)+0.5*DClin(TK)*p)
}
