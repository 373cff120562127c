package hydrosat

//--------------------------------------
// 飽和水・氷の比容積と密度
//--------------------------------------

// 氷の比容積の係数
var coefVolIce = [...]float64{0.1070003e-2, -0.249936e-7, 0.371611e-9}

// 飽和水の密度の係数 (分子の5次式)
// Kell, G.S.: Density, Thermal Expansivity, and Compressibility of Liquid Water
// from 0° to 150°C, J. Chem. Eng. Data, 20(1), 1975 より
var coefRhoW = [...]float64{999.83952, 16.945176, -7.9870401e-3, -46.170461e-6, 105.56302e-9, -280.54253e-12}

// 飽和水の密度の係数 (分母の1次項)
const coefRhoWDen = 16.879850e-3

// 温度 TK [K] における氷の比容積 [m3/kg] を求める。
// 適用範囲は 173.15 K <= TK <= 273.16 K。
func VolumeIce(TK float64) float64 {
	return coefVolIce[0] + TK*(coefVolIce[1]+coefVolIce[2]*TK)
}

// 温度 TK [K] における飽和水の密度 [kg/m3] を求める。
// 適用範囲は 273.16 K <= TK <= 473.15 K。範囲外でも外挿値をそのまま返す。
func DensityWater(TK float64) float64 {
	t := TK - 273.15 // セルシウス温度 (単位:℃)
	return (coefRhoW[0] + t*(coefRhoW[1]+t*(coefRhoW[2]+t*(coefRhoW[3]+t*(coefRhoW[4]+coefRhoW[5]*t))))) /
		(1.0 + coefRhoWDen*t)
}

// 温度 TK [K] における飽和水の比容積 [m3/kg] を求める。
func VolumeWater(TK float64) float64 {
	return 1.0 / DensityWater(TK)
}
