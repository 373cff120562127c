package hydrosat

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

//--------------------------------------
// 飽和物性値一覧表の作成
//--------------------------------------

// 飽和曲線上の物性値一覧表
type PropertyTable struct {
	TK   []float64 //1.温度 (単位:K)
	Pws  []float64 //2.飽和水蒸気圧 (単位:Pa)
	DPws []float64 //3.飽和水蒸気圧の温度微分 (単位:Pa/K)
	RhoW []float64 //4.飽和水の密度 (単位:kg/m3)
	VW   []float64 //5.飽和水の比容積 (単位:m3/kg)
	VI   []float64 //6.氷の比容積 (単位:m3/kg)
	HW   []float64 //7.飽和水の比エンタルピー (単位:J/kg)
	HI   []float64 //8.氷の比エンタルピー (単位:J/kg)
	HV   []float64 //9.飽和水蒸気の比エンタルピー (単位:J/kg)
	B    []float64 //10.第2ビリアル係数 B' (単位:1/Pa)
	C    []float64 //11.第3ビリアル係数 C' (単位:1/Pa2)
}

// 温度 tkMin から tkMax まで step 刻みの飽和物性値一覧表を作成します。
// tkMax が tkMin 以下の場合は tkMin の1点のみの表を作成します。
func Tabulate(tkMin float64, tkMax float64, step float64) *PropertyTable {
	n := 1
	if tkMax > tkMin && step > 0 {
		n = int((tkMax-tkMin)/step+1.0e-9) + 1
	}

	pt := PropertyTable{
		TK:   make([]float64, n),
		Pws:  make([]float64, n),
		DPws: make([]float64, n),
		RhoW: make([]float64, n),
		VW:   make([]float64, n),
		VI:   make([]float64, n),
		HW:   make([]float64, n),
		HI:   make([]float64, n),
		HV:   make([]float64, n),
		B:    make([]float64, n),
		C:    make([]float64, n),
	}

	if n == 1 {
		pt.TK[0] = tkMin
	} else {
		floats.Span(pt.TK, tkMin, tkMin+float64(n-1)*step)
	}

	logger.Debugf("一覧表の作成: %g K から %g K まで %g K 刻み (%d点)", pt.TK[0], pt.TK[n-1], step, n)

	for i := 0; i < n; i++ {
		tk := pt.TK[i]

		pt.Pws[i] = Pws(tk)
		pt.DPws[i] = DPws(tk)
		pt.HV[i] = EnthalpyVapor(tk)
		pt.B[i] = Blin(tk)
		pt.C[i] = Clin(tk)

		// 三重点未満では液相の物性値を計算できないためnanとする
		if tk >= TTriple {
			pt.RhoW[i] = DensityWater(tk)
			pt.VW[i] = VolumeWater(tk)
			pt.HW[i] = EnthalpyWater(tk)
		} else {
			pt.RhoW[i] = math.NaN()
			pt.VW[i] = math.NaN()
			pt.HW[i] = math.NaN()
		}

		// 三重点超では固相の物性値を計算できないためnanとする
		if tk <= TTriple {
			pt.VI[i] = VolumeIce(tk)
			pt.HI[i] = EnthalpyIce(tk)
		} else {
			pt.VI[i] = math.NaN()
			pt.HI[i] = math.NaN()
		}
	}

	return &pt
}
