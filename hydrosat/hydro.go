// 飽和曲線上の水・氷・水蒸気の熱力学性質の計算
package hydrosat

import (
	"math"

	"github.com/hhkbp2/go-logging"
)

//--------------------------------------
// 飽和水蒸気圧とその温度微分、飽和温度の逆算
//--------------------------------------

var logger = logging.GetLogger("hydrosat")

// 適用範囲と三重点 (単位:K)
const (
	TMin    = 173.15 // 適用下限温度
	TMax    = 473.15 // 適用上限温度
	TTriple = 273.16 // 水の三重点温度
)

// ニュートン法の反復条件
const (
	twsMaxIter = 100     // 最大反復回数
	twsTol     = 1.0e-11 // 収束判定値 |ΔT| (単位:K)
)

// 液相(過冷却水を含む)の飽和水蒸気圧の係数
// Hyland, R.W., Wexler, A.: Formulations for the Thermodynamic Properties of
// the Saturated Phases of H2O from 173.15 K to 473.15 K, ASHRAE Trans. 89(2A), 1983 より
var coefPwsL = [...]float64{-0.58002206e4, 0.13914993e1, -0.48640239e-1, 0.41764768e-4, -0.14452093e-7, 0.65459673e1}

// 固相(氷)の飽和水蒸気圧の係数 (同上)
var coefPwsS = [...]float64{-0.56745359e4, 0.63925247e1, -0.96778430e-2, 0.62215701e-6, 0.20747825e-8, -0.94840240e-12, 0.41635019e1}

// 飽和温度の初期推定値の係数 (ln P の4次式 + P の1次項)
var coefTws = [...]float64{2.12787714e+2, 7.30692527e+0, 1.9739705e-1, 1.09308368e-2, 1.85470697e-3, 5.13847392e-6}

// 温度 TK [K] における液相(過冷却水を含む)の飽和水蒸気圧 [Pa] を求める。
// 適用範囲は 273.16 K <= TK <= 473.15 K。
func Pws_l(TK float64) float64 {
	return math.Exp((coefPwsL[0]+TK*(coefPwsL[1]+TK*(coefPwsL[2]+TK*(coefPwsL[3]+coefPwsL[4]*TK))))/TK +
		coefPwsL[5]*math.Log(TK))
}

// 温度 TK [K] における固相(氷)の飽和水蒸気圧 [Pa] を求める。
// 適用範囲は 173.15 K <= TK <= 273.16 K。
func Pws_s(TK float64) float64 {
	return math.Exp((coefPwsS[0]+TK*(coefPwsS[1]+TK*(coefPwsS[2]+TK*(coefPwsS[3]+TK*(coefPwsS[4]+coefPwsS[5]*TK)))))/TK +
		coefPwsS[6]*math.Log(TK))
}

// 温度 TK [K] における飽和水蒸気圧 [Pa] を求める。
// 三重点(273.16 K)未満では氷の式、以上では水の式を使用する。
// 適用範囲(173.15 K～473.15 K)の外でも外挿値をそのまま返す。
func Pws(TK float64) float64 {
	if TK < TTriple {
		return Pws_s(TK)
	}
	return Pws_l(TK)
}

// 液相の飽和水蒸気圧の温度微分 dPws/dT [Pa/K] を求める。
func DPws_l(TK float64) float64 {
	return Pws_l(TK) * ((coefPwsL[5]-coefPwsL[0]/TK)/TK +
		coefPwsL[2] + TK*(2*coefPwsL[3]+3*coefPwsL[4]*TK))
}

// 固相(氷)の飽和水蒸気圧の温度微分 dPws/dT [Pa/K] を求める。
func DPws_s(TK float64) float64 {
	return Pws_s(TK) * ((coefPwsS[6]-coefPwsS[0]/TK)/TK +
		coefPwsS[2] + TK*(2*coefPwsS[3]+TK*(3*coefPwsS[4]+4*coefPwsS[5]*TK)))
}

// 飽和水蒸気圧の温度微分 dPws/dT [Pa/K] を求める。
// 相の選択は Pws と同じ。
func DPws(TK float64) float64 {
	if TK < TTriple {
		return DPws_s(TK)
	}
	return DPws_l(TK)
}

// Tws の計算結果
type TwsResult struct {
	TK        float64 // 飽和温度 (単位:K)
	Iter      int     // 実行した反復回数
	Converged bool    // |ΔT| < 1e-11 K を満たして収束したか
	InRange   bool    // TK が適用範囲 [173.15, 473.15] に収まっているか
}

// 飽和水蒸気圧 P [Pa] に対応する飽和温度 [K] を求める。
// 収束しなかった場合も最後の推定値をそのまま返す(収束情報が必要な場合は TwsDetail を使用)。
func Tws(P float64) float64 {
	return TwsDetail(P).TK
}

// 飽和水蒸気圧 P [Pa] に対応する飽和温度 [K] をニュートン法で逆算し、収束情報付きで返す。
// 反復中に三重点をまたいだ場合は、その時点の温度に応じた相の式が自動的に選択される。
func TwsDetail(P float64) TwsResult {
	r := TwsResult{TK: twsEstimate(P)}

	for i := 1; i <= twsMaxIter; i++ {
		f := P - Pws(r.TK)
		df := -DPws(r.TK)
		dT := -f / df
		r.TK += dT
		r.Iter = i
		if math.Abs(dT) < twsTol {
			r.Converged = true
			break
		}
	}

	if !r.Converged {
		logger.Warnf("Tws: P=%g Paに対して%d回の反復でも収束しませんでした (TK=%g K)", P, r.Iter, r.TK)
	}

	r.InRange = TMin <= r.TK && r.TK <= TMax
	return r
}

// 飽和水蒸気圧 P [Pa] から飽和温度の初期推定値 [K] を求める近似式。
func twsEstimate(P float64) float64 {
	x := math.Log(P)
	return coefTws[0] + x*(coefTws[1]+x*(coefTws[2]+x*(coefTws[3]+coefTws[4]*x))) + coefTws[5]*P
}
