package hydrosat

import (
	"bytes"
	"fmt"
	"strconv"
)

//--------------------------------------
// 飽和物性値一覧表の出力
//--------------------------------------

// CSV形式
func (pt *PropertyTable) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("TK")
	buf.WriteString(",Pws")
	buf.WriteString(",DPws")
	buf.WriteString(",RhoW")
	buf.WriteString(",VW")
	buf.WriteString(",VI")
	buf.WriteString(",HW")
	buf.WriteString(",HI")
	buf.WriteString(",HV")
	buf.WriteString(",B")
	buf.WriteString(",C")
	buf.WriteString("\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	for i := 0; i < len(pt.TK); i++ {
		buf.WriteString(strconv.FormatFloat(pt.TK[i], 'g', -1, 64))
		writeFloat(pt.Pws[i])
		writeFloat(pt.DPws[i])
		writeFloat(pt.RhoW[i])
		writeFloat(pt.VW[i])
		writeFloat(pt.VI[i])
		writeFloat(pt.HW[i])
		writeFloat(pt.HI[i])
		writeFloat(pt.HV[i])
		writeFloat(pt.B[i])
		writeFloat(pt.C[i])
		buf.WriteString("\n")
	}
}

// Markdown形式
//
// Note:
//
//	数値は有効数字9桁で出力します。
func (pt *PropertyTable) ToMarkdown(buf *bytes.Buffer) {
	buf.WriteString("| TK | Pws | DPws | RhoW | VW | VI | HW | HI | HV | B | C |\n")
	buf.WriteString("|---|---|---|---|---|---|---|---|---|---|---|\n")

	writeCell := func(v float64) {
		buf.WriteString(fmt.Sprintf(" %.9g |", v))
	}
	for i := 0; i < len(pt.TK); i++ {
		buf.WriteString("|")
		writeCell(pt.TK[i])
		writeCell(pt.Pws[i])
		writeCell(pt.DPws[i])
		writeCell(pt.RhoW[i])
		writeCell(pt.VW[i])
		writeCell(pt.VI[i])
		writeCell(pt.HW[i])
		writeCell(pt.HI[i])
		writeCell(pt.HV[i])
		writeCell(pt.B[i])
		writeCell(pt.C[i])
		buf.WriteString("\n")
	}
}
