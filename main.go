// HydroSat
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/udawtr/hydrosat-go/hydrosat"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	// コマンドライン引数の処理
	parser := argparse.NewParser("HydroSat", "Computes thermodynamic properties of saturated water and ice (173.15 K - 473.15 K)")

	mode := parser.Selector("", "mode", []string{"table", "point", "tws"}, &argparse.Options{
		Default: "table",
		Help:    "計算モードの指定 一覧表=table(デフォルト), 単一温度=point, 飽和温度の逆算=tws"})

	tk := parser.Float("t", "temp", &argparse.Options{
		Default: 293.15,
		Help:    "計算対象の温度（単位:K、pointモード）"})

	pw := parser.Float("p", "pressure", &argparse.Options{
		Default: 101325.0,
		Help:    "飽和水蒸気圧（単位:Pa、twsモード）"})

	tkMin := parser.Float("", "tmin", &argparse.Options{
		Default: 173.15,
		Help:    "一覧表の下限温度（単位:K）"})

	tkMax := parser.Float("", "tmax", &argparse.Options{
		Default: 473.15,
		Help:    "一覧表の上限温度（単位:K）"})

	step := parser.Float("", "step", &argparse.Options{
		Default: 5.0,
		Help:    "一覧表の温度刻み（単位:K）"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "保存ファイルパス"})

	format := parser.Selector("f", "file", []string{"CSV", "MD"}, &argparse.Options{
		Default: "CSV",
		Help:    "出力形式 CSV or MD"})

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "WARN",
		Help:    "ログレベルの指定"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		return
	}

	// ログレベル設定
	logger := logging.GetLogger("hydrosat")
	if *logLevel == "DEBUG" {
		logger.SetLevel(logging.LevelDebug)
	} else if *logLevel == "INFO" {
		logger.SetLevel(logging.LevelInfo)
	} else if *logLevel == "WARN" {
		logger.SetLevel(logging.LevelWarn)
	} else if *logLevel == "ERROR" {
		logger.SetLevel(logging.LevelError)
	} else if *logLevel == "CRITICAL" {
		logger.SetLevel(logging.LevelCritical)
	}

	// 飽和温度の逆算モード
	if *mode == "tws" {
		res := hydrosat.TwsDetail(*pw)
		if !res.Converged {
			log.Printf("ニュートン法が収束しませんでした")
		}
		if !res.InRange {
			log.Printf("計算結果が適用範囲(173.15 K～473.15 K)の外にあります")
		}
		fmt.Printf("Tws = %.6f K (反復回数: %d)\n", res.TK, res.Iter)
		log.Printf("計算が終了しました")
		return
	}

	// 物性値一覧表の作成
	var pt *hydrosat.PropertyTable
	if *mode == "point" {
		pt = hydrosat.Tabulate(*tk, *tk, 1.0)
	} else {
		pt = hydrosat.Tabulate(*tkMin, *tkMax, *step)
	}

	// 保存
	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	if *format == "CSV" {
		pt.ToCSV(buf)
	} else if *format == "MD" {
		pt.ToMarkdown(buf)
	}

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		log.Printf("%s保存: %s", *format, *filename)
		err := os.WriteFile(*filename, buf.Bytes(), os.ModePerm)
		if err != nil {
			panic(err)
		}
	}

	log.Printf("計算が終了しました")
}
