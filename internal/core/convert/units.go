package convert

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"precise-baker/internal/pkg/common"
)

// Unit 量測單位（封閉集合）
type Unit string

const (
	UnitCup   Unit = "cup"
	UnitTbsp  Unit = "tbsp"
	UnitTsp   Unit = "tsp"
	UnitFlOz  Unit = "fl-oz"
	UnitML    Unit = "ml"
	UnitL     Unit = "l"
	UnitGram  Unit = "g"
	UnitKG    Unit = "kg"
	UnitOz    Unit = "oz"
	UnitLb    Unit = "lb"
	UnitPinch Unit = "pinch"
	UnitDash  Unit = "dash"
)

// 體積單位換算為毫升（標準物理常數，所有體積比率由此推導）
var volumeToML = map[Unit]float64{
	UnitCup:  236.588,
	UnitTbsp: 14.787,
	UnitTsp:  4.929,
	UnitFlOz: 29.574,
	UnitML:   1,
	UnitL:    1000,
}

// 質量單位換算為克
var massToGram = map[Unit]float64{
	UnitGram: 1,
	UnitKG:   1000,
	UnitOz:   28.350,
	UnitLb:   453.592,
}

// pinch/dash 為近似單位，只定義到 tsp/ml/g 的固定比率，
// 不參與密度換算，也沒有反向條目
var approxRatios = map[Unit]map[Unit]float64{
	UnitPinch: {
		UnitTsp:  0.0625, // 1/16 tsp
		UnitML:   0.308,
		UnitGram: 0.3,
	},
	UnitDash: {
		UnitTsp:  0.125, // 1/8 tsp
		UnitML:   0.616,
		UnitGram: 0.6,
	},
}

// ingredientDensity 食材密度條目（g/ml）
type ingredientDensity struct {
	Key     string
	Density float64
}

// 密度表依宣告順序查詢，食材名稱包含 Key 即命中，先命中先贏。
// 順序不可調整：較特定的條目（brown sugar）必須排在較一般的（sugar）前面。
var densityTable = []ingredientDensity{
	{"brown sugar", 0.93},
	{"powdered sugar", 0.56},
	{"flour", 0.6},
	{"sugar", 0.85},
	{"butter", 0.96},
	{"honey", 1.42},
	{"cocoa", 0.53},
	{"oil", 0.92},
	{"milk", 1.03},
	{"salt", 1.22},
	{"water", 1.0},
}

// defaultDensity 查無食材時的預設密度
const defaultDensity = 0.8

// 預定義轉換錯誤
var (
	ErrInvalidQuantity       = common.NewError(common.ErrCodeInvalidQuantity, "Quantity must be a valid number", 400, nil)
	ErrUnsupportedConversion = common.NewError(common.ErrCodeUnsupportedConversion, "Conversion between these units is not supported", 400, nil)
)

// Result 轉換結果
type Result struct {
	Quantity  float64 // 轉換後數值（已四捨五入到小數點後兩位）
	Formatted string  // 人類可讀結果字串
}

// Engine 量測轉換引擎。無內部狀態，僅查詢唯讀靜態表，可安全併發使用。
type Engine struct{}

// NewEngine 創建量測轉換引擎
func NewEngine() *Engine {
	return &Engine{}
}

// Convert 將數量從 from 單位轉換為 to 單位。
// ingredient 為可選；當體積與質量互轉且有提供食材時，使用食材密度，
// 否則以水（1.0 g/ml）計算。
func (e *Engine) Convert(quantity string, from, to Unit, ingredient string) (*Result, error) {
	q, err := strconv.ParseFloat(strings.TrimSpace(quantity), 64)
	if err != nil || math.IsInf(q, 0) || math.IsNaN(q) {
		return nil, ErrInvalidQuantity
	}

	if !IsSupportedUnit(from) || !IsSupportedUnit(to) {
		return nil, ErrUnsupportedConversion
	}

	// 同單位直接回傳，避免自身比率造成浮點雜訊
	if from == to {
		return &Result{
			Quantity:  q,
			Formatted: formatResult(quantity, from, strings.TrimSpace(quantity), to, ingredient),
		}, nil
	}

	ratio, err := e.ratio(from, to, ingredient)
	if err != nil {
		return nil, err
	}

	converted := roundHalfUp(q * ratio)

	return &Result{
		Quantity:  converted,
		Formatted: formatResult(quantity, from, strconv.FormatFloat(converted, 'f', 2, 64), to, ingredient),
	}, nil
}

// ratio 取得 (from, to) 的倍率；體積↔質量時帶入密度
func (e *Engine) ratio(from, to Unit, ingredient string) (float64, error) {
	// 近似單位只支援固定條目
	if entries, ok := approxRatios[from]; ok {
		if r, ok := entries[to]; ok {
			return r, nil
		}
		return 0, ErrUnsupportedConversion
	}
	if _, ok := approxRatios[to]; ok {
		return 0, ErrUnsupportedConversion
	}

	fromML, fromIsVolume := volumeToML[from]
	toML, toIsVolume := volumeToML[to]
	fromG, fromIsMass := massToGram[from]
	toG, toIsMass := massToGram[to]

	switch {
	case fromIsVolume && toIsVolume:
		return fromML / toML, nil
	case fromIsMass && toIsMass:
		return fromG / toG, nil
	case fromIsVolume && toIsMass:
		return fromML * e.densityFor(ingredient) / toG, nil
	case fromIsMass && toIsVolume:
		return fromG / (e.densityFor(ingredient) * toML), nil
	}

	return 0, ErrUnsupportedConversion
}

// densityFor 解析食材密度；未提供食材時以水計
func (e *Engine) densityFor(ingredient string) float64 {
	if strings.TrimSpace(ingredient) == "" {
		return 1.0
	}
	return LookupDensity(ingredient)
}

// LookupDensity 以子字串包含方式查詢食材密度，依表宣告順序先命中先贏
func LookupDensity(ingredient string) float64 {
	name := strings.ToLower(ingredient)
	for _, entry := range densityTable {
		if strings.Contains(name, entry.Key) {
			return entry.Density
		}
	}
	return defaultDensity
}

// IsSupportedUnit 檢查單位是否屬於封閉集合
func IsSupportedUnit(u Unit) bool {
	if _, ok := volumeToML[u]; ok {
		return true
	}
	if _, ok := massToGram[u]; ok {
		return true
	}
	_, ok := approxRatios[u]
	return ok
}

// SupportedUnits 回傳所有支援的單位（固定順序，供錯誤訊息使用）
func SupportedUnits() []Unit {
	return []Unit{
		UnitCup, UnitTbsp, UnitTsp, UnitFlOz, UnitML, UnitL,
		UnitGram, UnitKG, UnitOz, UnitLb, UnitPinch, UnitDash,
	}
}

// formatResult 組合結果字串，原始數量原樣回顯，只有轉換值經過四捨五入
func formatResult(original string, from Unit, converted string, to Unit, ingredient string) string {
	s := fmt.Sprintf("%s %s = %s %s", strings.TrimSpace(original), from, converted, to)
	if strings.TrimSpace(ingredient) != "" {
		s += fmt.Sprintf(" of %s", strings.TrimSpace(ingredient))
	}
	return s
}

// roundHalfUp 四捨五入到小數點後兩位
func roundHalfUp(v float64) float64 {
	return math.Round(v*100) / 100
}
