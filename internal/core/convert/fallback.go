package convert

import (
	"fmt"
	"strconv"
	"strings"
)

// staticIngredient 後備食譜的固定食材條目。
// Cup 與 Tsp 擇一存在，Gram 一律存在。
type staticIngredient struct {
	Name string
	Cup  string
	Tsp  string
	Gram string
}

// fallbackIngredients AI 服務不可用時使用的固定 7 筆食材參考表。
// 順序即輸出順序，不可調整。
var fallbackIngredients = []staticIngredient{
	{Name: "all-purpose flour", Cup: "2 cups", Gram: "240g"},
	{Name: "granulated sugar", Cup: "1 cup", Gram: "200g"},
	{Name: "brown sugar, packed", Cup: "1 cup", Gram: "220g"},
	{Name: "unsalted butter", Cup: "1/2 cup", Gram: "113g"},
	{Name: "vanilla extract", Tsp: "1 tsp", Gram: "5g"},
	{Name: "salt", Tsp: "1 tsp", Gram: "6g"},
	{Name: "chocolate chips", Cup: "1 cup", Gram: "170g"},
}

// 固定附註句，依旗標原樣附加，不做任何數值計算
const (
	proModeNote  = "**Professional Baker Notes:** For optimal results, maintain dough temperature between 68-72°F during mixing. Final hydration should be 65-68% depending on flour protein content."
	humidityNote = "**Humidity adjustment applied:** Reduced flour by 5g to account for high humidity."
)

// FallbackIngredientLines 產生後備食譜的食材行。
// conversionType 為 "cup-to-gram" 時輸出克數，其餘一律視為 gram-to-volume。
// scaleFactor 解析失敗或非正數時靜默退回 1（沿用寬鬆策略）。
func (e *Engine) FallbackIngredientLines(conversionType, scaleFactor string) []string {
	factor := parseScaleFactor(scaleFactor)

	lines := make([]string, 0, len(fallbackIngredients))
	for _, ing := range fallbackIngredients {
		volText := ing.Cup
		if volText == "" {
			volText = ing.Tsp
		}

		if conversionType == "cup-to-gram" {
			amount := leadingNumber(ing.Gram) * factor
			lines = append(lines, fmt.Sprintf("- **%sg** %s (%s)", formatAmount(amount), ing.Name, volText))
			continue
		}

		amount := leadingNumber(volText) * factor
		unitLabel := volText
		if idx := strings.Index(volText, " "); idx != -1 {
			unitLabel = volText[idx+1:]
		}
		lines = append(lines, fmt.Sprintf("- **%s %s** %s (%s)", formatAmount(amount), unitLabel, ing.Name, ing.Gram))
	}

	return lines
}

// RenderFallbackRecipe 將後備食材行包進完整的食譜範本。
// 標題取 recipeText 第一行；附註句為固定文字，只依旗標決定是否出現。
func (e *Engine) RenderFallbackRecipe(recipeText, conversionType, scaleFactor string, humidityAdjust, proMode bool) string {
	title := strings.SplitN(recipeText, "\n", 2)[0]
	if strings.TrimSpace(title) == "" {
		title = "Converted Recipe"
	}

	lines := e.FallbackIngredientLines(conversionType, scaleFactor)

	proLine := ""
	if proMode {
		proLine = proModeNote
	}
	humidityLine := ""
	if humidityAdjust {
		humidityLine = humidityNote
	}

	return fmt.Sprintf("\n## %s\n\n%s\n\n%s\n%s\n", title, strings.Join(lines, "\n"), proLine, humidityLine)
}

// parseScaleFactor 解析縮放倍率，無效或非正數時退回 1
func parseScaleFactor(s string) float64 {
	factor, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || factor <= 0 {
		return 1
	}
	return factor
}

// leadingNumber 解析字串開頭的數字（"240g" -> 240，"1/2 cup" -> 1）。
// 與原始資料格式一致：遇到第一個非數字字元即停止。
func leadingNumber(s string) float64 {
	end := 0
	seenDot := false
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

// formatAmount 以最精簡格式輸出數值（不留多餘的零）
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
