package recipe

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"precise-baker/internal/pkg/common"
)

// ExtractResult 圖片辨識出的食譜
type ExtractResult struct {
	RecipeText   string
	Ingredients  []string
	Instructions []string
}

const extractPrompt = "You are a professional chef at PreciseBaker. " +
	"Either extract a recipe from the image OR if the image shows a prepared dish (like a food photo), " +
	"identify what dish it is and create a complete recipe for it. " +
	"Format your response as follows:\n" +
	"Title: [Recipe Title]\n" +
	"Ingredients:\n" +
	"- [Ingredient 1 with precise measurements]\n" +
	"- [Ingredient 2 with precise measurements]\n" +
	"...\n" +
	"Instructions:\n" +
	"1. [Step 1]\n" +
	"2. [Step 2]\n" +
	"...\n" +
	"If there are any measurements, make sure they are specific and accurate. " +
	"For dish photos where no recipe is visible, create a detailed authentic recipe " +
	"based on what you can identify in the image."

var (
	titleRe = regexp.MustCompile(`Title: (.*)`)
	stepRe  = regexp.MustCompile(`^\d+\.\s*`)
)

// ExtractRecipeFromImage 以視覺模型從圖片辨識食譜
func (s *Service) ExtractRecipeFromImage(ctx context.Context, imageData string) (*ExtractResult, error) {
	resp, err := s.ai.ProcessRequest(ctx, extractPrompt, imageData)
	if err != nil {
		return nil, fmt.Errorf("failed to extract recipe from image: %w", err)
	}
	// 視覺模型偶爾會把輸出包在程式碼區塊裡
	return parseExtractResponse(common.StripCodeFence(resp.Content)), nil
}

// parseExtractResponse 解析模型回應的 Title / Ingredients / Instructions 區段
func parseExtractResponse(text string) *ExtractResult {
	title := "Extracted Recipe"
	if m := titleRe.FindStringSubmatch(text); m != nil {
		title = strings.TrimSpace(m[1])
	}

	ingredientsText := sectionBetween(text, "Ingredients:", "Instructions:")
	var ingredients []string
	for _, line := range strings.Split(ingredientsText, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "-") {
			ingredients = append(ingredients, strings.TrimSpace(line[1:]))
		}
	}

	instructionsText := sectionBetween(text, "Instructions:", "")
	var instructions []string
	for _, line := range strings.Split(instructionsText, "\n") {
		line = strings.TrimSpace(line)
		if stepRe.MatchString(line) {
			instructions = append(instructions, stepRe.ReplaceAllString(line, ""))
		}
	}

	// 重組為完整的 markdown 食譜
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n## Ingredients\n", title)
	for i, ing := range ingredients {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "- %s", ing)
	}
	sb.WriteString("\n\n## Instructions\n")
	for i, inst := range instructions {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%d. %s", i+1, inst)
	}

	return &ExtractResult{
		RecipeText:   sb.String(),
		Ingredients:  ingredients,
		Instructions: instructions,
	}
}

// sectionBetween 取出 start 標記之後、end 標記之前的文字。
// end 為空字串時取到結尾；找不到 start 時回傳空字串。
func sectionBetween(text, start, end string) string {
	idx := strings.Index(text, start)
	if idx < 0 {
		return ""
	}
	rest := text[idx+len(start):]
	if end == "" {
		return rest
	}
	if endIdx := strings.Index(rest, end); endIdx >= 0 {
		return rest[:endIdx]
	}
	return rest
}
