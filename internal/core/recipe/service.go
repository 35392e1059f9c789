package recipe

import (
	"context"
	"fmt"
	"strings"

	aiservice "precise-baker/internal/core/ai/service"
	"precise-baker/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 食譜服務。負責組裝提示詞並透過 AI 服務取得結果。
type Service struct {
	ai *aiservice.Service
}

// NewService 創建食譜服務
func NewService(ai *aiservice.Service) *Service {
	return &Service{ai: ai}
}

// ConvertRecipeText 依轉換類型與倍率轉換食譜文字
func (s *Service) ConvertRecipeText(ctx context.Context, recipeText, conversionType, scaleFactor string, humidityAdjust, proMode bool) (string, error) {
	direction := "convert weight in grams to volume measurements"
	if conversionType == "cup-to-gram" {
		direction = "convert volume measurements to weight in grams"
	}

	var sb strings.Builder
	sb.WriteString("You are a professional baker and recipe converter. Please convert the following recipe according to these specifications:\n\n")
	fmt.Fprintf(&sb, "1. Conversion type: %s (%s)\n", conversionType, direction)
	fmt.Fprintf(&sb, "2. Scale factor: %s (multiply all ingredient quantities by this number)\n", scaleFactor)
	if humidityAdjust {
		sb.WriteString("3. Adjust for high humidity conditions.\n")
	}
	if proMode {
		sb.WriteString("4. Include professional baking notes and tips.\n")
	}
	fmt.Fprintf(&sb, "\nRecipe to convert:\n%s\n\n", recipeText)
	sb.WriteString("Format your response as a complete recipe with a title, ingredients list, and instructions. Use markdown formatting.")

	resp, err := s.ai.ProcessRequest(ctx, sb.String(), "")
	if err != nil {
		common.LogWarn("食譜轉換 AI 請求失敗",
			zap.Error(err),
			zap.String("conversion_type", conversionType),
		)
		return "", fmt.Errorf("failed to convert recipe: %w", err)
	}
	return resp.Content, nil
}

// GenerateFromIngredients 依食材清單生成食譜
func (s *Service) GenerateFromIngredients(ctx context.Context, ingredients, conversionType string, humidityAdjust, proMode bool) (string, error) {
	measurements := "volume measurements (cups, tablespoons)"
	if conversionType == "cup-to-gram" {
		measurements = "weight measurements (grams)"
	}

	var sb strings.Builder
	sb.WriteString("You are a professional chef at PreciseBaker. Please generate a detailed recipe using these ingredients:\n\n")
	fmt.Fprintf(&sb, "%s\n\n", ingredients)
	fmt.Fprintf(&sb, "Please use %s when listing ingredients.\n", measurements)
	if humidityAdjust {
		sb.WriteString("Adjust the recipe for high humidity conditions.\n")
	}
	if proMode {
		sb.WriteString("Include professional baking notes and tips.\n")
	}
	sb.WriteString(`
Your recipe should include:
1. A creative descriptive title
2. A brief introduction to the dish
3. Complete ingredient list with precise measurements
4. Clear, step-by-step instructions
5. Cooking time and servings
6. Optional tips for perfect results

Format your response as a complete recipe with markdown formatting. Make sure all measurements are precise and accurate.`)

	resp, err := s.ai.ProcessRequest(ctx, sb.String(), "")
	if err != nil {
		return "", fmt.Errorf("failed to generate recipe from ingredients: %w", err)
	}
	return resp.Content, nil
}

// RecipeByDishName 依菜名生成食譜，可選擇菜系與飲食限制
func (s *Service) RecipeByDishName(ctx context.Context, dishName, cuisine, dietary string) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are a professional chef at PreciseBaker. Please generate a detailed recipe for %q", dishName)
	if cuisine != "" {
		fmt.Fprintf(&sb, " in the %s style", cuisine)
	}
	if dietary != "" {
		fmt.Fprintf(&sb, " that is %s", dietary)
	}
	sb.WriteString(`.

Your recipe should include:
1. A descriptive title
2. A brief introduction to the dish
3. Precise ingredient measurements in both volume (cups, tablespoons) and weight (grams)
4. Clear, step-by-step instructions
5. Cooking time and servings
6. Optional tips for perfect results

Format your response as a complete recipe with markdown formatting. Make sure all measurements are precise and accurate.`)

	resp, err := s.ai.ProcessRequest(ctx, sb.String(), "")
	if err != nil {
		return "", fmt.Errorf("failed to generate recipe: %w", err)
	}
	return resp.Content, nil
}
