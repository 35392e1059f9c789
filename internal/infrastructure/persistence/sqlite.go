package persistence

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Setup 開啟 SQLite 資料庫並執行遷移。path 留空時使用內存資料庫。
func Setup(path string, debug bool) (*gorm.DB, error) {
	if path == "" {
		path = ":memory:"
	} else {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	logLevel := logger.Silent
	if debug {
		logLevel = logger.Warn
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&User{},
		&SocialLink{},
		&Recipe{},
		&ConversionHistory{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// Seed 寫入預設資料。已有資料時跳過，可重複呼叫。
func Seed(db *gorm.DB) error {
	var linkCount int64
	db.Model(&SocialLink{}).Count(&linkCount)
	if linkCount == 0 {
		defaultLinks := []SocialLink{
			{Platform: "Instagram", Username: "@precision_baking", URL: "#", IconClass: "ri-instagram-line", BgColorClass: "primary"},
			{Platform: "Twitter", Username: "@precision_baking", URL: "#", IconClass: "ri-twitter-x-line", BgColorClass: "accent"},
			{Platform: "GitHub", Username: "@precision_baking", URL: "#", IconClass: "ri-github-fill", BgColorClass: "secondary"},
			{Platform: "Pinterest", Username: "@precision_baking", URL: "#", IconClass: "ri-pinterest-line", BgColorClass: "primary"},
			{Platform: "YouTube", Username: "Precision Baking", URL: "#", IconClass: "ri-youtube-line", BgColorClass: "secondary"},
			{Platform: "Facebook", Username: "Precision Baking", URL: "#", IconClass: "ri-facebook-circle-line", BgColorClass: "accent"},
		}
		if err := db.Create(&defaultLinks).Error; err != nil {
			return fmt.Errorf("failed to seed social links: %w", err)
		}
	}

	var recipeCount int64
	db.Model(&Recipe{}).Count(&recipeCount)
	if recipeCount == 0 {
		defaultRecipes := []Recipe{
			{
				Title:       "Perfect Chocolate Chip Cookies",
				Description: "Precision measurements for the perfect chewy texture.",
				Ingredients: []RecipeIngredient{
					{Name: "all-purpose flour", Amount: "2 cups", Weight: "240g"},
					{Name: "granulated sugar", Amount: "1 cup", Weight: "200g"},
					{Name: "brown sugar, packed", Amount: "1 cup", Weight: "220g"},
					{Name: "unsalted butter", Amount: "1/2 cup", Weight: "113g"},
					{Name: "vanilla extract", Amount: "1 tsp", Weight: "5g"},
					{Name: "salt", Amount: "1 tsp", Weight: "6g"},
					{Name: "chocolate chips", Amount: "1 cup", Weight: "170g"},
				},
				Instructions: "Mix dry ingredients. Cream butter and sugars. Add vanilla. Combine and fold in chocolate chips. Bake at 350°F for 12-15 minutes.",
				ImageURL:     "https://images.unsplash.com/photo-1565958011703-44f9829ba187?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				Featured:     true,
			},
			{
				Title:       "Vanilla Bean Cupcakes",
				Description: "Light and fluffy cupcakes with precise measurements.",
				Ingredients: []RecipeIngredient{
					{Name: "cake flour", Amount: "1 3/4 cups", Weight: "190g"},
					{Name: "granulated sugar", Amount: "1 cup", Weight: "200g"},
					{Name: "baking powder", Amount: "1.5 tsp", Weight: "6g"},
					{Name: "unsalted butter", Amount: "1/2 cup", Weight: "113g"},
					{Name: "vanilla bean paste", Amount: "2 tsp", Weight: "10g"},
					{Name: "eggs", Amount: "2 large", Weight: "100g"},
					{Name: "milk", Amount: "3/4 cup", Weight: "180g"},
				},
				Instructions: "Cream butter and sugar. Add eggs one at a time. Alternate adding dry ingredients and milk. Bake at 350°F for 18-20 minutes.",
				ImageURL:     "https://images.unsplash.com/photo-1486427944299-d1955d23e34d?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				Featured:     true,
			},
		}
		if err := db.Create(&defaultRecipes).Error; err != nil {
			return fmt.Errorf("failed to seed recipes: %w", err)
		}
	}

	return nil
}
