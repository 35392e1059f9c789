package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrRecordNotFound 查無資料
var ErrRecordNotFound = errors.New("record not found")

// Store 儲存層介面。核心邏輯不依賴具體實作，
// 可以換成內存 map 或任何關聯式資料庫。
type Store interface {
	// 社群連結
	SocialLinks(ctx context.Context, userID *uint) ([]SocialLink, error)
	CreateSocialLink(ctx context.Context, link *SocialLink) error
	UpdateSocialLink(ctx context.Context, id uint, updates SocialLinkUpdate) (*SocialLink, error)
	DeleteSocialLink(ctx context.Context, id uint) error

	// 食譜
	Recipes(ctx context.Context, userID *uint, featured *bool) ([]Recipe, error)
	Recipe(ctx context.Context, id uint) (*Recipe, error)
	CreateRecipe(ctx context.Context, recipe *Recipe) error
	UpdateRecipe(ctx context.Context, id uint, updates RecipeUpdate) (*Recipe, error)
	DeleteRecipe(ctx context.Context, id uint) error

	// 轉換歷史
	ConversionHistories(ctx context.Context, userID *uint) ([]ConversionHistory, error)
	SaveConversionHistory(ctx context.Context, item *ConversionHistory) error

	// 健康檢查
	Ping(ctx context.Context) error
}

// GormStore 基於 GORM 的儲存層實作
type GormStore struct {
	db *gorm.DB
}

// NewGormStore 創建 GORM 儲存層
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// SocialLinks 查詢社群連結，可選擇依使用者過濾
func (s *GormStore) SocialLinks(ctx context.Context, userID *uint) ([]SocialLink, error) {
	var links []SocialLink
	q := s.db.WithContext(ctx)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	if err := q.Order("id").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// CreateSocialLink 創建社群連結
func (s *GormStore) CreateSocialLink(ctx context.Context, link *SocialLink) error {
	return s.db.WithContext(ctx).Create(link).Error
}

// UpdateSocialLink 部分更新社群連結，回傳更新後的完整紀錄
func (s *GormStore) UpdateSocialLink(ctx context.Context, id uint, updates SocialLinkUpdate) (*SocialLink, error) {
	values := map[string]interface{}{}
	if updates.Platform != nil {
		values["platform"] = *updates.Platform
	}
	if updates.Username != nil {
		values["username"] = *updates.Username
	}
	if updates.URL != nil {
		values["url"] = *updates.URL
	}
	if updates.IconClass != nil {
		values["icon_class"] = *updates.IconClass
	}
	if updates.BgColorClass != nil {
		values["bg_color_class"] = *updates.BgColorClass
	}
	if updates.UserID != nil {
		values["user_id"] = *updates.UserID
	}

	var link SocialLink
	if err := s.db.WithContext(ctx).First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	if len(values) > 0 {
		if err := s.db.WithContext(ctx).Model(&link).Updates(values).Error; err != nil {
			return nil, err
		}
	}
	return &link, nil
}

// DeleteSocialLink 刪除社群連結
func (s *GormStore) DeleteSocialLink(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&SocialLink{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// Recipes 查詢食譜，可選擇依使用者與精選旗標過濾
func (s *GormStore) Recipes(ctx context.Context, userID *uint, featured *bool) ([]Recipe, error) {
	var recipes []Recipe
	q := s.db.WithContext(ctx)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	if featured != nil {
		q = q.Where("featured = ?", *featured)
	}
	if err := q.Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Recipe 依 ID 查詢單一食譜
func (s *GormStore) Recipe(ctx context.Context, id uint) (*Recipe, error) {
	var recipe Recipe
	if err := s.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// CreateRecipe 創建食譜
func (s *GormStore) CreateRecipe(ctx context.Context, recipe *Recipe) error {
	return s.db.WithContext(ctx).Create(recipe).Error
}

// UpdateRecipe 部分更新食譜，回傳更新後的完整紀錄
func (s *GormStore) UpdateRecipe(ctx context.Context, id uint, updates RecipeUpdate) (*Recipe, error) {
	var recipe Recipe
	if err := s.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	if updates.Title != nil {
		recipe.Title = *updates.Title
	}
	if updates.Description != nil {
		recipe.Description = *updates.Description
	}
	if updates.Ingredients != nil {
		recipe.Ingredients = *updates.Ingredients
	}
	if updates.Instructions != nil {
		recipe.Instructions = *updates.Instructions
	}
	if updates.ImageURL != nil {
		recipe.ImageURL = *updates.ImageURL
	}
	if updates.Featured != nil {
		recipe.Featured = *updates.Featured
	}
	if updates.UserID != nil {
		recipe.UserID = updates.UserID
	}

	if err := s.db.WithContext(ctx).Save(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// DeleteRecipe 刪除食譜
func (s *GormStore) DeleteRecipe(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&Recipe{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// ConversionHistories 查詢轉換歷史，可選擇依使用者過濾
func (s *GormStore) ConversionHistories(ctx context.Context, userID *uint) ([]ConversionHistory, error) {
	var items []ConversionHistory
	q := s.db.WithContext(ctx)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	if err := q.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SaveConversionHistory 保存轉換歷史
func (s *GormStore) SaveConversionHistory(ctx context.Context, item *ConversionHistory) error {
	return s.db.WithContext(ctx).Create(item).Error
}

// Ping 檢查資料庫連線
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
