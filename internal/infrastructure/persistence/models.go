package persistence

// User 使用者帳號（目前僅作為外鍵對象，未開放註冊登入）
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
}

// SocialLink 社群連結
type SocialLink struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Platform     string `gorm:"not null" json:"platform"`
	Username     string `gorm:"not null" json:"username"`
	URL          string `gorm:"column:url;not null" json:"url"`
	IconClass    string `gorm:"column:icon_class;not null" json:"iconClass"`
	BgColorClass string `gorm:"column:bg_color_class;not null" json:"bgColorClass"`
	UserID       *uint  `gorm:"column:user_id" json:"user_id"`
}

// RecipeIngredient 食譜內的單一食材（體積與重量並列）
type RecipeIngredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Weight string `json:"weight"`
}

// Recipe 食譜
type Recipe struct {
	ID           uint               `gorm:"primaryKey" json:"id"`
	Title        string             `gorm:"not null" json:"title"`
	Description  string             `gorm:"not null" json:"description"`
	Ingredients  []RecipeIngredient `gorm:"serializer:json" json:"ingredients"`
	Instructions string             `gorm:"not null" json:"instructions"`
	ImageURL     string             `gorm:"column:image_url" json:"imageUrl"`
	Featured     bool               `gorm:"default:false" json:"featured"`
	UserID       *uint              `gorm:"column:user_id" json:"user_id"`
}

// ConversionHistory 轉換歷史紀錄
type ConversionHistory struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	OriginalRecipe  string `gorm:"not null" json:"originalRecipe"`
	ConvertedRecipe string `gorm:"not null" json:"convertedRecipe"`
	ConversionType  string `gorm:"not null" json:"conversionType"`
	ScaleFactor     string `gorm:"not null" json:"scaleFactor"`
	Timestamp       string `gorm:"not null" json:"timestamp"`
	UserID          *uint  `gorm:"column:user_id" json:"user_id"`
}

// SocialLinkUpdate 社群連結的部分更新欄位（nil 表示不變）
type SocialLinkUpdate struct {
	Platform     *string `json:"platform"`
	Username     *string `json:"username"`
	URL          *string `json:"url"`
	IconClass    *string `json:"iconClass"`
	BgColorClass *string `json:"bgColorClass"`
	UserID       *uint   `json:"user_id"`
}

// RecipeUpdate 食譜的部分更新欄位（nil 表示不變）
type RecipeUpdate struct {
	Title        *string             `json:"title"`
	Description  *string             `json:"description"`
	Ingredients  *[]RecipeIngredient `json:"ingredients"`
	Instructions *string             `json:"instructions"`
	ImageURL     *string             `json:"imageUrl"`
	Featured     *bool               `json:"featured"`
	UserID       *uint               `json:"user_id"`
}
