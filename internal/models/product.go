package models

// Product is a catalog entry. Its owner is the owner of its category.
type Product struct {
	ID         uint   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name       string `gorm:"not null" json:"name"`
	CategoryID uint   `gorm:"not null;index" json:"category_id"`
}
