package models

// Category groups products and has a single designated owner.
type Category struct {
	ID      uint   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	Icon    string `json:"icon"`
	OwnerID uint   `gorm:"not null;index" json:"owner_id"`
}

// Label renders the category the way the catalog table shows it, e.g. "🍏 - Fruits".
func (c Category) Label() string {
	if c.Icon == "" {
		return c.Title
	}
	return c.Icon + " - " + c.Title
}
