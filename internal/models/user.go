package models

// Sex is the owner's sex as recorded in the fixtures.
type Sex string

const (
	SexMale   Sex = "m"
	SexFemale Sex = "f"
)

// User represents a product owner. Users are loaded from fixtures and never mutated.
type User struct {
	ID   uint   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Sex  Sex    `gorm:"size:1;not null" json:"sex"`
}
