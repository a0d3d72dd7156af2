package models

import "slices"

// Fixtures is the complete, immutable data set the catalog is derived from.
type Fixtures struct {
	Users      []User     `json:"users"`
	Categories []Category `json:"categories"`
	Products   []Product  `json:"products"`
}

// Clone returns a deep copy so callers can never reach the loaded collections.
func (f Fixtures) Clone() Fixtures {
	return Fixtures{
		Users:      slices.Clone(f.Users),
		Categories: slices.Clone(f.Categories),
		Products:   slices.Clone(f.Products),
	}
}

// All lists every model persisted by the fixture store, in dependency order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Category{},
		&Product{},
	}
}
