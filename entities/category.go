package entities

// Category is read-only reference data; rows are seeded at migration and
// never mutated through the API.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null;size:80" json:"name"`

	Items []Item `gorm:"foreignKey:CategoryID" json:"-"`
}
