package entities

import "time"

// Item is a single catalogued object. It belongs to exactly one collection
// and one category; re-parenting across collections is not supported.
type Item struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null;size:120" json:"name"`
	Description  string    `json:"description"`
	Condition    string    `json:"condition"`
	CategoryID   uint      `gorm:"index;not null" json:"category_id"`
	CollectionID uint      `gorm:"index;not null" json:"collection_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Category   Category   `gorm:"foreignKey:CategoryID" json:"-"`
	Collection Collection `gorm:"foreignKey:CollectionID" json:"-"`
	Photos     []Photo    `gorm:"foreignKey:ItemID" json:"-"`
}
