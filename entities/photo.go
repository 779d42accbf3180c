package entities

// Photo stores an image URL for an item. The schema carries it and item
// reads include it, but no endpoint mutates photos yet.
type Photo struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	URL    string `gorm:"not null" json:"url"`
	ItemID uint   `gorm:"index;not null" json:"item_id"`

	Item Item `gorm:"foreignKey:ItemID" json:"-"`
}
