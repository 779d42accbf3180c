package entities

import "time"

// Collection is a named grouping of items with exactly one owner. The owner
// is fixed at creation; there is no transfer-of-ownership operation.
type Collection struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null;size:120" json:"name"`
	Description string    `json:"description"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User   User    `gorm:"foreignKey:UserID" json:"-"`
	Items  []Item  `gorm:"foreignKey:CollectionID" json:"-"`
	Shares []Share `gorm:"foreignKey:CollectionID" json:"-"`
}
