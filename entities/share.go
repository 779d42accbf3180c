package entities

import "time"

// Share grants a non-owner user read visibility into a collection. At most
// one share exists per (collection, recipient) pair, and the recipient is
// never the collection owner.
type Share struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	CollectionID     uint      `gorm:"not null;uniqueIndex:idx_collection_recipient" json:"collection_id"`
	SharedWithUserID uint      `gorm:"not null;uniqueIndex:idx_collection_recipient" json:"shared_with_user_id"`
	CreatedAt        time.Time `json:"created_at"`

	Collection     Collection `gorm:"foreignKey:CollectionID" json:"-"`
	SharedWithUser User       `gorm:"foreignKey:SharedWithUserID" json:"-"`
}
