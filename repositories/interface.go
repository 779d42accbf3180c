package repositories

import "collection-server/entities"

// Every read and write that touches user-owned data takes the caller's id
// and applies it inside the query itself, so no method can accidentally
// expose another user's rows.

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id uint) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	EmailExists(email string) (bool, error)
	Update(user *entities.User) error
}

type CategoryRepository interface {
	GetAll() ([]entities.Category, error)
	GetByID(id uint) (*entities.Category, error)
}

type CollectionRepository interface {
	Create(collection *entities.Collection) error
	// GetOwned returns collections owned by userID with user, items
	// (and categories) and shares (and recipients) preloaded.
	GetOwned(userID uint) ([]entities.Collection, error)
	// GetSharedWith returns collections shared with userID, same projection.
	GetSharedWith(userID uint) ([]entities.Collection, error)
	// GetVisibleByID resolves id for the owner or a share recipient.
	GetVisibleByID(id, userID uint) (*entities.Collection, error)
	// GetOwnedByID resolves id only for the owner.
	GetOwnedByID(id, userID uint) (*entities.Collection, error)
	Update(collection *entities.Collection) error
	// Delete removes the collection and cascades to its items, their
	// photos, and its shares.
	Delete(id uint) error
}

type ItemRepository interface {
	Create(item *entities.Item) error
	// GetByCollection lists items whose parent collection is visible to
	// userID (owner or share recipient).
	GetByCollection(collectionID, userID uint) ([]entities.Item, error)
	GetVisibleByID(collectionID, itemID, userID uint) (*entities.Item, error)
	// GetOwnedByID resolves the (item, collection, owner) triple.
	GetOwnedByID(collectionID, itemID, userID uint) (*entities.Item, error)
	Update(item *entities.Item) error
	// Delete removes the item and its photos.
	Delete(id uint) error
}

type ShareRepository interface {
	Create(share *entities.Share) error
	GetByID(id uint) (*entities.Share, error)
	Exists(collectionID, sharedWithUserID uint) (bool, error)
	Delete(id uint) error
}
