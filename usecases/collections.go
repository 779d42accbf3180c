package usecases

import (
	"errors"

	"gorm.io/gorm"

	"collection-server/entities"
	"collection-server/repositories"
)

type CollectionUseCase struct {
	CollectionRepo repositories.CollectionRepository
}

func NewCollectionUseCase(collectionRepo repositories.CollectionRepository) *CollectionUseCase {
	return &CollectionUseCase{CollectionRepo: collectionRepo}
}

// ListOwned returns the caller's own collections.
func (uc *CollectionUseCase) ListOwned(userID uint) ([]entities.Collection, error) {
	return uc.CollectionRepo.GetOwned(userID)
}

// ListShared returns collections shared with the caller. An empty result is
// ErrNotFound so the handler can distinguish "no shares" from a real error.
func (uc *CollectionUseCase) ListShared(userID uint) ([]entities.Collection, error) {
	collections, err := uc.CollectionRepo.GetSharedWith(userID)
	if err != nil {
		return nil, err
	}
	if len(collections) == 0 {
		return nil, ErrNotFound
	}
	return collections, nil
}

// Get returns the collection when the caller owns it or holds a share on it.
func (uc *CollectionUseCase) Get(id, userID uint) (*entities.Collection, error) {
	collection, err := uc.CollectionRepo.GetVisibleByID(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return collection, err
}

// Create stores a new collection owned by the caller.
func (uc *CollectionUseCase) Create(userID uint, name, description string) (*entities.Collection, error) {
	collection := &entities.Collection{
		Name:        name,
		Description: description,
		UserID:      userID,
	}
	if err := uc.CollectionRepo.Create(collection); err != nil {
		return nil, err
	}
	return collection, nil
}

// Update renames a collection the caller owns.
func (uc *CollectionUseCase) Update(id, userID uint, name, description string) error {
	collection, err := uc.CollectionRepo.GetOwnedByID(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	collection.Name = name
	collection.Description = description
	return uc.CollectionRepo.Update(collection)
}

// Delete removes a collection the caller owns along with its items and
// shares.
func (uc *CollectionUseCase) Delete(id, userID uint) error {
	_, err := uc.CollectionRepo.GetOwnedByID(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return uc.CollectionRepo.Delete(id)
}
