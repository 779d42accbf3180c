package usecases

import (
	"errors"

	"gorm.io/gorm"

	"collection-server/entities"
	"collection-server/repositories"
)

type ItemUseCase struct {
	ItemRepo       repositories.ItemRepository
	CollectionRepo repositories.CollectionRepository
	CategoryRepo   repositories.CategoryRepository
}

func NewItemUseCase(itemRepo repositories.ItemRepository, collectionRepo repositories.CollectionRepository, categoryRepo repositories.CategoryRepository) *ItemUseCase {
	return &ItemUseCase{
		ItemRepo:       itemRepo,
		CollectionRepo: collectionRepo,
		CategoryRepo:   categoryRepo,
	}
}

// List returns the items of a collection visible to the caller.
func (uc *ItemUseCase) List(collectionID, userID uint) ([]entities.Item, error) {
	if _, err := uc.CollectionRepo.GetVisibleByID(collectionID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return uc.ItemRepo.GetByCollection(collectionID, userID)
}

// Get returns one item of a collection visible to the caller.
func (uc *ItemUseCase) Get(collectionID, itemID, userID uint) (*entities.Item, error) {
	item, err := uc.ItemRepo.GetVisibleByID(collectionID, itemID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return item, err
}

// Create adds an item to a collection the caller owns. The category must
// exist.
func (uc *ItemUseCase) Create(collectionID, userID uint, name string, categoryID uint, description, condition string) (*entities.Item, error) {
	if _, err := uc.CollectionRepo.GetOwnedByID(collectionID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if _, err := uc.CategoryRepo.GetByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	item := &entities.Item{
		Name:         name,
		Description:  description,
		Condition:    condition,
		CategoryID:   categoryID,
		CollectionID: collectionID,
	}
	if err := uc.ItemRepo.Create(item); err != nil {
		return nil, err
	}

	return uc.ItemRepo.GetOwnedByID(collectionID, item.ID, userID)
}

// Update applies field changes to an owned item after validating the new
// category.
func (uc *ItemUseCase) Update(collectionID, itemID, userID uint, name string, categoryID uint, description, condition string) error {
	item, err := uc.ItemRepo.GetOwnedByID(collectionID, itemID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if _, err := uc.CategoryRepo.GetByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	item.Name = name
	item.Description = description
	item.Condition = condition
	item.CategoryID = categoryID
	return uc.ItemRepo.Update(item)
}

// Delete removes an owned item and its photos.
func (uc *ItemUseCase) Delete(collectionID, itemID, userID uint) error {
	item, err := uc.ItemRepo.GetOwnedByID(collectionID, itemID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return uc.ItemRepo.Delete(item.ID)
}
