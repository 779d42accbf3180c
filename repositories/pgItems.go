package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"collection-server/db"
	"collection-server/entities"
)

type itemPgRepository struct {
	db db.Database
}

func NewItemPgRepository(database db.Database) ItemRepository {
	return &itemPgRepository{db: database}
}

func (r *itemPgRepository) joined() *gorm.DB {
	return r.db.GetDB().
		Joins("JOIN collections ON collections.id = items.collection_id").
		Preload("Category").
		Preload("Photos")
}

func (r *itemPgRepository) Create(item *entities.Item) error {
	return r.db.GetDB().Create(item).Error
}

func (r *itemPgRepository) GetByCollection(collectionID, userID uint) ([]entities.Item, error) {
	var items []entities.Item
	err := r.joined().
		Where("items.collection_id = ?", collectionID).
		Where(visibleToUser, userID, userID).
		Order("items.id").
		Find(&items).Error
	return items, err
}

func (r *itemPgRepository) GetVisibleByID(collectionID, itemID, userID uint) (*entities.Item, error) {
	var item entities.Item
	err := r.joined().
		Where("items.id = ? AND items.collection_id = ?", itemID, collectionID).
		Where(visibleToUser, userID, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemPgRepository) GetOwnedByID(collectionID, itemID, userID uint) (*entities.Item, error) {
	var item entities.Item
	err := r.joined().
		Where("items.id = ? AND items.collection_id = ? AND collections.user_id = ?", itemID, collectionID, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemPgRepository) Update(item *entities.Item) error {
	return r.db.GetDB().Omit(clause.Associations).Save(item).Error
}

func (r *itemPgRepository) Delete(id uint) error {
	return r.db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&entities.Photo{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Item{}).Error
	})
}
