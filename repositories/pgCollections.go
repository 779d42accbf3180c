package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"collection-server/db"
	"collection-server/entities"
)

// visibleToUser matches collections the user owns or has been granted a
// share on. Reads use it; writes stay owner-only.
const visibleToUser = "collections.user_id = ? OR EXISTS (SELECT 1 FROM shares WHERE shares.collection_id = collections.id AND shares.shared_with_user_id = ?)"

type collectionPgRepository struct {
	db db.Database
}

func NewCollectionPgRepository(database db.Database) CollectionRepository {
	return &collectionPgRepository{db: database}
}

func (r *collectionPgRepository) withRelations() *gorm.DB {
	return r.db.GetDB().
		Preload("User").
		Preload("Items.Category").
		Preload("Items.Photos").
		Preload("Shares.SharedWithUser")
}

func (r *collectionPgRepository) Create(collection *entities.Collection) error {
	return r.db.GetDB().Create(collection).Error
}

func (r *collectionPgRepository) GetOwned(userID uint) ([]entities.Collection, error) {
	var collections []entities.Collection
	err := r.withRelations().
		Where("collections.user_id = ?", userID).
		Order("collections.id").
		Find(&collections).Error
	return collections, err
}

func (r *collectionPgRepository) GetSharedWith(userID uint) ([]entities.Collection, error) {
	var collections []entities.Collection
	err := r.withRelations().
		Joins("JOIN shares ON shares.collection_id = collections.id").
		Where("shares.shared_with_user_id = ?", userID).
		Order("collections.id").
		Find(&collections).Error
	return collections, err
}

func (r *collectionPgRepository) GetVisibleByID(id, userID uint) (*entities.Collection, error) {
	var collection entities.Collection
	err := r.withRelations().
		Where("collections.id = ?", id).
		Where(visibleToUser, userID, userID).
		First(&collection).Error
	if err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *collectionPgRepository) GetOwnedByID(id, userID uint) (*entities.Collection, error) {
	var collection entities.Collection
	err := r.db.GetDB().
		Where("collections.id = ? AND collections.user_id = ?", id, userID).
		First(&collection).Error
	if err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *collectionPgRepository) Update(collection *entities.Collection) error {
	return r.db.GetDB().Omit(clause.Associations).Save(collection).Error
}

func (r *collectionPgRepository) Delete(id uint) error {
	return r.db.GetDB().Transaction(func(tx *gorm.DB) error {
		itemIDs := tx.Model(&entities.Item{}).Select("id").Where("collection_id = ?", id)
		if err := tx.Where("item_id IN (?)", itemIDs).Delete(&entities.Photo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("collection_id = ?", id).Delete(&entities.Item{}).Error; err != nil {
			return err
		}
		if err := tx.Where("collection_id = ?", id).Delete(&entities.Share{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Collection{}).Error
	})
}
