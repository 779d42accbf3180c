package repositories

import (
	"errors"

	"gorm.io/gorm"

	"collection-server/db"
	"collection-server/entities"
)

type sharePgRepository struct {
	db db.Database
}

func NewSharePgRepository(database db.Database) ShareRepository {
	return &sharePgRepository{db: database}
}

func (r *sharePgRepository) Create(share *entities.Share) error {
	return r.db.GetDB().Create(share).Error
}

func (r *sharePgRepository) GetByID(id uint) (*entities.Share, error) {
	var share entities.Share
	err := r.db.GetDB().
		Preload("Collection").
		Preload("SharedWithUser").
		Where("id = ?", id).
		First(&share).Error
	if err != nil {
		return nil, err
	}
	return &share, nil
}

func (r *sharePgRepository) Exists(collectionID, sharedWithUserID uint) (bool, error) {
	var share entities.Share
	err := r.db.GetDB().
		Select("id").
		Where("collection_id = ? AND shared_with_user_id = ?", collectionID, sharedWithUserID).
		First(&share).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *sharePgRepository) Delete(id uint) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Share{}).Error
}
