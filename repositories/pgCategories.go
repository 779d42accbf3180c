package repositories

import (
	"collection-server/db"
	"collection-server/entities"
)

type categoryPgRepository struct {
	db db.Database
}

func NewCategoryPgRepository(database db.Database) CategoryRepository {
	return &categoryPgRepository{db: database}
}

func (r *categoryPgRepository) GetAll() ([]entities.Category, error) {
	var categories []entities.Category
	err := r.db.GetDB().Order("id").Find(&categories).Error
	return categories, err
}

func (r *categoryPgRepository) GetByID(id uint) (*entities.Category, error) {
	var category entities.Category
	err := r.db.GetDB().Where("id = ?", id).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}
