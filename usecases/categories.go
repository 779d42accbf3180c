package usecases

import (
	"collection-server/entities"
	"collection-server/repositories"
)

type CategoryUseCase struct {
	CategoryRepo repositories.CategoryRepository
}

func NewCategoryUseCase(categoryRepo repositories.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{CategoryRepo: categoryRepo}
}

func (uc *CategoryUseCase) List() ([]entities.Category, error) {
	return uc.CategoryRepo.GetAll()
}
