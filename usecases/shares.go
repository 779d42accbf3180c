package usecases

import (
	"errors"

	"gorm.io/gorm"

	"collection-server/entities"
	"collection-server/repositories"
)

type ShareUseCase struct {
	ShareRepo      repositories.ShareRepository
	CollectionRepo repositories.CollectionRepository
	UserRepo       repositories.UserRepository
}

func NewShareUseCase(shareRepo repositories.ShareRepository, collectionRepo repositories.CollectionRepository, userRepo repositories.UserRepository) *ShareUseCase {
	return &ShareUseCase{
		ShareRepo:      shareRepo,
		CollectionRepo: collectionRepo,
		UserRepo:       userRepo,
	}
}

// Create shares an owned collection with the user behind recipientEmail.
func (uc *ShareUseCase) Create(collectionID, ownerID uint, recipientEmail string) (*entities.Share, error) {
	collection, err := uc.CollectionRepo.GetOwnedByID(collectionID, ownerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	recipient, err := uc.UserRepo.GetByEmail(recipientEmail)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if recipient.ID == collection.UserID {
		return nil, ErrSelfShare
	}

	exists, err := uc.ShareRepo.Exists(collectionID, recipient.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateShare
	}

	share := &entities.Share{
		CollectionID:     collectionID,
		SharedWithUserID: recipient.ID,
	}
	if err := uc.ShareRepo.Create(share); err != nil {
		return nil, err
	}
	share.SharedWithUser = *recipient
	return share, nil
}

// Delete revokes a share. Either the collection owner or the recipient may
// revoke; anyone else is rejected.
func (uc *ShareUseCase) Delete(collectionID, shareID, callerID uint) error {
	share, err := uc.ShareRepo.GetByID(shareID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if share.CollectionID != collectionID {
		return ErrNotFound
	}

	if callerID != share.Collection.UserID && callerID != share.SharedWithUserID {
		return ErrNotAllowed
	}

	return uc.ShareRepo.Delete(share.ID)
}
