package usecases

import (
	"errors"

	"gorm.io/gorm"

	"collection-server/auth"
	"collection-server/entities"
	"collection-server/repositories"
)

type UserUseCase struct {
	UserRepo repositories.UserRepository
	JWT      *auth.JWTManager
}

func NewUserUseCase(userRepo repositories.UserRepository, jwtManager *auth.JWTManager) *UserUseCase {
	return &UserUseCase{
		UserRepo: userRepo,
		JWT:      jwtManager,
	}
}

// Register creates a new account with a hashed password.
func (uc *UserUseCase) Register(username, email, password string) error {
	exists, err := uc.UserRepo.EmailExists(email)
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailTaken
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user := &entities.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	}
	return uc.UserRepo.Create(user)
}

// Login verifies credentials and returns a signed token. Unknown email and
// wrong password fail identically.
func (uc *UserUseCase) Login(email, password string) (string, error) {
	user, err := uc.UserRepo.GetByEmail(email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	return uc.JWT.Generate(user)
}

// GetProfile retrieves the caller's own profile.
func (uc *UserUseCase) GetProfile(userID uint) (*entities.User, error) {
	user, err := uc.UserRepo.GetByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

// ProfileUpdate carries optional profile fields; nil pointers keep the
// stored values.
type ProfileUpdate struct {
	Username       *string
	Email          *string
	Password       *string
	ProfilePicture *string
}

// UpdateProfile applies a partial update; a new password is re-hashed.
func (uc *UserUseCase) UpdateProfile(userID uint, update ProfileUpdate) error {
	user, err := uc.UserRepo.GetByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Email != nil && *update.Email != user.Email {
		exists, err := uc.UserRepo.EmailExists(*update.Email)
		if err != nil {
			return err
		}
		if exists {
			return ErrEmailTaken
		}
		user.Email = *update.Email
	}
	if update.ProfilePicture != nil {
		user.ProfilePicture = *update.ProfilePicture
	}
	if update.Password != nil {
		hashed, err := auth.HashPassword(*update.Password)
		if err != nil {
			return err
		}
		user.PasswordHash = hashed
	}

	return uc.UserRepo.Update(user)
}
