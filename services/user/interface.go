package user

import (
	userRepo "weddify/database/repository/user"
	"weddify/models"
)

// UserService defines account and profile operations.
type UserService interface {
	Register(req models.UserRegistrationData) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(user models.User) (*models.User, error)
	DeleteUser(id string) error
	RevokeAuthToken(id string) error
	UpdatePassword(id, currentPassword, newPassword string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
