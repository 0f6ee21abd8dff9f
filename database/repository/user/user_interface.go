package userRepo

import (
	"weddify/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by email address. Returns (nil, nil) when absent.
	GetByEmail(email string) (*models.User, error)
	// GetByIDWithProjection retrieves a user by ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// UpdateWithDocument patches a user document with the specified update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// AppendNotification pushes a notification onto the user's embedded list.
	AppendNotification(id string, n models.Notification) error
}
