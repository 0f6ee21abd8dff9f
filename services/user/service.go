package user

import (
	"context"
	"fmt"
	"time"

	"weddify/models"
	"weddify/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const authTokenTTL = 72 * time.Hour

// Register validates basic data, checks for duplicates, hashes the
// password, and creates the account.
func (s *DefaultUserService) Register(req models.UserRegistrationData) (*models.User, error) {
	if req.Email == "" || req.Password == "" || req.Username == "" {
		return nil, fmt.Errorf("username, email and password are required")
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	usr := &models.User{
		ID:          uuid.New().String(),
		Username:    req.Username,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		City:        req.City,
		Role:        "user",
		Security: models.Security{
			PasswordHash: string(hash),
		},
		Notifications: []models.Notification{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.Create(usr); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	usr.Security = models.Security{}
	return usr, nil
}

// Authenticate verifies credentials and issues a fresh JWT. The token
// hash is stored on the record and cached for fast middleware checks.
func (s *DefaultUserService) Authenticate(email, password string) (*models.User, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	if usr == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.Security.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(usr.ID, usr.Role, authTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	updateDoc := bson.M{"$set": bson.M{
		"security.tokenHash": tokenHash,
		"updatedAt":          time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(usr.ID, updateDoc); err != nil {
		return nil, fmt.Errorf("failed to store auth token: %w", err)
	}

	cacheCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	cacheKey := utils.AuthCachePrefix + usr.ID
	if err := utils.GetAuthCacheClient().Set(cacheCtx, cacheKey, tokenHash, time.Hour).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache auth token", zap.Error(err))
	}

	usr.Security = models.Security{Token: token}
	return usr, nil
}

func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, fmt.Errorf("user with id %s not found", id)
	}
	usr.Security = models.Security{}
	return usr, nil
}

func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, fmt.Errorf("user with email %s not found", email)
	}
	usr.Security = models.Security{}
	return usr, nil
}

// UpdateUser patches mutable profile fields only; credentials and
// notifications go through their own paths.
func (s *DefaultUserService) UpdateUser(user models.User) (*models.User, error) {
	updateDoc := bson.M{"$set": bson.M{
		"username":     user.Username,
		"phoneNumber":  user.PhoneNumber,
		"city":         user.City,
		"weddingDate":  user.WeddingDate,
		"profileImage": user.ProfileImage,
		"fcmToken":     user.FCMToken,
		"updatedAt":    time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(user.ID, updateDoc); err != nil {
		return nil, err
	}
	return s.GetUserByID(user.ID)
}

func (s *DefaultUserService) DeleteUser(id string) error {
	return s.Repo.Delete(id)
}

// RevokeAuthToken invalidates the current session everywhere.
func (s *DefaultUserService) RevokeAuthToken(id string) error {
	updateDoc := bson.M{"$set": bson.M{
		"security.tokenHash": "",
		"updatedAt":          time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(id, updateDoc); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+id).Err()
}

func (s *DefaultUserService) UpdatePassword(id, currentPassword, newPassword string) error {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if usr == nil {
		return fmt.Errorf("user with id %s not found", id)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Security.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}
	if len(newPassword) < 8 {
		return fmt.Errorf("new password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	updateDoc := bson.M{"$set": bson.M{
		"security.passwordHash": string(hash),
		"security.tokenHash":    "",
		"updatedAt":             time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(id, updateDoc); err != nil {
		return err
	}
	return s.RevokeAuthToken(id)
}
