package notification

import (
	"context"
	"fmt"
	"time"

	userRepo "weddify/database/repository/user"
	"weddify/models"
	"weddify/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DefaultNotificationService implements NotificationService.
type DefaultNotificationService struct {
	UserRepo userRepo.UserRepository
}

func (s *DefaultNotificationService) NotifyUser(ctx context.Context, userID string, n models.Notification) error {
	logger := utils.GetLogger()

	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	if err := s.UserRepo.AppendNotification(userID, n); err != nil {
		return fmt.Errorf("failed to record notification for user %s: %w", userID, err)
	}

	// Push delivery is best effort; the recorded notification is the
	// source of truth.
	usr, err := s.UserRepo.GetByIDWithProjection(userID, bson.M{"id": 1, "fcmToken": 1})
	if err != nil || usr == nil || usr.FCMToken == "" {
		return nil
	}

	client := utils.GetFCMClient()
	if client == nil {
		return nil
	}

	msg := &messaging.Message{
		Token: usr.FCMToken,
		Notification: &messaging.Notification{
			Title: n.Type,
			Body:  n.Message,
		},
	}
	if _, err := client.Send(ctx, msg); err != nil {
		logger.Warn("push delivery failed",
			zap.String("userID", userID),
			zap.String("notificationType", n.Type),
			zap.Error(err))
	}
	return nil
}
