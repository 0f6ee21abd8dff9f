package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"weddify/config"
	"weddify/models"
	"weddify/services/booking"
	"weddify/services/notification"
	"weddify/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	TypeBookingExpire = "booking:expire"
	TypeReminderSend  = "reminder:send"

	expireSweepInterval = 5 * time.Minute
)

// ReminderPayload is the queued payload for a scheduled user reminder.
type ReminderPayload struct {
	UserID  string `json:"userId"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitBookingWorker runs the async worker in the background and starts
// the periodic enqueue loop for the pending-payment sweep.
func InitBookingWorker(bookingSvc booking.BookingService, notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingExpire, handleExpireTask(bookingSvc))
	mux.HandleFunc(TypeReminderSend, handleReminderTask(notifSvc))

	go func() {
		log.Println("[BookingWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[BookingWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)
				if attempts == maxAttempts {
					log.Fatal("[BookingWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go enqueueExpireSweeps()
}

// enqueueExpireSweeps periodically enqueues an expiry sweep task so the
// worker releases slots of bookings whose payment never settled.
func enqueueExpireSweeps() {
	client := asynq.NewClient(redisOpts())
	defer client.Close()

	ticker := time.NewTicker(expireSweepInterval)
	defer ticker.Stop()

	for range ticker.C {
		task := asynq.NewTask(TypeBookingExpire, nil)
		if _, err := client.Enqueue(task, asynq.MaxRetry(3)); err != nil {
			utils.GetLogger().Error("failed to enqueue booking expiry sweep", zap.Error(err))
		}
	}
}

func handleExpireTask(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		ttl := time.Duration(config.AppConfig.PendingPaymentTTLMins) * time.Minute
		expired, err := bookingSvc.ExpirePendingBookings(ctx, ttl)
		if err != nil {
			utils.GetLogger().Error("booking expiry sweep failed", zap.Error(err))
			return err
		}
		if expired > 0 {
			utils.GetLogger().Info("booking expiry sweep done", zap.Int("expired", expired))
		}
		return nil
	}
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("invalid reminder payload", zap.Error(err))
			return err
		}

		n := models.Notification{
			Type:    "reminder",
			Message: p.Message,
			Data:    map[string]interface{}{"title": p.Title},
		}
		if err := notifSvc.NotifyUser(ctx, p.UserID, n); err != nil {
			utils.GetLogger().Error("failed to deliver reminder",
				zap.String("userID", p.UserID), zap.Error(err))
			return err
		}
		return nil
	}
}

// QueueReminderScheduler adapts the queue client to the booking
// service's reminder dependency.
type QueueReminderScheduler struct{}

func (QueueReminderScheduler) ScheduleReminder(userID, title, message string, fireAt time.Time) error {
	return ScheduleWeddingReminder(userID, title, message, fireAt)
}

// ScheduleWeddingReminder enqueues a reminder that fires at the given time.
func ScheduleWeddingReminder(userID, title, message string, fireAt time.Time) error {
	client := asynq.NewClient(redisOpts())
	defer client.Close()

	payload, err := json.Marshal(ReminderPayload{UserID: userID, Title: title, Message: message})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeReminderSend, payload)
	_, err = client.Enqueue(task, asynq.ProcessAt(fireAt), asynq.MaxRetry(3))
	return err
}
