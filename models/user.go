package models

import "time"

type User struct {
	ID            string         `bson:"id" json:"id"`
	Username      string         `bson:"username" json:"username"`
	Email         string         `bson:"email" json:"email"`
	PhoneNumber   string         `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	Role          string         `bson:"role" json:"role"` // "user" or "admin"
	Security      Security       `bson:"security" json:"security,omitzero"`
	ProfileImage  string         `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	City          string         `bson:"city,omitempty" json:"city,omitempty"`
	WeddingDate   string         `bson:"weddingDate,omitempty" json:"weddingDate,omitempty"` // "YYYY-MM-DD"
	FCMToken      string         `bson:"fcmToken,omitempty" json:"-"`
	Notifications []Notification `bson:"notifications" json:"notifications,omitempty"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// UserRegistrationData carries the fields required to create an account.
type UserRegistrationData struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	City        string `json:"city,omitempty"`
}
