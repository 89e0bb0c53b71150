package models

import (
	"time"
)

type User struct {
	ID           string    `json:"id" bson:"_id"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// Identity - проверенный владелец токена
type Identity struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
}

// LoginResult - выпущенный токен и его владелец
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}
