package v1

import (
	"time"
)

// CreateFacilityRequest DTO для регистрации объекта
// @Description DTO для регистрации объекта
type CreateFacilityRequest struct {
	Name    string   `json:"name" example:"City Hospital"`
	Address string   `json:"address" example:"1 Main St"`
	Type    string   `json:"type" example:"hospital" enums:"hospital,police,restaurant,repair,toilet,other"`
	Notes   string   `json:"notes,omitempty" example:"Ramp at the side entrance"`
	Lat     *float64 `json:"lat" example:"40.7128"`
	Lng     *float64 `json:"lng" example:"-74.006"`
}

// FeedbackRequest DTO для оценки объекта
// @Description DTO для оценки объекта
type FeedbackRequest struct {
	Rating   *float64 `json:"rating" example:"4"`
	Feedback string   `json:"feedback,omitempty" example:"Wide doors, accessible toilet"`
}

// CredentialsRequest DTO для регистрации и входа
// @Description DTO для регистрации и входа
type CredentialsRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"wheels123"`
}

// LocationResponse DTO координат
type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FacilityResponse DTO для ответа с информацией об объекте
// @Description DTO для ответа с информацией об объекте
type FacilityResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Type          string           `json:"type"`
	Location      LocationResponse `json:"location"`
	Address       string           `json:"address"`
	Notes         string           `json:"notes"`
	Accessible    bool             `json:"accessible"`
	RatingValues  []int            `json:"ratingValues"`
	AverageRating float64          `json:"averageRating"`
	OwnerID       string           `json:"ownerId"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// RankedFacilityResponse - объект с расстоянием до наблюдателя, null если неизвестно
// @Description Объект с расстоянием до наблюдателя
type RankedFacilityResponse struct {
	FacilityResponse
	DistanceKm *float64 `json:"distanceKm"`
}

// UserResponse DTO пользователя без пароля
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// RegisterResponse DTO для ответа на регистрацию
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// LoginResponse DTO для ответа на вход
type LoginResponse struct {
	Message   string       `json:"message"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	Facilities    int            `json:"facilities"`
	Ratings       int            `json:"ratings"`
	AverageRating float64        `json:"averageRating"`
	ByType        map[string]int `json:"byType"`
}

// ErrorResponse - тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}
