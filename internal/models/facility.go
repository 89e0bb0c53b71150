package models

import (
	"time"

	"github.com/google/uuid"
)

// FacilityType - категория объекта
type FacilityType string

const (
	TypeHospital   FacilityType = "hospital"
	TypePolice     FacilityType = "police"
	TypeRestaurant FacilityType = "restaurant"
	TypeRepair     FacilityType = "repair"
	TypeToilet     FacilityType = "toilet"
	TypeOther      FacilityType = "other"
)

// FacilityTypes перечисляет все допустимые категории в порядке отображения
var FacilityTypes = []FacilityType{TypeHospital, TypePolice, TypeRestaurant, TypeRepair, TypeToilet, TypeOther}

// Valid сообщает, входит ли значение в закрытое перечисление
func (t FacilityType) Valid() bool {
	for _, known := range FacilityTypes {
		if t == known {
			return true
		}
	}
	return false
}

type Location struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

type Facility struct {
	ID            string       `json:"id" bson:"_id"`
	Name          string       `json:"name" bson:"name"`
	Type          FacilityType `json:"type" bson:"type"`
	Location      Location     `json:"location" bson:"location"`
	Address       string       `json:"address" bson:"address"`
	Notes         string       `json:"notes" bson:"notes"`
	Accessible    bool         `json:"accessible" bson:"accessible"`
	RatingValues  []int        `json:"ratingValues" bson:"ratingValues"`
	AverageRating float64      `json:"averageRating" bson:"averageRating"`
	OwnerID       string       `json:"ownerId" bson:"ownerId"`
	CreatedAt     time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt" bson:"updatedAt"`
}

// TimestampPrecision - точность меток времени. Mongo хранит миллисекунды,
// поэтому ответ на создание совпадает с тем, что потом вернет список.
const TimestampPrecision = time.Millisecond

// NewFacility собирает новую запись из уже провалидированного ввода
func NewFacility(input FacilityInput, ownerID string, now time.Time) *Facility {
	now = now.UTC().Truncate(TimestampPrecision)
	return &Facility{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Type:          FacilityType(input.Type),
		Location:      Location{Lat: *input.Lat, Lng: *input.Lng},
		Address:       input.Address,
		Notes:         input.Notes,
		Accessible:    true,
		RatingValues:  []int{},
		AverageRating: 0,
		OwnerID:       ownerID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// AddRating добавляет оценку и пересчитывает среднее
func (f *Facility) AddRating(rating int, now time.Time) {
	f.RatingValues = append(f.RatingValues, rating)
	f.AverageRating = AverageRating(f.RatingValues)
	f.UpdatedAt = now.UTC().Truncate(TimestampPrecision)
}

// Clone возвращает глубокую копию записи
func (f *Facility) Clone() *Facility {
	clone := *f
	clone.RatingValues = append(make([]int, 0, len(f.RatingValues)), f.RatingValues...)
	return &clone
}

// AverageRating - среднее арифметическое оценок, 0 для пустого списка
func AverageRating(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
