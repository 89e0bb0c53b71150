package models

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/wheelmate/internal/apperror"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// В сообщениях используем имена полей из JSON
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FacilityInput - данные для регистрации объекта.
// Координаты - указатели: отсутствие и ноль различаются.
type FacilityInput struct {
	Name    string   `json:"name" validate:"required,max=200"`
	Address string   `json:"address" validate:"required,max=500"`
	Type    string   `json:"type" validate:"required,oneof=hospital police restaurant repair toilet other"`
	Notes   string   `json:"notes" validate:"max=2000"`
	Lat     *float64 `json:"lat" validate:"required,latitude"`
	Lng     *float64 `json:"lng" validate:"required,longitude"`
}

// Normalize убирает пробелы по краям текстовых полей
func (in *FacilityInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	in.Type = strings.TrimSpace(in.Type)
	in.Notes = strings.TrimSpace(in.Notes)
}

// Validate нормализует ввод и проверяет его
func (in *FacilityInput) Validate() error {
	in.Normalize()
	if err := validate.Struct(in); err != nil {
		return apperror.NewValidation(validationMessage(err))
	}
	return nil
}

// RatingInput - оценка объекта с необязательным отзывом
type RatingInput struct {
	Rating   *float64 `json:"rating"`
	Feedback string   `json:"feedback"`
}

// Validate возвращает целую оценку из [1,5].
// Тип и диапазон проверяются раньше наличия, поэтому 0 - это "вне диапазона", а не "нет значения".
func (in RatingInput) Validate() (int, error) {
	if in.Rating != nil {
		r := *in.Rating
		if math.IsNaN(r) || math.IsInf(r, 0) || r != math.Trunc(r) {
			return 0, apperror.NewValidation("rating must be a whole number between 1 and 5")
		}
		if r < 1 || r > 5 {
			return 0, apperror.NewValidation("rating must be between 1 and 5")
		}
		return int(r), nil
	}
	return 0, apperror.NewValidation("rating is required")
}

type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// maxPasswordBytes - предел bcrypt, считается в байтах, а не в символах
const maxPasswordBytes = 72

func (in *RegisterInput) Validate() error {
	in.Username = strings.TrimSpace(in.Username)
	if err := validate.Struct(in); err != nil {
		return apperror.NewValidation(validationMessage(err))
	}
	if len(in.Password) > maxPasswordBytes {
		return apperror.NewValidation(fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes))
	}
	return nil
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (in *LoginInput) Validate() error {
	in.Username = strings.TrimSpace(in.Username)
	if err := validate.Struct(in); err != nil {
		return apperror.NewValidation(validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", ")))
		case "latitude":
			msgs = append(msgs, fmt.Sprintf("%s must be a latitude between -90 and 90", field))
		case "longitude":
			msgs = append(msgs, fmt.Sprintf("%s must be a longitude between -180 and 180", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}
