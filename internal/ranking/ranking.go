// Package ranking готовит выдачу объектов: расстояния, поиск и фильтр
// по категории, сортировку и поиск ближайшего.
// Функции чистые и безопасны для параллельного вызова.
package ranking

import (
	"errors"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/shenikar/wheelmate/internal/models"
)

const (
	SortDistance = "distance"
	SortRating   = "rating"
	SortName     = "name"

	CategoryAll = "all"
)

var (
	ErrNoLocation = errors.New("observer location is required")
	ErrNoneFound  = errors.New("no facility of the requested type")
)

// Ranked - объект с расстоянием до наблюдателя. DistanceKm == nil означает "неизвестно".
type Ranked struct {
	*models.Facility
	DistanceKm *float64 `json:"distanceKm"`
}

// Query объединяет параметры выдачи
type Query struct {
	Search   string
	Category string
	SortKey  string
	Observer *models.Location
}

// Apply аннотирует, фильтрует и сортирует список за один вызов
func Apply(facilities []*models.Facility, q Query) []Ranked {
	ranked := AnnotateDistance(facilities, q.Observer)
	ranked = Filter(ranked, q.Search, q.Category)
	return Sort(ranked, q.SortKey)
}

// AnnotateDistance считает расстояние до каждого объекта.
// Без наблюдателя расстояние у всех отсутствует.
func AnnotateDistance(facilities []*models.Facility, observer *models.Location) []Ranked {
	ranked := make([]Ranked, 0, len(facilities))
	for _, f := range facilities {
		r := Ranked{Facility: f}
		if observer != nil {
			d := Distance(*observer, f.Location)
			r.DistanceKm = &d
		}
		ranked = append(ranked, r)
	}
	return ranked
}

// Filter оставляет объекты нужной категории, чьё имя или адрес содержит search
func Filter(ranked []Ranked, search, category string) []Ranked {
	term := strings.ToLower(strings.TrimSpace(search))
	result := make([]Ranked, 0, len(ranked))
	for _, r := range ranked {
		if category != "" && category != CategoryAll && string(r.Type) != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(r.Name), term) &&
			!strings.Contains(strings.ToLower(r.Address), term) {
			continue
		}
		result = append(result, r)
	}
	return result
}

// Sort возвращает стабильно отсортированную копию.
// Неизвестный ключ сохраняет исходный порядок.
func Sort(ranked []Ranked, key string) []Ranked {
	result := slices.Clone(ranked)
	if result == nil {
		result = []Ranked{}
	}

	switch key {
	case SortDistance:
		// объекты без расстояния идут после известных, в исходном порядке
		slices.SortStableFunc(result, func(a, b Ranked) int {
			switch {
			case a.DistanceKm == nil && b.DistanceKm == nil:
				return 0
			case a.DistanceKm == nil:
				return 1
			case b.DistanceKm == nil:
				return -1
			}
			return compareFloat(*a.DistanceKm, *b.DistanceKm)
		})
	case SortRating:
		slices.SortStableFunc(result, func(a, b Ranked) int {
			return compareFloat(b.AverageRating, a.AverageRating)
		})
	case SortName:
		// collate.Collator нельзя делить между горутинами
		c := collate.New(language.English)
		slices.SortStableFunc(result, func(a, b Ranked) int {
			return c.CompareString(a.Name, b.Name)
		})
	}
	return result
}

// FindNearestOfType возвращает ближайший объект типа t.
// При равных расстояниях побеждает первый в списке.
func FindNearestOfType(facilities []*models.Facility, t models.FacilityType, observer *models.Location) (Ranked, error) {
	if observer == nil {
		return Ranked{}, ErrNoLocation
	}

	var (
		best  Ranked
		found bool
	)
	for _, f := range facilities {
		if f.Type != t {
			continue
		}
		d := Distance(*observer, f.Location)
		if !found || d < *best.DistanceKm {
			best = Ranked{Facility: f, DistanceKm: &d}
			found = true
		}
	}
	if !found {
		return Ranked{}, ErrNoneFound
	}
	return best, nil
}

// Nearby возвращает до limit объектов ближе radiusKm, от ближайшего
func Nearby(facilities []*models.Facility, observer *models.Location, radiusKm float64, limit int) []Ranked {
	if observer == nil {
		return []Ranked{}
	}
	within := make([]Ranked, 0)
	for _, r := range AnnotateDistance(facilities, observer) {
		if *r.DistanceKm < radiusKm {
			within = append(within, r)
		}
	}
	within = Sort(within, SortDistance)
	if limit > 0 && len(within) > limit {
		within = within[:limit]
	}
	return within
}

// Summary - сводка для главного экрана
type Summary struct {
	Facilities    int                         `json:"facilities"`
	Ratings       int                         `json:"ratings"`
	AverageRating float64                     `json:"averageRating"`
	ByType        map[models.FacilityType]int `json:"byType"`
}

// Summarize считает объекты, оценки и общее среднее по всем оценкам
func Summarize(facilities []*models.Facility) Summary {
	s := Summary{ByType: make(map[models.FacilityType]int, len(models.FacilityTypes))}
	for _, t := range models.FacilityTypes {
		s.ByType[t] = 0
	}

	sum := 0
	for _, f := range facilities {
		s.Facilities++
		s.ByType[f.Type]++
		s.Ratings += len(f.RatingValues)
		for _, v := range f.RatingValues {
			sum += v
		}
	}
	if s.Ratings > 0 {
		s.AverageRating = float64(sum) / float64(s.Ratings)
	}
	return s
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
