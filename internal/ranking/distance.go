package ranking

import (
	"math"

	"github.com/shenikar/wheelmate/internal/models"
)

const earthRadiusKm = 6371.0

// Distance вычисляет расстояние по дуге большого круга между двумя точками в километрах
func Distance(a, b models.Location) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// погрешность округления может вывести h за [0,1]
	h = math.Min(1, math.Max(0, h))

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// ValidLocation проверяет, что координаты конечны и в географических границах
func ValidLocation(l models.Location) bool {
	if math.IsNaN(l.Lat) || math.IsNaN(l.Lng) || math.IsInf(l.Lat, 0) || math.IsInf(l.Lng, 0) {
		return false
	}
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
