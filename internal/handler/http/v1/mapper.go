package v1

import (
	"fmt"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/shenikar/wheelmate/internal/models"
	"github.com/shenikar/wheelmate/internal/ranking"
)

// DTOToFacilityInput преобразует DTO создания во входные данные сервиса
func DTOToFacilityInput(dto CreateFacilityRequest) models.FacilityInput {
	return models.FacilityInput{
		Name:    dto.Name,
		Address: dto.Address,
		Type:    dto.Type,
		Notes:   dto.Notes,
		Lat:     dto.Lat,
		Lng:     dto.Lng,
	}
}

// ModelToFacilityResponse преобразует доменную модель в DTO для ответа
func ModelToFacilityResponse(model *models.Facility) FacilityResponse {
	ratings := model.RatingValues
	if ratings == nil {
		ratings = []int{}
	}
	return FacilityResponse{
		ID:            model.ID,
		Name:          model.Name,
		Type:          string(model.Type),
		Location:      LocationResponse{Lat: model.Location.Lat, Lng: model.Location.Lng},
		Address:       model.Address,
		Notes:         model.Notes,
		Accessible:    model.Accessible,
		RatingValues:  ratings,
		AverageRating: model.AverageRating,
		OwnerID:       model.OwnerID,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

// ModelsToFacilityResponses преобразует слайс моделей в слайс DTO
func ModelsToFacilityResponses(facilities []*models.Facility) []FacilityResponse {
	responses := make([]FacilityResponse, len(facilities))
	for i, f := range facilities {
		responses[i] = ModelToFacilityResponse(f)
	}
	return responses
}

func RankedToResponse(r ranking.Ranked) RankedFacilityResponse {
	return RankedFacilityResponse{
		FacilityResponse: ModelToFacilityResponse(r.Facility),
		DistanceKm:       r.DistanceKm,
	}
}

func RankedToResponses(ranked []ranking.Ranked) []RankedFacilityResponse {
	responses := make([]RankedFacilityResponse, len(ranked))
	for i, r := range ranked {
		responses[i] = RankedToResponse(r)
	}
	return responses
}

func UserToResponse(user *models.User) UserResponse {
	return UserResponse{ID: user.ID, Username: user.Username}
}

func SummaryToStatsResponse(s ranking.Summary) StatsResponse {
	byType := make(map[string]int, len(s.ByType))
	for t, n := range s.ByType {
		byType[string(t)] = n
	}
	return StatsResponse{
		Facilities:    s.Facilities,
		Ratings:       s.Ratings,
		AverageRating: s.AverageRating,
		ByType:        byType,
	}
}

// FacilitiesToGeoJSON собирает FeatureCollection с точками в порядке (lng, lat)
func FacilitiesToGeoJSON(facilities []*models.Facility) ([]byte, error) {
	fc := geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(facilities))}
	for _, f := range facilities {
		point, err := geom.NewPoint(geom.XY).SetCoords(geom.Coord{f.Location.Lng, f.Location.Lat})
		if err != nil {
			return nil, fmt.Errorf("failed to build point for facility %s: %w", f.ID, err)
		}
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       f.ID,
			Geometry: point,
			Properties: map[string]interface{}{
				"name":          f.Name,
				"type":          string(f.Type),
				"address":       f.Address,
				"accessible":    f.Accessible,
				"averageRating": f.AverageRating,
				"ratingCount":   len(f.RatingValues),
			},
		})
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal geojson: %w", err)
	}
	return data, nil
}
