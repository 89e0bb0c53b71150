package v1

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/wheelmate/internal/apperror"
	"github.com/shenikar/wheelmate/internal/config"
	"github.com/shenikar/wheelmate/internal/models"
	"github.com/shenikar/wheelmate/internal/ranking"
	"github.com/shenikar/wheelmate/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	defaultNearbyRadiusKm = 5.0
	defaultNearbyLimit    = 3

	// клиент передает это значение, когда геолокация недоступна
	locationUnavailable = "unavailable"
)

type Handler struct {
	facilityService service.FacilityService
	authService     service.AuthService
	logger          *logrus.Logger
	cfg             *config.Config
}

func NewHandler(facilityService service.FacilityService, authService service.AuthService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		facilityService: facilityService,
		authService:     authService,
		logger:          logger,
		cfg:             cfg,
	}
}

// @Summary Register a new facility
// @Description Register an accessible facility. Requires a bearer token.
// @Tags Facilities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param facility body CreateFacilityRequest true "Facility registration request"
// @Success 201 {object} FacilityResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /facilities [post]
func (h *Handler) createFacility(c *gin.Context) {
	var input CreateFacilityRequest
	log := h.logger.WithField("method", "createFacility")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		h.respondError(c, log, apperror.NewValidation("invalid request body"))
		return
	}

	facility, err := h.facilityService.CreateFacility(c.Request.Context(), DTOToFacilityInput(input), c.GetString(ctxUserID))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToFacilityResponse(facility))
}

// @Summary Get a list of facilities
// @Description Get all facilities, newest first
// @Tags Facilities
// @Produce json
// @Success 200 {array} FacilityResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /facilities [get]
func (h *Handler) listFacilities(c *gin.Context) {
	log := h.logger.WithField("method", "listFacilities")

	facilities, err := h.facilityService.ListFacilities(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToFacilityResponses(facilities))
}

// @Summary Get facility by ID
// @Description Get a single facility by its ID
// @Tags Facilities
// @Produce json
// @Param id path string true "Facility ID"
// @Success 200 {object} FacilityResponse
// @Failure 404 {object} ErrorResponse "Facility not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /facilities/{id} [get]
func (h *Handler) getFacility(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getFacility").WithField("id", id)

	facility, err := h.facilityService.GetFacility(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToFacilityResponse(facility))
}

// @Summary Rate a facility
// @Description Submit a whole-number rating from 1 to 5 with optional feedback. Requires a bearer token.
// @Tags Facilities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Facility ID"
// @Param feedback body FeedbackRequest true "Rating request"
// @Success 200 {object} FacilityResponse
// @Failure 400 {object} ErrorResponse "Invalid rating"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Facility not found"
// @Failure 409 {object} ErrorResponse "Concurrent update conflict"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /facilities/{id}/feedback [post]
func (h *Handler) submitFeedback(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "submitFeedback").WithField("id", id)

	var input FeedbackRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		h.respondError(c, log, apperror.NewValidation("rating must be a whole number between 1 and 5"))
		return
	}

	facility, err := h.facilityService.SubmitRating(c.Request.Context(), id, models.RatingInput{
		Rating:   input.Rating,
		Feedback: input.Feedback,
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToFacilityResponse(facility))
}

// @Summary Explore facilities
// @Description Search, filter and sort facilities. Distances are null without a valid lat/lng.
// @Tags Facilities
// @Produce json
// @Param q query string false "Case-insensitive search in name and address"
// @Param category query string false "Facility type or 'all'"
// @Param sort query string false "distance, rating or name"
// @Param lat query number false "Observer latitude"
// @Param lng query number false "Observer longitude"
// @Success 200 {array} RankedFacilityResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /facilities/explore [get]
func (h *Handler) exploreFacilities(c *gin.Context) {
	log := h.logger.WithField("method", "exploreFacilities")

	ranked, err := h.facilityService.ExploreFacilities(c.Request.Context(), ranking.Query{
		Search:   c.Query("q"),
		Category: c.Query("category"),
		SortKey:  c.Query("sort"),
		Observer: parseObserver(c),
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, RankedToResponses(ranked))
}

// @Summary Find the nearest facility of a type
// @Description Emergency lookup of the closest facility of the given type
// @Tags Facilities
// @Produce json
// @Param type query string true "Facility type"
// @Param lat query number true "Observer latitude"
// @Param lng query number true "Observer longitude"
// @Success 200 {object} RankedFacilityResponse
// @Failure 400 {object} ErrorResponse "Location needed or unknown type"
// @Failure 404 {object} ErrorResponse "No facility of this type"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /facilities/nearest [get]
func (h *Handler) nearestFacility(c *gin.Context) {
	facilityType := models.FacilityType(c.Query("type"))
	log := h.logger.WithField("method", "nearestFacility").WithField("type", facilityType)

	nearest, err := h.facilityService.FindNearest(c.Request.Context(), facilityType, parseObserver(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, RankedToResponse(nearest))
}

// @Summary Nearby facilities
// @Description Facilities within a radius, closest first
// @Tags Facilities
// @Produce json
// @Param lat query number true "Observer latitude"
// @Param lng query number true "Observer longitude"
// @Param radius query number false "Radius in km" default(5)
// @Param limit query int false "Maximum number of results" default(3)
// @Success 200 {array} RankedFacilityResponse
// @Failure 400 {object} ErrorResponse "Location needed or invalid radius"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /facilities/nearby [get]
func (h *Handler) nearbyFacilities(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyFacilities")

	radius, err := strconv.ParseFloat(c.DefaultQuery("radius", strconv.FormatFloat(defaultNearbyRadiusKm, 'f', -1, 64)), 64)
	if err != nil || math.IsNaN(radius) || math.IsInf(radius, 0) {
		h.respondError(c, log, apperror.NewValidation("radius must be a finite number"))
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultNearbyLimit)))
	if err != nil || limit < 1 {
		h.respondError(c, log, apperror.NewValidation("limit must be a positive integer"))
		return
	}

	nearby, err := h.facilityService.NearbyFacilities(c.Request.Context(), parseObserver(c), radius, limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, RankedToResponses(nearby))
}

// @Summary Facilities as GeoJSON
// @Description All facilities as a GeoJSON FeatureCollection of points
// @Tags Facilities
// @Produce json
// @Success 200 {object} map[string]interface{} "FeatureCollection"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /facilities/geojson [get]
func (h *Handler) facilitiesGeoJSON(c *gin.Context) {
	log := h.logger.WithField("method", "facilitiesGeoJSON")

	facilities, err := h.facilityService.ListFacilities(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	data, err := FacilitiesToGeoJSON(facilities)
	if err != nil {
		h.respondError(c, log, apperror.NewInternal("could not encode geojson", err))
		return
	}
	c.Data(http.StatusOK, "application/geo+json", data)
}

// @Summary Get facility statistics
// @Description Facility and rating counts for the dashboard
// @Tags Stats
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.facilityService.GetStats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SummaryToStatsResponse(stats))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Root отвечает простой строкой на GET /
func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusOK, "WHEELMATE API is running")
}

// respondError отдает ошибку клиенту. Внутренние детали в ответ не попадают.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	kind := apperror.KindOf(err)
	status := apperror.HTTPStatus(kind)
	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	} else {
		log.WithError(err).Warn("Request rejected")
	}
	c.JSON(status, ErrorResponse{Error: apperror.PublicMessage(err), Kind: string(kind)})
}

// parseObserver возвращает nil, если координаты не заданы или некорректны
func parseObserver(c *gin.Context) *models.Location {
	latStr := strings.TrimSpace(c.Query("lat"))
	lngStr := strings.TrimSpace(c.Query("lng"))
	if latStr == "" || lngStr == "" || latStr == locationUnavailable || lngStr == locationUnavailable {
		return nil
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil
	}

	loc := models.Location{Lat: lat, Lng: lng}
	if !ranking.ValidLocation(loc) {
		return nil
	}
	return &loc
}
