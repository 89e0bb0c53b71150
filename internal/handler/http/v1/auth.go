package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/wheelmate/internal/apperror"
	"github.com/shenikar/wheelmate/internal/models"
	"github.com/shenikar/wheelmate/internal/service"
	"github.com/sirupsen/logrus"
)

// Ключи gin-контекста с данными проверенного пользователя
const (
	ctxUserID   = "userID"
	ctxUsername = "username"
)

// AuthMiddleware - middleware для аутентификации по Bearer-токену
func AuthMiddleware(authService service.AuthService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		}

		if token == "" {
			log.Warn("Token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error: "no token, authorization denied",
				Kind:  string(apperror.KindUnauthorized),
			})
			return
		}

		identity, err := authService.VerifyToken(token)
		if err != nil {
			log.WithError(err).Warn("Invalid token provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error: apperror.PublicMessage(err),
				Kind:  string(apperror.KindUnauthorized),
			})
			return
		}

		c.Set(ctxUserID, identity.UserID)
		c.Set(ctxUsername, identity.Username)
		c.Next()
	}
}

// @Summary Register a user
// @Description Create an account. The username must be unique.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "Username and password"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} ErrorResponse "Validation error or username taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input CredentialsRequest
	log := h.logger.WithField("method", "register")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		h.respondError(c, log, apperror.NewValidation("invalid request body"))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), models.RegisterInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		Message: "user registered successfully",
		User:    UserToResponse(user),
	})
}

// @Summary Log in
// @Description Exchange credentials for a bearer token valid for TOKEN_TTL
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "Username and password"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse "Missing fields"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input CredentialsRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		h.respondError(c, log, apperror.NewValidation("invalid request body"))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), models.LoginInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Message:   "logged in successfully",
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      UserToResponse(result.User),
	})
}
