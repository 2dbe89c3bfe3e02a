package handler

import (
	"errors"
	"net/http"

	"address-book-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Response is the envelope returned by every address endpoint.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Success: true, Data: data})
}

func respondList(c *gin.Context, addresses []models.Address) {
	count := len(addresses)
	c.JSON(http.StatusOK, Response{Success: true, Count: &count, Data: addresses})
}

func respondMessage(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

func respondBadRequest(c *gin.Context, msg, details string) {
	c.JSON(http.StatusBadRequest, Response{Success: false, Error: msg, Details: details})
}

// respondError maps an error from the service layer onto a status code.
// Server side failures are logged in full and only a generic message is returned.
func respondError(c *gin.Context, err error, op string) {
	logger := zerolog.Ctx(c.Request.Context())

	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		respondBadRequest(c, verr.Message, "")
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, Response{Success: false, Error: "address not found"})
	case errors.Is(err, models.ErrStoreUnavailable):
		logger.Error().Err(err).Str("op", op).Msg("database error")
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "database error occurred"})
	default:
		logger.Error().Err(err).Str("op", op).Msg("unexpected error")
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "internal server error"})
	}
}
