package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// The web client reads failures from the "error" field, so error payloads
// keep that shape instead of a full status envelope.
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrCountryRequired):
		RespondError(c, http.StatusBadRequest, "Country is required")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, ErrUsernameTaken):
		RespondError(c, http.StatusBadRequest, "Username already taken")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrInvalidGoogleToken):
		RespondError(c, http.StatusUnauthorized, "Invalid Google token")
	case errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrLLMFailure):
		log.Printf("LLM error: %v", err)
		RespondError(c, http.StatusBadGateway, "Failed to generate a response, please try again")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
