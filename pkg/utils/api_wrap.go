package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors to HTTP responses.
// Anything unrecognized is a 500; the stringified error rides in the
// payload so the client can surface it.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrCountryNotFound),
		errors.Is(err, ErrDestinationNotFound),
		errors.Is(err, ErrHotelNotFound),
		errors.Is(err, ErrAttractionNotFound),
		errors.Is(err, ErrTripNotFound),
		errors.Is(err, ErrBudgetNotFound),
		errors.Is(err, ErrTourGuideNotFound),
		errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, humanize(err))
	case errors.Is(err, ErrDestinationRequired):
		RespondError(c, http.StatusBadRequest, "Destination ID is required")
	case errors.Is(err, ErrStartDateRequired):
		RespondError(c, http.StatusBadRequest, "Start date is required")
	case errors.Is(err, ErrBudgetRequired):
		RespondError(c, http.StatusBadRequest, "Budget is required")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	default:
		log.Printf("Unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
			Error:   err.Error(),
			TraceID: traceID(c),
		})
	}
}

func humanize(err error) string {
	switch {
	case errors.Is(err, ErrCountryNotFound):
		return "Country not found"
	case errors.Is(err, ErrDestinationNotFound):
		return "Destination not found"
	case errors.Is(err, ErrHotelNotFound):
		return "Hotel not found"
	case errors.Is(err, ErrAttractionNotFound):
		return "Attraction not found"
	case errors.Is(err, ErrTripNotFound):
		return "Trip not found"
	case errors.Is(err, ErrBudgetNotFound):
		return "Budget allocation not found"
	case errors.Is(err, ErrTourGuideNotFound):
		return "Tour guide not found"
	case errors.Is(err, ErrAccountNotFound):
		return "Account not found"
	}
	return err.Error()
}
