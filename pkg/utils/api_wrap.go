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
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingDestination):
		RespondError(c, http.StatusBadRequest, "Destination must not be empty")
	case errors.Is(err, ErrInvalidDayCount):
		RespondError(c, http.StatusBadRequest, "Days must be between 1 and 30")
	case errors.Is(err, ErrEmptyCompletion):
		log.Printf("Empty completion: %v", err)
		RespondError(c, http.StatusBadGateway, "The planner returned no content, please try again")
	case errors.Is(err, ErrUpstream):
		log.Printf("Upstream error: %v", err)
		RespondError(c, http.StatusBadGateway, "Travel plan generation failed: "+err.Error())
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
