package httperr

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

var statusByCode = map[string]int{
	CodeInvalidInput:      http.StatusBadRequest,
	CodeUnauthorized:      http.StatusUnauthorized,
	CodeForbidden:         http.StatusForbidden,
	CodeNotFound:          http.StatusNotFound,
	CodeSlotNotAvailable:  http.StatusBadRequest,
	CodeSlotAlreadyBooked: http.StatusConflict,
	CodeUnavailable:       http.StatusInternalServerError,
}

var messageByCode = map[string]string{
	CodeInvalidInput:      "Nieprawidłowe dane",
	CodeUnauthorized:      "Brak tokenu autoryzacji",
	CodeForbidden:         "Brak uprawnień",
	CodeNotFound:          "Nie znaleziono",
	CodeSlotNotAvailable:  "Ten termin nie jest dostępny",
	CodeSlotAlreadyBooked: "Ten termin został już zarezerwowany",
	CodeUnavailable:       "Błąd serwera",
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{Success: false, Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Write(c, http.StatusConflict, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Write(c, http.StatusForbidden, message)
}

// WriteError maps a business error to its fixed HTTP status and message.
// Anything else is an unexpected storage failure: log it, answer 500.
func WriteError(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		status, ok := statusByCode[be.Code]
		if !ok {
			status = http.StatusInternalServerError
		}
		msg := be.Message
		if msg == "" {
			msg = messageByCode[be.Code]
		}
		Write(c, status, msg)
		return
	}

	log.Printf("unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	Internal(c, messageByCode[CodeUnavailable])
}
