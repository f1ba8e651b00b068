package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quizbank/internal/handler/dto"
	apperrors "github.com/yourusername/quizbank/internal/pkg/errors"
)

// Тексты сообщений фиксированы контрактом API и не несут внутренних деталей
var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
}

// RespondError отправляет тело ошибки единого формата
func RespondError(c *gin.Context, status int) {
	message, ok := errorMessages[status]
	if !ok {
		message = http.StatusText(status)
	}
	c.JSON(status, dto.ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// AbortError отправляет тело ошибки и прерывает цепочку middleware
func AbortError(c *gin.Context, status int) {
	RespondError(c, status)
	c.Abort()
}

// handleServiceError отображает типизированные ошибки сервисного слоя на
// HTTP-статусы. fallback — осознанный catch-all границы для ошибок без
// типа (например, отказ чтения из хранилища): исторически GET-маршруты
// отвечают 404, маршруты записи — 422.
func handleServiceError(c *gin.Context, err error, fallback int) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		RespondError(c, http.StatusNotFound)
	case errors.Is(err, apperrors.ErrValidation):
		RespondError(c, http.StatusUnprocessableEntity)
	case errors.Is(err, apperrors.ErrPersistence):
		RespondError(c, http.StatusUnprocessableEntity)
	default:
		log.Printf("[Handler] Необработанная ошибка сервиса: %v", err)
		RespondError(c, fallback)
	}
}

// NoRoute обрабатывает запросы к несуществующим маршрутам
func NoRoute(c *gin.Context) {
	RespondError(c, http.StatusNotFound)
}

// NoMethod обрабатывает неподдерживаемые HTTP-методы на известных маршрутах
func NoMethod(c *gin.Context) {
	RespondError(c, http.StatusMethodNotAllowed)
}
