package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quizbank/internal/handler/dto"
	"github.com/yourusername/quizbank/internal/service"
)

// allCategoriesSentinel — историческое значение поля type, которым клиент
// обозначает игру по всем категориям
const allCategoriesSentinel = "click"

// QuizHandler обрабатывает запросы раунда викторины
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// QuizCategoryPayload — категория в формате клиента
type QuizCategoryPayload struct {
	ID   uint   `json:"id"`
	Type string `json:"type"`
}

// PlayQuizRequest представляет запрос следующего вопроса раунда.
// Оба поля обязательны; отсутствие любого из них — 422.
type PlayQuizRequest struct {
	QuizCategory      *QuizCategoryPayload `json:"quiz_category"`
	PreviousQuestions *[]uint              `json:"previous_questions"`
}

// Scope переводит клиентский формат категории в явную область отбора
func (r *PlayQuizRequest) Scope() service.Scope {
	if r.QuizCategory.Type == allCategoriesSentinel {
		return service.ScopeAll()
	}
	return service.ScopeCategory(r.QuizCategory.ID)
}

// PlayQuiz возвращает случайный еще не заданный вопрос области
// POST /quizzes
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req PlayQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest)
		return
	}

	if req.QuizCategory == nil || req.PreviousQuestions == nil {
		RespondError(c, http.StatusUnprocessableEntity)
		return
	}

	question, err := h.quizService.NextQuestion(req.Scope(), *req.PreviousQuestions)
	if err != nil {
		handleServiceError(c, err, http.StatusUnprocessableEntity)
		return
	}

	// question == nil — пул исчерпан, раунд окончен; это успешный ответ
	c.JSON(http.StatusOK, dto.QuizResponse{
		Success:  true,
		Question: question,
	})
}
