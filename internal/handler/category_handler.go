package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quizbank/internal/handler/dto"
	"github.com/yourusername/quizbank/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
	questionService *service.QuestionService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(
	categoryService *service.CategoryService,
	questionService *service.QuestionService,
) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
	}
}

// GetCategories возвращает индекс всех категорий
// GET /categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	index, err := h.categoryService.GetCategoryIndex()
	if err != nil {
		handleServiceError(c, err, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.CategoriesResponse{
		Success:    true,
		Categories: index,
	})
}

// GetQuestionsByCategory возвращает вопросы одной категории
// GET /categories/:id/questions
func (h *CategoryHandler) GetQuestionsByCategory(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint) // Получаем из контекста

	questions, err := h.questionService.ByCategory(categoryID)
	if err != nil {
		handleServiceError(c, err, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.CategoryQuestionsResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: categoryID,
	})
}
