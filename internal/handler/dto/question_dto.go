package dto

import (
	"github.com/yourusername/quizbank/internal/domain/entity"
)

// CategoriesResponse — ответ на GET /categories
type CategoriesResponse struct {
	Success    bool            `json:"success"`
	Categories map[uint]string `json:"categories"`
}

// QuestionListResponse — ответ на GET /questions
type QuestionListResponse struct {
	Success        bool              `json:"success"`
	Questions      []entity.Question `json:"questions"`
	Categories     map[uint]string   `json:"categories"`
	TotalQuestions int               `json:"total_questions"`
}

// SearchResponse — ответ на POST /questions/search.
// Исторический формат: здесь ключи в camelCase, а currentCategory всегда null.
type SearchResponse struct {
	Success         bool              `json:"success"`
	Questions       []entity.Question `json:"questions"`
	TotalQuestions  int               `json:"totalQuestions"`
	CurrentCategory *uint             `json:"currentCategory"`
}

// CategoryQuestionsResponse — ответ на GET /categories/:id/questions
type CategoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []entity.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory uint              `json:"current_category"`
}

// CreatedResponse — ответ на POST /questions
type CreatedResponse struct {
	Success bool `json:"success"`
	Created uint `json:"created"`
}

// DeletedResponse — ответ на DELETE /questions/:id
type DeletedResponse struct {
	Success bool `json:"success"`
	Deleted uint `json:"deleted"`
}

// BulkCreatedResponse — ответ на POST /questions/bulk
type BulkCreatedResponse struct {
	Success bool `json:"success"`
	Created int  `json:"created"`
}

// QuizResponse — ответ на POST /quizzes.
// question == null означает, что пул области исчерпан.
type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *entity.Question `json:"question"`
}

// ErrorResponse — единый формат тела ошибки для 400/404/405/422
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}
