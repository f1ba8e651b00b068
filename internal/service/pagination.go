package service

import (
	"github.com/yourusername/quizbank/internal/domain/entity"
)

// QuestionsPerPage — фиксированный размер страницы списка вопросов
const QuestionsPerPage = 10

// PaginateQuestions возвращает страницу page (нумерация с 1) из упорядоченной
// коллекции вопросов. Страница за пределами коллекции — пустой срез, это
// легитимный результат: границе HTTP решать, считать ли его 404.
// Чистая функция без побочных эффектов.
func PaginateQuestions(page int, items []entity.Question) []entity.Question {
	if page < 1 {
		page = 1
	}

	start := (page - 1) * QuestionsPerPage
	if start >= len(items) {
		return []entity.Question{}
	}

	end := start + QuestionsPerPage
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
