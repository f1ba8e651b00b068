package service

import (
	"fmt"
	"strings"

	"github.com/yourusername/quizbank/internal/domain/entity"
	"github.com/yourusername/quizbank/internal/domain/repository"
	apperrors "github.com/yourusername/quizbank/internal/pkg/errors"
)

// QuestionService предоставляет методы для работы с банком вопросов
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
	}
}

// SearchQuestions отбирает вопросы, текст которых содержит term без учета
// регистра. Порядок исходной коллекции сохраняется. Пустой term — ошибка
// вызывающего кода, см. Search.
func SearchQuestions(term string, all []entity.Question) []entity.Question {
	matched := make([]entity.Question, 0)
	for _, q := range all {
		if q.ContainsText(term) {
			matched = append(matched, q)
		}
	}
	return matched
}

// FilterByCategory отбирает вопросы категории categoryID. Сравнение идет по
// нормализованной форме ссылки: в колонке может лежать и "2", и "02".
func FilterByCategory(categoryID uint, all []entity.Question) []entity.Question {
	matched := make([]entity.Question, 0)
	for _, q := range all {
		if q.InCategory(categoryID) {
			matched = append(matched, q)
		}
	}
	return matched
}

// QuestionPage — страница списка вопросов вместе с индексом категорий
type QuestionPage struct {
	Questions  []entity.Question
	Categories map[uint]string
	Total      int
}

// ListPage возвращает страницу page банка вопросов. Страница без единого
// вопроса и пустой набор категорий считаются отсутствующим ресурсом.
func (s *QuestionService) ListPage(page int) (*QuestionPage, error) {
	all, err := s.questionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	selected := PaginateQuestions(page, all)
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: page %d is empty", apperrors.ErrNotFound, page)
	}

	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no categories exist", apperrors.ErrNotFound)
	}

	return &QuestionPage{
		Questions:  selected,
		Categories: BuildCategoryIndex(categories),
		Total:      len(all),
	}, nil
}

// Search возвращает вопросы, содержащие term в тексте.
// Пустой term отклоняется до обращения к хранилищу; ноль совпадений —
// отдельный исход (ErrNotFound), а не ошибка валидации.
func (s *QuestionService) Search(term string) ([]entity.Question, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("%w: search term is empty", apperrors.ErrValidation)
	}

	all, err := s.questionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	matched := SearchQuestions(term, all)
	if len(matched) == 0 {
		return nil, fmt.Errorf("%w: no questions match %q", apperrors.ErrNotFound, term)
	}

	return matched, nil
}

// ByCategory возвращает вопросы категории categoryID.
// Существование самой категории здесь не проверяется: пустой результат
// неотличим для клиента от несуществующей категории и оба дают 404.
func (s *QuestionService) ByCategory(categoryID uint) ([]entity.Question, error) {
	all, err := s.questionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	matched := FilterByCategory(categoryID, all)
	if len(matched) == 0 {
		return nil, fmt.Errorf("%w: no questions in category %d", apperrors.ErrNotFound, categoryID)
	}

	return matched, nil
}

// Create валидирует и сохраняет новый вопрос
func (s *QuestionService) Create(question *entity.Question) error {
	if err := validateQuestion(question); err != nil {
		return err
	}

	if err := s.questionRepo.Create(question); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	return nil
}

// CreateBatch валидирует и сохраняет пакет вопросов в одной транзакции.
// Пакет атомарен: при любой ошибке не сохраняется ни один вопрос.
func (s *QuestionService) CreateBatch(questions []entity.Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("%w: empty batch", apperrors.ErrValidation)
	}
	for i := range questions {
		if err := validateQuestion(&questions[i]); err != nil {
			return fmt.Errorf("question #%d: %w", i+1, err)
		}
	}

	if err := s.questionRepo.CreateBatch(questions); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	return nil
}

// Delete удаляет вопрос по ID. Несуществующий ID — ErrNotFound,
// отказ хранилища при самом удалении — ErrPersistence.
func (s *QuestionService) Delete(id uint) error {
	if _, err := s.questionRepo.GetByID(id); err != nil {
		return err
	}

	if err := s.questionRepo.Delete(id); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	return nil
}

// All возвращает весь банк вопросов вместе с индексом категорий (для экспорта)
func (s *QuestionService) All() ([]entity.Question, map[uint]string, error) {
	all, err := s.questionRepo.GetAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load questions: %w", err)
	}

	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load categories: %w", err)
	}

	return all, BuildCategoryIndex(categories), nil
}

// validateQuestion проверяет обязательные поля вопроса
func validateQuestion(q *entity.Question) error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: question text is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(q.Answer) == "" {
		return fmt.Errorf("%w: answer is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(string(q.Category)) == "" {
		return fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}
	if q.Difficulty < 1 || q.Difficulty > 5 {
		return fmt.Errorf("%w: difficulty must be between 1 and 5", apperrors.ErrValidation)
	}
	return nil
}
