package service

import (
	"fmt"
	"math/rand"

	"github.com/yourusername/quizbank/internal/domain/entity"
	"github.com/yourusername/quizbank/internal/domain/repository"
)

// Scope задает область отбора вопросов для раунда викторины:
// либо все категории, либо одна конкретная. Явная замена клиентского
// соглашения type == "click".
type Scope struct {
	all        bool
	categoryID uint
}

// ScopeAll возвращает область "все категории"
func ScopeAll() Scope {
	return Scope{all: true}
}

// ScopeCategory возвращает область одной категории
func ScopeCategory(categoryID uint) Scope {
	return Scope{categoryID: categoryID}
}

// IsAll сообщает, охватывает ли область все категории
func (s Scope) IsAll() bool {
	return s.all
}

// CategoryID возвращает ID категории области (0 для ScopeAll)
func (s Scope) CategoryID() uint {
	if s.all {
		return 0
	}
	return s.categoryID
}

func (s Scope) String() string {
	if s.all {
		return "all"
	}
	return fmt.Sprintf("category:%d", s.categoryID)
}

// QuizService выбирает следующий вопрос раунда викторины
type QuizService struct {
	questionRepo repository.QuestionRepository

	// intN возвращает равномерно распределенное число из [0, n).
	// Подменяется в тестах для детерминированного выбора.
	intN func(n int) int
}

// NewQuizService создает новый сервис викторины
func NewQuizService(questionRepo repository.QuestionRepository) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
		intN:         rand.Intn,
	}
}

// excludeSeen отбрасывает вопросы, ID которых уже встречались в сессии
func excludeSeen(pool []entity.Question, seen []uint) []entity.Question {
	if len(seen) == 0 {
		return pool
	}

	seenSet := make(map[uint]struct{}, len(seen))
	for _, id := range seen {
		seenSet[id] = struct{}{}
	}

	remaining := make([]entity.Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := seenSet[q.ID]; !ok {
			remaining = append(remaining, q)
		}
	}
	return remaining
}

// NextQuestion возвращает случайный вопрос из области scope, не входящий
// в seen. Исчерпанный пул — легитимный финал раунда: возвращается (nil, nil),
// а не ошибка. Индекс берется строго из [0, len(pool)).
func (s *QuizService) NextQuestion(scope Scope, seen []uint) (*entity.Question, error) {
	all, err := s.questionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	pool := all
	if !scope.IsAll() {
		pool = FilterByCategory(scope.CategoryID(), all)
	}
	pool = excludeSeen(pool, seen)

	if len(pool) == 0 {
		return nil, nil
	}

	question := pool[s.intN(len(pool))]
	return &question, nil
}
