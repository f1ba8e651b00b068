package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginateQuestions_SecondPage(t *testing.T) {
	// Arrange: 15 вопросов с ID 1..15
	items := makeQuestions(15)

	// Act
	page := PaginateQuestions(2, items)

	// Assert: вторая страница — ID 11..15
	require.Len(t, page, 5, "на второй странице из 15 элементов должно быть 5")
	for i, q := range page {
		assert.Equal(t, uint(11+i), q.ID)
	}
}

func TestPaginateQuestions_PageSizeLimit(t *testing.T) {
	items := makeQuestions(35)

	for page := 1; page <= 4; page++ {
		got := PaginateQuestions(page, items)
		assert.LessOrEqual(t, len(got), QuestionsPerPage,
			"страница %d не должна превышать %d элементов", page, QuestionsPerPage)
	}
}

func TestPaginateQuestions_BeyondEnd(t *testing.T) {
	items := makeQuestions(15)

	// Страница далеко за пределами коллекции — пустой срез, не ошибка
	assert.Empty(t, PaginateQuestions(9000, items))
	assert.Empty(t, PaginateQuestions(3, items), "16-я позиция не существует")
}

func TestPaginateQuestions_EmptyCollection(t *testing.T) {
	assert.Empty(t, PaginateQuestions(1, nil))
}

func TestPaginateQuestions_NonPositivePage(t *testing.T) {
	items := makeQuestions(5)

	// Нулевая и отрицательная страницы трактуются как первая
	assert.Equal(t, items, PaginateQuestions(0, items))
	assert.Equal(t, items, PaginateQuestions(-3, items))
}

func TestPaginateQuestions_CoversAllWithoutDuplicates(t *testing.T) {
	// Arrange
	const total = 42
	items := makeQuestions(total)

	// Act: собираем все страницы подряд
	seen := make(map[uint]int)
	collected := 0
	for page := 1; ; page++ {
		got := PaginateQuestions(page, items)
		if len(got) == 0 {
			break
		}
		for _, q := range got {
			seen[q.ID]++
			collected++
		}
	}

	// Assert: конкатенация страниц покрывает коллекцию без дубликатов
	require.Equal(t, total, collected)
	for id, count := range seen {
		assert.Equal(t, 1, count, "вопрос %d должен встретиться ровно один раз", id)
	}
}
