package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

// CategoryRef - пользовательский тип для ссылки вопроса на категорию.
// Историческая схема хранит ссылку текстом, поэтому в колонке может лежать
// и "2", и " 2 ", и "02". Сравнение всегда идет по нормализованной форме.
type CategoryRef string

// NewCategoryRef создает ссылку на категорию по числовому ID
func NewCategoryRef(id uint) CategoryRef {
	return CategoryRef(strconv.FormatUint(uint64(id), 10))
}

// Normalized возвращает каноническую форму ссылки: для числовых значений —
// десятичная запись без ведущих нулей и пробелов, иначе — обрезанный текст.
func (c CategoryRef) Normalized() CategoryRef {
	s := strings.TrimSpace(string(c))
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		return CategoryRef(strconv.FormatUint(n, 10))
	}
	return CategoryRef(s)
}

// Matches проверяет, ссылается ли значение на категорию с данным ID
func (c CategoryRef) Matches(id uint) bool {
	return c.Normalized() == NewCategoryRef(id)
}

// MarshalJSON сериализует числовые ссылки числом, остальные — строкой.
// Клиент исторически ожидает category: 2, а не category: "2".
func (c CategoryRef) MarshalJSON() ([]byte, error) {
	s := string(c.Normalized())
	if _, err := strconv.ParseUint(s, 10, 32); err == nil {
		return []byte(s), nil
	}
	return json.Marshal(s)
}

// UnmarshalJSON принимает и число, и строку
func (c *CategoryRef) UnmarshalJSON(data []byte) error {
	var n uint64
	if err := json.Unmarshal(data, &n); err == nil {
		*c = CategoryRef(strconv.FormatUint(n, 10))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.New("category must be a number or a string")
	}
	*c = CategoryRef(s).Normalized()
	return nil
}

// Scan реализует интерфейс sql.Scanner для CategoryRef
func (c *CategoryRef) Scan(value interface{}) error {
	if value == nil {
		*c = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*c = CategoryRef(v)
	case []byte:
		*c = CategoryRef(string(v))
	case int64:
		*c = CategoryRef(strconv.FormatInt(v, 10))
	default:
		return errors.New("failed to scan category ref: unsupported column type")
	}
	return nil
}

// Value реализует интерфейс driver.Valuer для CategoryRef
func (c CategoryRef) Value() (driver.Value, error) {
	return string(c.Normalized()), nil
}

// Question представляет вопрос викторины
type Question struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	Text       string      `gorm:"column:question;size:1000;not null" json:"question"`
	Answer     string      `gorm:"size:500;not null" json:"answer"`
	Category   CategoryRef `gorm:"size:64;not null;index" json:"category"`
	Difficulty int         `gorm:"not null" json:"difficulty"`
	CreatedAt  time.Time   `json:"-"`
	UpdatedAt  time.Time   `json:"-"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// InCategory проверяет, относится ли вопрос к категории с данным ID
func (q *Question) InCategory(categoryID uint) bool {
	return q.Category.Matches(categoryID)
}

// ContainsText проверяет, содержит ли текст вопроса подстроку term
// без учета регистра. Пустой term здесь не считается совпадением:
// отбрасывать пустые запросы обязан вызывающий код.
func (q *Question) ContainsText(term string) bool {
	if term == "" {
		return false
	}
	return strings.Contains(strings.ToLower(q.Text), strings.ToLower(term))
}
