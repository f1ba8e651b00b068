package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/quizbank/internal/domain/entity"
	"github.com/yourusername/quizbank/internal/handler/dto"
	"github.com/yourusername/quizbank/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с банком вопросов
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// ListQuestions возвращает страницу банка вопросов
// GET /questions?page=N
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	// Нечисловой или отсутствующий page трактуется как первая страница,
	// страница за пределами коллекции — как отсутствующий ресурс
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	result, err := h.questionService.ListPage(page)
	if err != nil {
		handleServiceError(c, err, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionListResponse{
		Success:        true,
		Questions:      result.Questions,
		Categories:     result.Categories,
		TotalQuestions: result.Total,
	})
}

// CreateQuestionRequest представляет запрос на создание вопроса.
// Поля-указатели отличают отсутствующее значение от пустого: контракт
// требует 422 на любой null, а не 400.
type CreateQuestionRequest struct {
	Question   *string             `json:"question"`
	Answer     *string             `json:"answer"`
	Category   *entity.CategoryRef `json:"category"`
	Difficulty *int                `json:"difficulty"`
}

// CreateQuestion создает новый вопрос
// POST /questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest)
		return
	}

	if req.Question == nil || req.Answer == nil || req.Category == nil || req.Difficulty == nil {
		RespondError(c, http.StatusUnprocessableEntity)
		return
	}

	question := &entity.Question{
		Text:       *req.Question,
		Answer:     *req.Answer,
		Category:   *req.Category,
		Difficulty: *req.Difficulty,
	}

	if err := h.questionService.Create(question); err != nil {
		handleServiceError(c, err, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, dto.CreatedResponse{
		Success: true,
		Created: question.ID,
	})
}

// DeleteQuestion удаляет вопрос по ID
// DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	if err := h.questionService.Delete(questionID); err != nil {
		handleServiceError(c, err, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, dto.DeletedResponse{
		Success: true,
		Deleted: questionID,
	})
}

// SearchQuestionsRequest представляет запрос поиска по тексту вопроса
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// SearchQuestions возвращает вопросы, содержащие подстроку searchTerm
// POST /questions/search
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest)
		return
	}

	// Пустой запрос отклоняется до вызова поиска: исторически это 404,
	// а не ошибка валидации
	if req.SearchTerm == nil || *req.SearchTerm == "" {
		RespondError(c, http.StatusNotFound)
		return
	}

	questions, err := h.questionService.Search(*req.SearchTerm)
	if err != nil {
		handleServiceError(c, err, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.SearchResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: nil,
	})
}

// BulkCreateQuestionsRequest представляет запрос на пакетную загрузку вопросов
type BulkCreateQuestionsRequest struct {
	Questions []struct {
		Question   string             `json:"question" binding:"required"`
		Answer     string             `json:"answer" binding:"required"`
		Category   entity.CategoryRef `json:"category" binding:"required"`
		Difficulty int                `json:"difficulty" binding:"required,min=1,max=5"`
	} `json:"questions" binding:"required,min=1"`
}

// BulkCreateQuestions загружает пакет вопросов в одной транзакции
// POST /questions/bulk
func (h *QuestionHandler) BulkCreateQuestions(c *gin.Context) {
	var req BulkCreateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusUnprocessableEntity)
		return
	}

	questions := make([]entity.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, entity.Question{
			Text:       q.Question,
			Answer:     q.Answer,
			Category:   q.Category,
			Difficulty: q.Difficulty,
		})
	}

	if err := h.questionService.CreateBatch(questions); err != nil {
		handleServiceError(c, err, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, dto.BulkCreatedResponse{
		Success: true,
		Created: len(questions),
	})
}

// ExportQuestions выгружает весь банк вопросов в CSV или XLSX
// GET /questions/export?format=csv|xlsx
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	questions, index, err := h.questionService.All()
	if err != nil {
		handleServiceError(c, err, http.StatusNotFound)
		return
	}

	filename := fmt.Sprintf("questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, questions, index, filename)
	default:
		h.exportCSV(c, questions, index, filename)
	}
}

// categoryLabel возвращает название категории вопроса или сырую ссылку,
// если категория не числовая либо отсутствует в индексе
func categoryLabel(q *entity.Question, index map[uint]string) string {
	ref := q.Category.Normalized()
	if id, err := strconv.ParseUint(string(ref), 10, 32); err == nil {
		if label, ok := index[uint(id)]; ok {
			return label
		}
	}
	return string(ref)
}

// exportCSV выгружает вопросы в CSV с правильным экранированием спецсимволов
func (h *QuestionHandler) exportCSV(c *gin.Context, questions []entity.Question, index map[uint]string, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	// Используем encoding/csv для правильного экранирования запятых/кавычек
	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"ID", "Question", "Answer", "Category", "Difficulty"})

	for _, q := range questions {
		writer.Write([]string{
			strconv.FormatUint(uint64(q.ID), 10),
			sanitizeForExcel(q.Text),
			sanitizeForExcel(q.Answer),
			sanitizeForExcel(categoryLabel(&q, index)),
			strconv.Itoa(q.Difficulty),
		})
	}
}

// exportXLSX выгружает вопросы в Excel с использованием StreamWriter
func (h *QuestionHandler) exportXLSX(c *gin.Context, questions []entity.Question, index map[uint]string, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Questions"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[QuestionHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	headers := []interface{}{"ID", "Question", "Answer", "Category", "Difficulty"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи заголовков: %v", err)
	}

	for i, q := range questions {
		rowNum := i + 2 // Начинаем со 2 строки (1 — заголовки)
		cell := fmt.Sprintf("A%d", rowNum)

		row := []interface{}{
			q.ID,
			sanitizeForExcel(q.Text),
			sanitizeForExcel(q.Answer),
			sanitizeForExcel(categoryLabel(&q, index)),
			q.Difficulty,
		}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[QuestionHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[QuestionHandler] Ошибка при Flush: %v", err)
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}
