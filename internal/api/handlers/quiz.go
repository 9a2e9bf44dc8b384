package handlers

import (
	"net/http"
	"strings"
	"time"

	"quizito/internal/engine"
	"quizito/internal/models"

	"github.com/gin-gonic/gin"
)

// GenerateQuizRequest is the body of POST /generate-quiz. Topic and PDFText
// are individually optional but at least one must be present.
type GenerateQuizRequest struct {
	Topic        string `json:"topic"`
	Difficulty   string `json:"difficulty"`
	NumQuestions *int   `json:"numQuestions"`
	QuizType     string `json:"quizType"`
	PDFText      string `json:"pdfText"`
}

// HandleGenerateQuiz generates a complete quiz. The configured LLM is tried
// first; any failure falls back to the deterministic engine.
func (h *Handler) HandleGenerateQuiz(c *gin.Context) {
	var req GenerateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "No data provided")
		return
	}

	topic := strings.TrimSpace(req.Topic)
	if topic == "" && req.PDFText == "" {
		respondError(c, http.StatusBadRequest, "Topic or PDF content is required")
		return
	}

	numQuestions := 10
	if req.NumQuestions != nil {
		numQuestions = *req.NumQuestions
	}
	if numQuestions < 1 || numQuestions > 50 {
		respondError(c, http.StatusBadRequest, "Number of questions must be between 1 and 50")
		return
	}

	difficulty := engine.ParseDifficulty(req.Difficulty)
	quizType := req.QuizType
	if quizType == "" {
		quizType = "multiple-choice"
	}

	h.Log.Info("generating quiz", "topic", topic, "difficulty", difficulty, "numQuestions", numQuestions)

	if h.Generator != nil {
		quiz, err := h.Generator.GenerateQuiz(c.Request.Context(), topic, difficulty, numQuestions, quizType, req.PDFText)
		if err == nil {
			engine.ApplyQuizDefaults(quiz, topic, difficulty, quizType)
			quiz.Metadata["ai_provider"] = "gemini"
			quiz.Metadata["model"] = h.ModelName
			respondOK(c, "Quiz generated with AI", quiz)
			return
		}
		h.Log.Warn("LLM generation failed, using enhanced fallback", "error", err)
	}

	quiz := engine.BuildQuiz(topic, difficulty, numQuestions, quizType, req.PDFText)
	quiz.Metadata["ai_provider"] = "fallback"
	quiz.Metadata["note"] = "AI service unavailable, using enhanced fallback"

	respondOK(c, "Quiz generated with enhanced fallback", &quiz)
}

// EnhanceQuizRequest is the body of POST /enhance-quiz.
type EnhanceQuizRequest struct {
	Quiz            *models.Quiz `json:"quiz" binding:"required"`
	EnhancementType string       `json:"enhancementType"`
}

// HandleEnhanceQuiz applies the requested enhancement mode to an existing
// quiz. Purely deterministic; no LLM involved.
func (h *Handler) HandleEnhanceQuiz(c *gin.Context) {
	var req EnhanceQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Quiz data is required")
		return
	}

	mode := engine.ParseEnhancementMode(req.EnhancementType)
	h.Log.Info("enhancing quiz", "title", req.Quiz.Title, "type", mode)

	enhanced := engine.EnhanceQuiz(*req.Quiz, mode)

	respondOK(c, "Quiz enhanced with "+string(mode)+" improvements", &enhanced)
}

// GenerateQuestionsRequest is the body of POST /generate-questions.
type GenerateQuestionsRequest struct {
	Topic      string `json:"topic"`
	Type       string `json:"type"`
	Count      *int   `json:"count"`
	Difficulty string `json:"difficulty"`
	Context    string `json:"context"`
}

// HandleGenerateQuestions generates a bare question list, LLM first with
// engine fallback.
func (h *Handler) HandleGenerateQuestions(c *gin.Context) {
	var req GenerateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "No data provided")
		return
	}

	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		respondError(c, http.StatusBadRequest, "Topic is required")
		return
	}

	questionType := req.Type
	if questionType == "" {
		questionType = "multiple-choice"
	}
	count := 5
	if req.Count != nil {
		count = *req.Count
	}
	if count > 20 {
		count = 20
	}
	difficulty := engine.ParseDifficulty(req.Difficulty)

	h.Log.Info("generating questions", "topic", topic, "type", questionType, "count", count)

	var questions []models.Question
	source := "fallback"
	if h.Generator != nil {
		generated, err := h.Generator.GenerateQuestions(c.Request.Context(), topic, questionType, count, difficulty, req.Context)
		if err == nil {
			engine.ApplyQuestionDefaults(generated, difficulty)
			questions = generated
			source = "gemini"
		} else {
			h.Log.Warn("LLM question generation failed, using fallback", "error", err)
		}
	}
	if questions == nil {
		questions = engine.SimpleQuestions(topic, questionType, count, difficulty)
	}

	respondOK(c, "Generated questions", gin.H{
		"questions": questions,
		"metadata": gin.H{
			"topic":       topic,
			"type":        questionType,
			"count":       len(questions),
			"difficulty":  string(difficulty),
			"source":      source,
			"generatedAt": time.Now().Format(time.RFC3339),
		},
	})
}
