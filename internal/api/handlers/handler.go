// Package handlers contains the HTTP handlers. They validate requests, try
// the LLM generator when one is configured, and fall back to the
// deterministic engine otherwise.
package handlers

import (
	"context"
	"net/http"

	"quizito/internal/engine"
	"quizito/internal/logger"
	"quizito/internal/models"

	"github.com/gin-gonic/gin"
)

// ServiceName identifies the service in health responses.
const ServiceName = "quizito-ai"

// Version is the reported service version.
const Version = "2.0.0"

// Generator is the LLM capability behind quiz and question generation. A nil
// Generator means no LLM is configured and every request uses the
// deterministic engine.
type Generator interface {
	GenerateQuiz(ctx context.Context, topic string, difficulty engine.Difficulty, numQuestions int, quizType, contextText string) (*models.Quiz, error)
	GenerateQuestions(ctx context.Context, topic, questionType string, count int, difficulty engine.Difficulty, contextText string) ([]models.Question, error)
}

// Handler contains the API handlers' dependencies.
type Handler struct {
	Log       *logger.Logger
	Generator Generator
	ModelName string
}

// NewHandler creates a new Handler. generator may be nil.
func NewHandler(log *logger.Logger, generator Generator, modelName string) *Handler {
	return &Handler{Log: log, Generator: generator, ModelName: modelName}
}

// respondOK writes the success envelope.
func respondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// respondError writes the failure envelope.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, models.ErrorResponse{
		Success: false,
		Error:   message,
	})
}
