package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HandleHealth reports service liveness and which capabilities are active.
func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service":          ServiceName,
		"timestamp":        time.Now().Format(time.RFC3339),
		"gemini_available": h.Generator != nil,
		"features":         []string{"quiz-generation", "pdf-extraction", "ai-enhancement", "question-generation"},
	})
}

// HandleInfo describes the service, its endpoints, and capability flags.
func (h *Handler) HandleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "Quizito AI Service",
		"version": Version,
		"status":  "operational",
		"endpoints": gin.H{
			"POST /generate-quiz":      "Generate complete quiz with AI",
			"POST /extract-pdf":        "Extract text from PDF",
			"POST /enhance-quiz":       "Enhance existing quiz",
			"POST /generate-questions": "Generate specific questions",
			"POST /analyze-topic":      "Analyze topic for quiz creation",
			"GET /health":              "Health check",
		},
		"ai_capabilities": gin.H{
			"gemini_integration":  h.Generator != nil,
			"pdf_processing":      true,
			"quiz_generation":     true,
			"content_enhancement": true,
		},
	})
}
