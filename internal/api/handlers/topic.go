package handlers

import (
	"net/http"
	"strings"

	"quizito/internal/engine"

	"github.com/gin-gonic/gin"
)

// AnalyzeTopicRequest is the body of POST /analyze-topic.
type AnalyzeTopicRequest struct {
	Topic   string `json:"topic" binding:"required"`
	Context string `json:"context"`
}

// HandleAnalyzeTopic returns quiz-creation recommendations for a topic.
// Purely deterministic; no LLM involved.
func (h *Handler) HandleAnalyzeTopic(c *gin.Context) {
	var req AnalyzeTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Topic is required")
		return
	}

	topic := strings.TrimSpace(req.Topic)
	h.Log.Info("analyzing topic", "topic", topic)

	analysis := engine.AdviseTopic(topic, req.Context)

	respondOK(c, "Analysis complete for \""+topic+"\"", analysis)
}
