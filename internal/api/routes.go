package api

import (
	"quizito/internal/api/handlers"
	"quizito/internal/logger"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires middleware and the API routes onto the router.
func SetupRoutes(router *gin.Engine, handler *handlers.Handler, log *logger.Logger) {
	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware(log))
	router.Use(CORSMiddleware())

	router.GET("/health", handler.HandleHealth)
	router.GET("/info", handler.HandleInfo)

	router.POST("/generate-quiz", handler.HandleGenerateQuiz)
	router.POST("/extract-pdf", handler.HandleExtractPDF)
	router.POST("/enhance-quiz", handler.HandleEnhanceQuiz)
	router.POST("/generate-questions", handler.HandleGenerateQuestions)
	router.POST("/analyze-topic", handler.HandleAnalyzeTopic)
}
