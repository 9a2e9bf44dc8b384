package handlers

import (
	"io"
	"net/http"
	"strings"
	"time"

	"quizito/internal/engine"
	"quizito/internal/pdfx"

	"github.com/gin-gonic/gin"
)

// HandleExtractPDF extracts text from an uploaded PDF and runs the content
// analysis over it.
func (h *Handler) HandleExtractPDF(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No file provided")
		return
	}
	if fileHeader.Filename == "" {
		respondError(c, http.StatusBadRequest, "No file selected")
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		respondError(c, http.StatusBadRequest, "File must be a PDF")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.Log.Error("failed to open uploaded file", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to process PDF: "+err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.Log.Error("failed to read uploaded file", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to process PDF: "+err.Error())
		return
	}

	doc, err := pdfx.Extract(data)
	if err != nil {
		h.Log.Error("PDF processing error", "filename", fileHeader.Filename, "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to process PDF: "+err.Error())
		return
	}

	analysis := engine.AnalyzeText(doc.Text, doc.Pages)

	respondOK(c, "PDF extracted successfully", gin.H{
		"text":     doc.Text,
		"analysis": analysis,
		"metadata": gin.H{
			"pages":       len(doc.Pages),
			"wordCount":   len(strings.Fields(doc.Text)),
			"charCount":   len(doc.Text),
			"extractedAt": time.Now().Format(time.RFC3339),
		},
	})
}
