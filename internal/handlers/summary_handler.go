package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"centavo/internal/services"
)

// SummaryHandler handles cycle-summary requests.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GetCycleSummary returns totals and the category distribution for the
// active financial cycle.
func (h *SummaryHandler) GetCycleSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.summaryService.GetCycleSummary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
