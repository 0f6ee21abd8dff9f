package handlers

import (
	"net/http"

	"weddify/services/assistant"

	"github.com/gin-gonic/gin"
)

// AssistantHandler exposes the planning assistant endpoint.
type AssistantHandler struct {
	AssistantService assistant.AssistantService
}

func NewAssistantHandler(svc assistant.AssistantService) *AssistantHandler {
	return &AssistantHandler{AssistantService: svc}
}

// SuggestHandler handles POST /assistant/suggest.
func (h *AssistantHandler) SuggestHandler(c *gin.Context) {
	var req struct {
		City     string `json:"city"`
		Budget   int64  `json:"budget"` // minor units
		Question string `json:"question"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	answer, err := h.AssistantService.SuggestPackages(c.Request.Context(), req.City, req.Budget, req.Question)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestion": answer})
}
