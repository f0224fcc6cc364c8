package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uguryukselwork/quickserve/services"
	"github.com/uguryukselwork/quickserve/utils"
)

type AssistantController struct {
	Assistant *services.AssistantService
}

func NewAssistantController(assistant *services.AssistantService) *AssistantController {
	return &AssistantController{Assistant: assistant}
}

// Ask -> customer question to the menu assistant. Always answers; backend
// failures degrade to the fixed fallback sentence.
func (ac *AssistantController) Ask(c *gin.Context) {
	tableID := c.Param("table_id")
	var body struct {
		Question string `json:"question" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	answer := ac.Assistant.Ask(tableID, body.Question)
	utils.RespondJSON(c, http.StatusOK, "Assistant reply", gin.H{"answer": answer})
}
