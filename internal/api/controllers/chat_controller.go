package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wander/internal/models/request_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

type ChatController struct {
	chatService services.ChatService
}

func NewChatController(chatService services.ChatService) *ChatController {
	return &ChatController{chatService: chatService}
}

// Chat godoc
// @Summary Ask the travel assistant
// @Description Answers a question about the current trip, optionally proposing itinerary or budget changes
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Chat payload"
// @Success 200 {object} response_models.ChatResponse
// @Failure 400 {object} map[string]string
// @Router /chat [post]
func (ch *ChatController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := ch.chatService.Chat(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
