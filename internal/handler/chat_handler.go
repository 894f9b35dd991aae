package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/domain"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/service"
)

// ChatHandler handles the multi-turn AI endpoints.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// chatRequest carries the latest user turn plus conversation context.
type chatRequest struct {
	Message           string               `json:"message"`
	ChatHistory       []domain.ChatMessage `json:"chatHistory"`
	CaseDetails       string               `json:"caseDetails"`
	UploadedDocuments []string             `json:"uploadedDocuments"`
}

func (r *chatRequest) context() domain.CaseContext {
	return domain.CaseContext{
		CaseDetailsJSON: r.CaseDetails,
		Documents:       r.UploadedDocuments,
	}
}

// Message handles POST /api/v1/chat/message
func (h *ChatHandler) Message(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	out, err := h.chatService.Reply(c.Request.Context(), req.Message, req.ChatHistory, req.context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, out)
}

// Challenge handles POST /api/v1/chat/devils-advocate
func (h *ChatHandler) Challenge(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	out, err := h.chatService.Challenge(c.Request.Context(), req.Message, req.ChatHistory, req.context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, out)
}
