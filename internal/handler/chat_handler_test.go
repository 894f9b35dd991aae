package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/domain"
	"github.com/Cray749/HaqqMitra-LawyerInterface/mocks"
)

func setupChatRouter(svc *mocks.MockChatService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewChatHandler(svc)
	r := gin.New()
	r.POST("/chat/message", h.Message)
	r.POST("/chat/devils-advocate", h.Challenge)
	return r
}

func TestChatMessageEndpoint_Success(t *testing.T) {
	svc := new(mocks.MockChatService)
	svc.On("Reply", mock.Anything, "What is my deadline?",
		[]domain.ChatMessage{{Role: domain.RoleUser, Content: "hi"}},
		domain.CaseContext{CaseDetailsJSON: "{}"},
	).Return(&domain.ChatReply{Reply: "Thirty days from service."}, nil)
	r := setupChatRouter(svc)

	w := postJSON(t, r, "/chat/message", `{
		"message": "What is my deadline?",
		"chatHistory": [{"role": "user", "content": "hi"}],
		"caseDetails": "{}"
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Thirty days from service.", data["botReply"])
	svc.AssertExpectations(t)
}

func TestChatMessageEndpoint_EmptyMessage(t *testing.T) {
	svc := new(mocks.MockChatService)
	svc.On("Reply", mock.Anything, "", mock.Anything, mock.Anything).
		Return(nil, domain.ErrEmptyMessage)
	r := setupChatRouter(svc)

	w := postJSON(t, r, "/chat/message", `{"message": ""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "EMPTY_MESSAGE", resp.Error.Code)
}

func TestChatMessageEndpoint_DegradedReplyStillOK(t *testing.T) {
	svc := new(mocks.MockChatService)
	svc.On("Reply", mock.Anything, "hello", mock.Anything, mock.Anything).
		Return(&domain.ChatReply{
			Reply:       "Sorry, I couldn't generate a response at this moment.",
			ErrorNotice: "The AI assistant could not be reached.",
		}, nil)
	r := setupChatRouter(svc)

	w := postJSON(t, r, "/chat/message", `{"message": "hello"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Sorry, I couldn't generate a response at this moment.", data["botReply"])
	assert.Equal(t, "The AI assistant could not be reached.", data["error"])
}

func TestDevilsAdvocateEndpoint_Success(t *testing.T) {
	svc := new(mocks.MockChatService)
	svc.On("Challenge", mock.Anything, "We served notice on time", mock.Anything, mock.Anything).
		Return(&domain.AdvocateReply{Reply: "Was the notice acknowledged?"}, nil)
	r := setupChatRouter(svc)

	w := postJSON(t, r, "/chat/devils-advocate", `{"message": "We served notice on time"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Was the notice acknowledged?", data["devilReply"])
}
