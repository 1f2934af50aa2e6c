package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"nutrichat-be/internal/dto"
	"nutrichat-be/internal/pkg/apperror"
	"nutrichat-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type fakeChatService struct {
	reply   string
	err     error
	gotReq  *dto.ChatRequest
	invoked bool
}

func (f *fakeChatService) Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	f.invoked = true
	f.gotReq = request
	if f.err != nil {
		return nil, f.err
	}
	return &dto.ChatResponse{Reply: f.reply}, nil
}

func newTestApp(svc *fakeChatService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(noopLogger{}))

	c := NewChatController(svc)
	api := app.Group("/api")
	c.RegisterRoutes(api)
	app.Post("/chat", c.ChatCompat)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	return res
}

func decodeBody(t *testing.T, res *http.Response, out interface{}) {
	t.Helper()
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func TestChatSuccessEnvelope(t *testing.T) {
	svc := &fakeChatService{reply: "eat more protein"}
	app := newTestApp(svc)

	res := postJSON(t, app, "/api/chat/v1", `{"email":"user@example.com","question":"what now?"}`)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var body struct {
		Success bool             `json:"success"`
		Message string           `json:"message"`
		Data    dto.ChatResponse `json:"data"`
	}
	decodeBody(t, res, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "Success", body.Message)
	assert.Equal(t, "eat more protein", body.Data.Reply)

	require.NotNil(t, svc.gotReq)
	assert.Equal(t, "user@example.com", svc.gotReq.Email)
	assert.Equal(t, "what now?", svc.gotReq.Question)
}

func TestChatCompatBareResponse(t *testing.T) {
	svc := &fakeChatService{reply: "drink water"}
	app := newTestApp(svc)

	res := postJSON(t, app, "/chat", `{"email":"user@example.com","question":"tips?"}`)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var body map[string]interface{}
	decodeBody(t, res, &body)
	assert.Equal(t, "drink water", body["reply"])
	assert.NotContains(t, body, "success")
	assert.NotContains(t, body, "data")
}

func TestChatMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing question", `{"email":"user@example.com"}`},
		{"missing email", `{"question":"hi"}`},
		{"invalid email", `{"email":"not-an-email","question":"hi"}`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeChatService{}
			app := newTestApp(svc)

			res := postJSON(t, app, "/chat", tt.body)
			assert.Equal(t, http.StatusBadRequest, res.StatusCode)

			var body serverutils.ApiErrorResponse
			decodeBody(t, res, &body)
			assert.False(t, body.Success)
			assert.Equal(t, "VALIDATION_ERROR", body.ErrorType)

			assert.False(t, svc.invoked, "service must not run on invalid input")
		})
	}
}

func TestChatMalformedBody(t *testing.T) {
	svc := &fakeChatService{}
	app := newTestApp(svc)

	res := postJSON(t, app, "/chat", `{"email": `)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var body serverutils.ApiErrorResponse
	decodeBody(t, res, &body)
	assert.Equal(t, "VALIDATION_ERROR", body.ErrorType)
	assert.False(t, svc.invoked)
}

func TestChatServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{
			"store outage",
			apperror.New(apperror.KindStoreUnavailable, "activity log lookup failed"),
			http.StatusServiceUnavailable,
			"STORE_UNAVAILABLE",
		},
		{
			"generation outage",
			apperror.New(apperror.KindGenerationUnavailable, "completion request failed"),
			http.StatusBadGateway,
			"GENERATION_UNAVAILABLE",
		},
		{
			"unclassified",
			errors.New("boom"),
			http.StatusInternalServerError,
			"INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeChatService{err: tt.err}
			app := newTestApp(svc)

			res := postJSON(t, app, "/chat", `{"email":"user@example.com","question":"hi"}`)
			assert.Equal(t, tt.wantStatus, res.StatusCode)

			var body serverutils.ApiErrorResponse
			decodeBody(t, res, &body)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantType, body.ErrorType)
		})
	}
}
