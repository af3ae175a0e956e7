package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/ticket/usecases"
	infraauth "helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/storage"
	attachmenthandlers "helpdesk/internal/interfaces/http/handlers/attachment"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
)

type stubCreateTicketUC struct {
	lastCmd usecases.CreateTicketCommand
}

func (s *stubCreateTicketUC) Execute(_ context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	s.lastCmd = cmd
	return &usecases.CreateTicketResult{TicketID: 1, Serial: "TKT-000001", Status: "new"}, nil
}

type stubListTicketsUC struct {
	called bool
}

func (s *stubListTicketsUC) Execute(context.Context, usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	s.called = true
	return &usecases.ListTicketsResult{Page: 1, PageSize: 20}, nil
}

func newTicketTestRouter(t *testing.T) (*gin.Engine, *stubCreateTicketUC, *stubListTicketsUC) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	createUC := &stubCreateTicketUC{}
	listUC := &stubListTicketsUC{}
	handler := tickethandlers.NewHandler(createUC, nil, listUC, nil, nil, nil, nil, nil, nil, nil)

	engine := gin.New()
	SetupTicketRoutes(engine, &TicketRouteConfig{
		TicketHandler:  handler,
		AuthMiddleware: middleware.NewAuthMiddleware(infraauth.NewJWTService("test-secret", 60), logger.NewLogger()),
	})
	return engine, createUC, listUC
}

// Ticket submission is the public intake form and must work without a session;
// the dashboard routes stay behind authentication.
func TestTicketRoutes_SubmissionIsPublic(t *testing.T) {
	engine, createUC, _ := newTicketTestRouter(t)

	body, err := json.Marshal(map[string]interface{}{
		"requester_name":  "Jordan Reyes",
		"requester_email": "jordan@acme.test",
		"title":           "Cannot log in",
		"description":     "Password reset mail never arrives.",
		"category":        "tech_support",
		"type":            "support",
		"organization":    "Acme Corp",
		"platform":        "Web",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/tickets", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "system", createUC.lastCmd.Actor)
	assert.Equal(t, "jordan@acme.test", createUC.lastCmd.RequesterEmail)
}

func TestTicketRoutes_DashboardRequiresAuth(t *testing.T) {
	engine, _, listUC := newTicketTestRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/tickets"},
		{http.MethodGet, "/tickets/stats"},
		{http.MethodGet, "/tickets/1"},
		{http.MethodPatch, "/tickets/1"},
		{http.MethodPut, "/tickets/1/status"},
		{http.MethodDelete, "/tickets/1"},
	}
	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equalf(t, http.StatusUnauthorized, w.Code, "%s %s without a session", p.method, p.path)
	}
	assert.False(t, listUC.called)
}

func TestAttachmentRoutes_PresignIsPublic(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store, err := storage.NewLocalStore(t.TempDir(), 5)
	require.NoError(t, err)

	engine := gin.New()
	SetupAttachmentRoutes(engine, &AttachmentRouteConfig{
		AttachmentHandler: attachmenthandlers.NewHandler(
			storage.NewPresigner("test-secret", time.Minute, "http://localhost:8080"),
			store,
		),
	})

	body := bytes.NewReader([]byte(`{"filename":"screenshot.png"}`))
	req := httptest.NewRequest(http.MethodPost, "/attachments/presign", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
