package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mac-cloud/StreamlineLabsWebsite/internal/config"
	"github.com/mac-cloud/StreamlineLabsWebsite/internal/mailer"
	metricsPkg "github.com/mac-cloud/StreamlineLabsWebsite/internal/metrics"
	"github.com/mac-cloud/StreamlineLabsWebsite/internal/model"
	"github.com/mac-cloud/StreamlineLabsWebsite/internal/repository"
)

// Prometheus collectors register globally, so the package shares one set.
var testMetrics = metricsPkg.NewMetrics()

// fakeSender records sent messages and optionally fails every send
type fakeSender struct {
	sent    []mailer.Message
	failAll bool
}

func (f *fakeSender) Send(ctx context.Context, msg mailer.Message) error {
	if f.failAll {
		return errors.New("transport unavailable")
	}
	f.sent = append(f.sent, msg)
	return nil
}

type testEnv struct {
	router *gin.Engine
	repo   *repository.Repository
	sender *fakeSender
	db     *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.ContactMessage{}))

	mailCfg := &config.MailConfig{
		Enabled:    true,
		Transport:  "smtp",
		Sender:     "noreply@streamlinelabs.com",
		AdminEmail: "infostreamlinelabs@gmail.com",
	}

	sender := &fakeSender{}
	repo := repository.New(db)
	notifier := mailer.NewNotifier(sender, mailCfg, testMetrics)
	handlers := NewHandlers(db, repo, notifier, testMetrics)

	r := gin.New()
	handlers.SetupRoutes(r)

	return &testEnv{router: r, repo: repo, sender: sender, db: db}
}

func (e *testEnv) request(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) seed(t *testing.T, n int) []model.ContactMessage {
	t.Helper()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	messages := make([]model.ContactMessage, 0, n)
	for i := 0; i < n; i++ {
		msg := model.ContactMessage{
			Name:      fmt.Sprintf("Sender %d", i+1),
			Email:     fmt.Sprintf("sender%d@example.com", i+1),
			Message:   fmt.Sprintf("Message %d", i+1),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, e.repo.Create(&msg))
		messages = append(messages, msg)
	}
	return messages
}

func (e *testEnv) messageCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(&model.ContactMessage{}).Count(&count).Error)
	return count
}

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"ok"`)
}
