package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/koinonia-backend/internal/services"
	"github.com/yungbote/koinonia-backend/internal/types"
)

type stubSyllabusService struct {
	result *services.PathResult
	path   *types.LearningPath
	err    error
	calls  int
}

func (s *stubSyllabusService) GeneratePath(ctx context.Context, tx *gorm.DB, organs []string, level, name string) (*services.PathResult, error) {
	s.calls++
	return s.result, s.err
}

func (s *stubSyllabusService) GetPath(ctx context.Context, tx *gorm.DB, pathID string) (*types.LearningPath, error) {
	return s.path, s.err
}

func newTestRouter(stub *stubSyllabusService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewSyllabusHandler(stub)
	router.POST("/api/syllabus/paths", h.GeneratePath)
	router.GET("/api/syllabus/paths/:pathID", h.GetPath)
	return router
}

func TestGeneratePathValidation(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		wantStatus int
		wantCalls  int
	}{
		{
			name:       "valid",
			body:       `{"organs":["I"],"level":"beginner","name":"Ada"}`,
			wantStatus: http.StatusCreated,
			wantCalls:  1,
		},
		{
			name:       "empty_organs",
			body:       `{"organs":[],"level":"beginner"}`,
			wantStatus: http.StatusBadRequest,
			wantCalls:  0,
		},
		{
			name:       "unknown_level",
			body:       `{"organs":["I"],"level":"expert"}`,
			wantStatus: http.StatusBadRequest,
			wantCalls:  0,
		},
		{
			name:       "malformed_json",
			body:       `{"organs":`,
			wantStatus: http.StatusBadRequest,
			wantCalls:  0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubSyllabusService{result: &services.PathResult{PathID: "abc12345"}}
			router := newTestRouter(stub)

			req := httptest.NewRequest(http.MethodPost, "/api/syllabus/paths", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("status=%d, want %d (body %s)", rec.Code, tc.wantStatus, rec.Body.String())
			}
			if stub.calls != tc.wantCalls {
				t.Errorf("service calls=%d, want %d", stub.calls, tc.wantCalls)
			}
		})
	}
}

func TestGeneratePathServiceFailure(t *testing.T) {
	stub := &stubSyllabusService{err: errors.New("db down")}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/syllabus/paths",
		strings.NewReader(`{"organs":["I"],"level":"beginner"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status=%d, want 500", rec.Code)
	}
}

func TestGetPathNotFound(t *testing.T) {
	stub := &stubSyllabusService{path: nil}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/syllabus/paths/deadbeef", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status=%d, want 404", rec.Code)
	}
}
