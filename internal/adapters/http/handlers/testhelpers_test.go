package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
)

var (
	testTime      = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)
	testProjectID = uuid.MustParse("0b9b5a3e-2f7e-4f55-8f3f-5a0f5d1b7c01")
	testTaskID    = uuid.MustParse("7d4c1e2a-9b3f-4d8e-a6c5-1f2e3d4c5b02")
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withID(r *http.Request, id uuid.UUID) *http.Request {
	return withChiParams(r, map[string]string{"id": id.String()})
}

func validProject() project.Project {
	return project.Project{
		ID:        testProjectID,
		Title:     "Sprint 1",
		CreatedAt: testTime,
	}
}

func validTask() task.Task {
	return task.Task{
		ID:        testTaskID,
		Title:     "Write docs",
		Status:    task.StatusTodo,
		CreatedAt: testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
