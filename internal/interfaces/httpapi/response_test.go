package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/fplpulse/fpl-pulse/internal/usecase"
)

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	writeJSON(context.Background(), recorder, http.StatusOK, map[string]string{"status": "ok"})

	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", recorder.Code)
	}
	if got := recorder.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type: %s", got)
	}
	if got := recorder.Header().Get("Content-Length"); got != strconv.Itoa(recorder.Body.Len()) {
		t.Fatalf("content length %s does not match body length %d", got, recorder.Body.Len())
	}

	var body map[string]string
	if err := sonic.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestWriteError_StatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", fmt.Errorf("%w: limit must be an integer", usecase.ErrInvalidInput), http.StatusBadRequest},
		{"no gameweek data", fmt.Errorf("%w: empty snapshot", usecase.ErrNoGameweekData), http.StatusServiceUnavailable},
		{"upstream unavailable", fmt.Errorf("%w: status=500", usecase.ErrUpstreamUnavailable), http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			writeError(context.Background(), recorder, tc.err)

			if recorder.Code != tc.want {
				t.Fatalf("unexpected status: got=%d want=%d", recorder.Code, tc.want)
			}

			var body errorBody
			if err := sonic.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Error == "" {
				t.Fatalf("expected error message in body")
			}
		})
	}
}

func TestWriteInternalError(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	writeInternalError(context.Background(), recorder)

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", recorder.Code)
	}
}
