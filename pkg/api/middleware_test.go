package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goran-ethernal/ChainRelay/internal/journal"
	"github.com/goran-ethernal/ChainRelay/internal/logger"
	submocks "github.com/goran-ethernal/ChainRelay/internal/subscription/mocks"
	"github.com/goran-ethernal/ChainRelay/pkg/api/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &logger.Logger{SugaredLogger: zap.New(core).Sugar()}, logs
}

func TestServer_RecoversHandlerPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		path  string
		setup func(registry *submocks.Registry, lister *mocks.FailureLister)
	}{
		{
			name: "journal panics",
			path: "/api/v1/failures",
			setup: func(_ *submocks.Registry, lister *mocks.FailureLister) {
				lister.EXPECT().List(mock.Anything, 5).
					RunAndReturn(func(context.Context, int) ([]*journal.Entry, error) { panic("database is locked") }).
					Once()
			},
		},
		{
			name: "registry panics",
			path: "/api/v1/subscriptions",
			setup: func(registry *submocks.Registry, _ *mocks.FailureLister) {
				registry.EXPECT().Subscriptions().Run(func() { panic(assert.AnError) }).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := submocks.NewRegistry(t)
			lister := mocks.NewFailureLister(t)
			tt.setup(registry, lister)

			log, logs := observedLogger()
			handler := NewServer(testAPIConfig(true), registry, lister, log).Handler()

			w := httptest.NewRecorder()
			require.NotPanics(t, func() {
				handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path+"?limit=5", nil))
			})

			require.Equal(t, http.StatusInternalServerError, w.Code)
			require.Equal(t, "Internal Server Error\n", w.Body.String())
			require.NotEqual(t, "application/json", w.Header().Get("Content-Type"))

			panics := logs.FilterMessage("panic in http handler").All()
			require.Len(t, panics, 1)
			require.Equal(t, tt.path, panics[0].ContextMap()["path"])

			// the request line is written after recovery, with the recovered status
			requests := logs.FilterMessage("http request").All()
			require.Len(t, requests, 1)
			require.Equal(t, int64(http.StatusInternalServerError), requests[0].ContextMap()["status"])
		})
	}
}

func TestServer_LogsRequests(t *testing.T) {
	t.Parallel()

	registry := submocks.NewRegistry(t)
	registry.EXPECT().Subscriptions().Return(nil)

	log, logs := observedLogger()
	handler := NewServer(testAPIConfig(true), registry, nil, log).Handler()

	tests := []struct {
		method string
		path   string
		status int
	}{
		{method: http.MethodGet, path: "/api/v1/subscriptions", status: http.StatusOK},
		{method: http.MethodGet, path: "/api/v1/failures", status: http.StatusNotFound},
		{method: http.MethodGet, path: "/api/v1/failures?limit=x", status: http.StatusNotFound},
		{method: http.MethodDelete, path: "/health", status: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		require.Equal(t, tt.status, w.Code)
	}

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, len(tests))

	for i, tt := range tests {
		fields := entries[i].ContextMap()
		require.Equal(t, tt.method, fields["method"])
		require.Equal(t, int64(tt.status), fields["status"])
		require.NotContains(t, fields["path"], "?")
		require.Equal(t, zapcore.DebugLevel, entries[i].Level)
	}
	require.Zero(t, logs.FilterMessage("panic in http handler").Len())
}

func TestResponseWriter_KeepsFirstStatus(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	_, err := rw.Write([]byte(`{"status":"ok"}`))
	require.NoError(t, err)
	rw.WriteHeader(http.StatusInternalServerError)

	require.Equal(t, http.StatusOK, rw.statusCode)
	require.Equal(t, http.StatusOK, w.Code)
}
