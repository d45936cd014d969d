package logging

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/MarkoPoloResearchLab/engagement/pkg/engagement"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(test *testing.T) {
	test.Parallel()
	testCases := []struct {
		raw     string
		want    zapcore.Level
		wantErr bool
	}{
		{raw: "", want: zapcore.InfoLevel},
		{raw: "DEBUG", want: zapcore.DebugLevel},
		{raw: " warn ", want: zapcore.WarnLevel},
		{raw: "error", want: zapcore.ErrorLevel},
		{raw: "loud", wantErr: true},
	}
	for _, testCase := range testCases {
		level, err := ParseLevel(testCase.raw)
		if testCase.wantErr {
			if err == nil {
				test.Fatalf("%q: expected error", testCase.raw)
			}
			continue
		}
		if err != nil || level != testCase.want {
			test.Fatalf("%q: expected %v, got %v %v", testCase.raw, testCase.want, level, err)
		}
	}
}

func TestNewWritesRollingFile(test *testing.T) {
	test.Parallel()
	path := filepath.Join(test.TempDir(), "logs", "engagement.log")
	logger, err := New(Config{Level: "info", FilePath: path})
	if err != nil {
		test.Fatalf("new logger: %v", err)
	}
	logger.Info("hello", zap.String("user_id", "user-1"))
	_ = logger.Sync()
	content, err := os.ReadFile(path)
	if err != nil {
		test.Fatalf("read log file: %v", err)
	}
	if len(content) == 0 {
		test.Fatalf("expected log line in file")
	}
}

func TestOperationLoggerLevels(test *testing.T) {
	test.Parallel()
	core, recorded := observer.New(zapcore.DebugLevel)
	operationLogger := NewOperationLogger(zap.New(core))
	userID, _ := engagement.NewUserID("user-1")
	kind, _ := engagement.NewActionKind("view_post")
	target, _ := engagement.NewTargetID("post-1")

	operationLogger.LogOperation(context.Background(), engagement.OperationLog{Operation: "award", UserID: userID, ActionKind: kind, TargetID: &target, Delta: 1, Status: "ok"})
	operationLogger.LogOperation(context.Background(), engagement.OperationLog{Operation: "award", UserID: userID, ActionKind: kind, Reason: engagement.ReasonDuplicate, Status: "rejected"})
	invariantErr := fmt.Errorf("service.aggregate: %w", engagement.ErrInvariantViolation)
	operationLogger.LogOperation(context.Background(), engagement.OperationLog{Operation: "award", UserID: userID, Error: invariantErr, Status: "error"})
	operationLogger.LogOperation(context.Background(), engagement.OperationLog{Operation: "redeem", UserID: userID, Error: errors.New("store down"), Status: "error"})

	entries := recorded.AllUntimed()
	if len(entries) != 4 {
		test.Fatalf("expected 4 log entries, got %d", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel || entries[0].ContextMap()["target_id"] != "post-1" || entries[0].ContextMap()["delta"] != int64(1) {
		test.Fatalf("unexpected ok entry %+v", entries[0].ContextMap())
	}
	if entries[1].Level != zapcore.InfoLevel || entries[1].ContextMap()["reason"] != "duplicate" {
		test.Fatalf("unexpected rejected entry %+v", entries[1].ContextMap())
	}
	if entries[2].Level != zapcore.ErrorLevel || entries[2].ContextMap()["invariant"] != true {
		test.Fatalf("unexpected invariant entry %+v", entries[2].ContextMap())
	}
	if entries[3].Level != zapcore.ErrorLevel {
		test.Fatalf("expected error level for store failure")
	}
	if _, ok := entries[3].ContextMap()["invariant"]; ok {
		test.Fatalf("store failure must not be tagged as invariant")
	}
}

func TestGinMiddlewareLogsRequests(test *testing.T) {
	test.Parallel()
	gin.SetMode(gin.TestMode)
	core, recorded := observer.New(zapcore.DebugLevel)
	router := gin.New()
	router.Use(GinMiddleware(zap.New(core)))
	router.GET("/ok", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
	router.GET("/broken", func(ctx *gin.Context) { ctx.Status(http.StatusServiceUnavailable) })

	for _, path := range []string{"/ok", "/broken"} {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(recorder, request)
		if recorder.Header().Get(RequestIDHeader) == "" {
			test.Fatalf("%s: expected request id header", path)
		}
	}

	entries := recorded.AllUntimed()
	if len(entries) != 2 {
		test.Fatalf("expected 2 request logs, got %d", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel || entries[0].ContextMap()["route"] != "/ok" {
		test.Fatalf("unexpected first entry %+v", entries[0].ContextMap())
	}
	if entries[1].Level != zapcore.ErrorLevel || entries[1].ContextMap()["status"] != int64(http.StatusServiceUnavailable) {
		test.Fatalf("unexpected second entry %+v", entries[1].ContextMap())
	}
}
