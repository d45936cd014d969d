package telemetry

import (
	"context"
	"testing"
)

func TestSetupIsNoopWithoutEndpoint(test *testing.T) {
	test.Setenv(envEndpoint, "")
	shutdown, err := Setup(context.Background(), "engagementd")
	if err != nil {
		test.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		test.Fatalf("shutdown: %v", err)
	}
}

func TestSetupHonoursDisableFlag(test *testing.T) {
	test.Setenv(envEndpoint, "http://collector:4318")
	test.Setenv(envEnabled, "FALSE")
	shutdown, err := Setup(context.Background(), "engagementd")
	if err != nil {
		test.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		test.Fatalf("shutdown: %v", err)
	}
}
