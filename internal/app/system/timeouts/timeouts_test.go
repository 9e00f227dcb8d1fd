package timeouts_test

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/devcatalog/internal/app/system/timeouts"
	"go.uber.org/zap"
)

func TestConfigure_IgnoresZero(t *testing.T) {
	defer timeouts.Reset()

	timeouts.Configure(timeouts.Config{Fetch: 3 * time.Second})

	if got := timeouts.Fetch(); got != 3*time.Second {
		t.Errorf("Fetch() = %v, want 3s", got)
	}
	if got := timeouts.Ping(); got != timeouts.DefaultPing {
		t.Errorf("Ping() = %v, want default", got)
	}
}

func TestConfigureFromEnv(t *testing.T) {
	defer timeouts.Reset()

	t.Setenv("TIMEOUT_SHORT", "750ms")
	t.Setenv("TIMEOUT_FETCH", "nonsense")
	t.Setenv("TIMEOUT_PING", "-1s")

	if n := timeouts.ConfigureFromEnv(); n != 1 {
		t.Errorf("ConfigureFromEnv() = %d, want 1", n)
	}
	cur := timeouts.Current()
	if cur.Short != 750*time.Millisecond {
		t.Errorf("Short = %v, want 750ms", cur.Short)
	}
	if cur.Fetch != timeouts.DefaultFetch || cur.Ping != timeouts.DefaultPing {
		t.Errorf("invalid values should be skipped: %+v", cur)
	}
}

func TestWithTimeout_Expires(t *testing.T) {
	ctx, cancel := timeouts.WithTimeout(context.Background(), time.Millisecond, zap.NewNop(), "test")
	defer cancel()

	<-ctx.Done()
	if ctx.Err() != context.DeadlineExceeded {
		t.Errorf("ctx.Err() = %v, want DeadlineExceeded", ctx.Err())
	}
}
