package suite

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rocketscienceinc/morpion/internal/config"
	"github.com/rocketscienceinc/morpion/internal/layout"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Config *config.Config
	Grid   layout.Grid

	logs *syncBuffer
}

// New - default configuration, the classic 150px grid and a logger captured in memory.
func New(t *testing.T) *Suite {
	t.Helper()

	conf, err := config.Load(filepath.Join(t.TempDir(), "config.yml"))
	if err != nil {
		t.Fatalf("could not load default config: %v", err)
	}

	grid, err := conf.Board.Grid()
	if err != nil {
		t.Fatalf("could not build grid: %v", err)
	}

	logs := &syncBuffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	t.Cleanup(func() {
		if t.Failed() {
			t.Logf("captured logs:\n%s", logs.String())
		}
	})

	return &Suite{
		T:      t,
		Logger: logger,
		Config: conf,
		Grid:   grid,
		logs:   logs,
	}
}

// Logs - everything logged so far.
func (that *Suite) Logs() string {
	return that.logs.String()
}

// CountLogs - number of records whose message equals msg.
func (that *Suite) CountLogs(msg string) int {
	return strings.Count(that.logs.String(), `"msg":"`+msg+`"`)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (that *syncBuffer) Write(p []byte) (int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.buf.Write(p)
}

func (that *syncBuffer) String() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.buf.String()
}
