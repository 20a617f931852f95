package cli

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/matzehuels/dotmark/pkg/observability"
)

// renderStats counts renderer and cache events for the summary line printed
// after a render run.
type renderStats struct {
	observability.NoopCacheHooks

	layouts atomic.Int64
	failed  atomic.Int64
	written atomic.Int64
	cached  atomic.Int64
}

func (s *renderStats) OnLayoutStart(context.Context, string) {}

func (s *renderStats) OnLayoutComplete(_ context.Context, _ string, _ int, _ time.Duration, err error) {
	if err != nil {
		s.failed.Add(1)
		return
	}
	s.layouts.Add(1)
}

func (s *renderStats) OnWrite(_ context.Context, _ string, _ int, err error) {
	if err == nil {
		s.written.Add(1)
	}
}

func (s *renderStats) OnCacheHit(context.Context, string) { s.cached.Add(1) }

// register installs s as the process-wide render and cache hooks.
func (s *renderStats) register() {
	observability.SetRenderHooks(s)
	observability.SetCacheHooks(s)
}

// summary returns e.g. "3 layouts · 1 cached · 4 files".
func (s *renderStats) summary() string {
	parts := []string{
		fmt.Sprintf("%d layouts", s.layouts.Load()),
		fmt.Sprintf("%d cached", s.cached.Load()),
		fmt.Sprintf("%d files", s.written.Load()),
	}
	if n := s.failed.Load(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", n))
	}
	return strings.Join(parts, " · ")
}
