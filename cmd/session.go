package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/EugeneDevastator/TraVis/internal/config"
	"github.com/EugeneDevastator/TraVis/internal/log"
	"github.com/EugeneDevastator/TraVis/internal/nav"
	"github.com/EugeneDevastator/TraVis/internal/topology"
	"github.com/EugeneDevastator/TraVis/internal/tracing"
)

// session is everything a command needs to drive the cursor.
type session struct {
	id      string
	nav     *nav.Navigator
	cursor  nav.Cursor
	tracer  *tracing.Provider
	cleanup []func()
}

// openSession starts logging and tracing, then builds the navigator from c.
func openSession(c config.Config) (*session, error) {
	s := &session{id: uuid.New().String()}

	if debugFlag || log.DebugEnabledFromEnv() {
		logPath := os.Getenv("TRAVIS_LOG")
		if logPath == "" {
			logPath = "debug.log"
		}
		closeLog, err := log.Init(logPath)
		if err != nil {
			return nil, fmt.Errorf("initializing logging: %w", err)
		}
		s.cleanup = append(s.cleanup, closeLog)
	}
	log.Info(log.CatConfig, "Session starting", "session", s.id, "version", version, "config", viper.ConfigFileUsed())

	tp, err := tracing.NewProvider(tracing.FromConfig(c.Tracing))
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("initializing tracing: %w", err)
	}
	s.tracer = tp

	n, err := topology.Build(c.Topology, topology.DepsFromConfig(c, afero.NewOsFs()))
	if err != nil {
		s.Close()
		return nil, err
	}
	s.nav = n
	s.cursor = n
	if tp.Enabled() {
		s.cursor = tracing.NewTracedCursor(n, tp.Tracer())
	}
	return s, nil
}

// step applies one input under the command timeout.
func (s *session) step(ctx context.Context, input string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	_, err := s.cursor.Advance(ctx, input)
	return err
}

// view returns the current view under the command timeout.
func (s *session) view(ctx context.Context) (nav.NodeView, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return s.cursor.CurrentView(ctx)
}

// Close flushes traces and closes the log, in that order.
func (s *session) Close() {
	if s.tracer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := s.tracer.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatTrace, "Flushing traces failed", err)
		}
		cancel()
		s.tracer = nil
	}
	log.Debug(log.CatConfig, "Session closed", "session", s.id)
	for i := len(s.cleanup) - 1; i >= 0; i-- {
		s.cleanup[i]()
	}
	s.cleanup = nil
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
