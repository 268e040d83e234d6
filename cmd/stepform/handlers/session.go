// Package handlers implements the business logic for stepform commands.
//
// Handlers load configuration, build the submission sinks and run the
// wizard front ends. Collaborators are held in package-level function
// variables so tests can replace them.
package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/mattn/go-isatty"

	"github.com/imamik/stepform/internal/config"
	"github.com/imamik/stepform/internal/form"
	"github.com/imamik/stepform/internal/logging"
	"github.com/imamik/stepform/internal/metrics"
	"github.com/imamik/stepform/internal/platform/s3"
	"github.com/imamik/stepform/internal/sink"
	"github.com/imamik/stepform/internal/wizard"
)

// Factory function variables - can be replaced in tests.
var (
	// loadConfig reads stepform.yaml or the --config path.
	loadConfig = config.Load

	// newObjectStore creates the S3 client behind the s3 sink.
	newObjectStore = func(ctx context.Context, opts s3.Options) (sink.ObjectStore, error) {
		return s3.NewClient(ctx, opts)
	}

	// isInteractiveTTY reports whether stdout is a terminal.
	isInteractiveTTY = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	// logOutput is where logs go when no --log-file is given.
	logOutput io.Writer = os.Stderr
)

// session holds everything a command needs to run the wizard.
type session struct {
	cfg     *config.Config
	log     logr.Logger
	metrics *metrics.Metrics
	sink    wizard.Sink

	closers []func()
}

// sessionOptions configures openSession.
type sessionOptions struct {
	configPath string
	logFile    string
	// deferLogs holds log output in memory until close, so it cannot draw
	// over a full-screen UI.
	deferLogs bool
	// noSinks replaces the configured sinks with wizard.Discard.
	noSinks bool
}

func openSession(ctx context.Context, opts sessionOptions) (*session, error) {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	s := &session{cfg: cfg, metrics: metrics.New()}

	var w io.Writer
	switch {
	case opts.logFile != "":
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		s.closers = append(s.closers, func() { _ = f.Close() })
		w = f
	case opts.deferLogs:
		var buf bytes.Buffer
		s.closers = append(s.closers, func() { _, _ = io.Copy(logOutput, &buf) })
		w = &buf
	default:
		w = logOutput
	}

	log, flush, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Writer: w,
	})
	if err != nil {
		s.close()
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	// Closers run in reverse, so the logger is flushed before its writer
	// is closed or copied out.
	s.closers = append(s.closers, flush)
	s.log = log

	if opts.noSinks {
		s.sink = wizard.Discard
		return s, nil
	}

	s.sink, err = buildSinks(ctx, cfg, log, s.metrics)
	if err != nil {
		s.close()
		return nil, err
	}
	return s, nil
}

// controller creates a wizard controller wired to the session's sinks,
// logger and metrics.
func (s *session) controller(initial form.State) *wizard.Controller {
	return wizard.New(s.sink,
		wizard.WithLogger(s.log.WithName("wizard")),
		wizard.WithRecorder(s.metrics),
		wizard.WithInitialForm(initial),
	)
}

// close writes the metrics textfile, if configured, and releases the log
// output.
func (s *session) close() {
	if s.cfg != nil && s.cfg.Metrics.Textfile != "" {
		if err := s.metrics.WriteTextfile(s.cfg.Metrics.Textfile); err != nil {
			s.log.Error(err, "failed to write metrics", "path", s.cfg.Metrics.Textfile)
		}
	}
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

// buildSinks creates the enabled sinks in the order log, file, s3. Each is
// instrumented with m.
func buildSinks(ctx context.Context, cfg *config.Config, log logr.Logger, m *metrics.Metrics) (wizard.Sink, error) {
	var sinks sink.Multi

	if cfg.Sinks.Log.Enabled {
		sinks = append(sinks, m.Instrument("log", sink.NewLog(log.WithName("submission"))))
	}

	if cfg.Sinks.File.Enabled {
		sinks = append(sinks, m.Instrument("file", sink.NewFile(cfg.Sinks.File.Dir)))
	}

	if s3cfg := cfg.Sinks.S3; s3cfg.Enabled {
		store, err := newObjectStore(ctx, s3.Options{
			Endpoint:  s3cfg.Endpoint,
			Region:    s3cfg.Region,
			AccessKey: s3cfg.AccessKey,
			SecretKey: s3cfg.SecretKey,
			PathStyle: s3cfg.PathStyle,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create S3 client: %w", err)
		}
		sinks = append(sinks, m.Instrument("s3", sink.NewS3(store, sink.S3Options{
			Bucket:       s3cfg.Bucket,
			Prefix:       s3cfg.Prefix,
			CreateBucket: s3cfg.CreateBucket,
			Logger:       log.WithName("s3"),
		})))
	}

	if len(sinks) == 0 {
		log.Info("no submission sinks enabled, submissions will be discarded")
		return wizard.Discard, nil
	}
	return sinks, nil
}
