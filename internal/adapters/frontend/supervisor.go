package frontend

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.trai.ch/frame/internal/adapters/metrics"
	"go.trai.ch/frame/internal/adapters/telemetry"
	"go.trai.ch/frame/internal/core/domain"
	"go.trai.ch/frame/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// pollInterval is how often the readiness probe runs.
	pollInterval = 100 * time.Millisecond
	// killGrace bounds how long Stop waits for a killed child to exit.
	killGrace = 5 * time.Second

	// DevReadyMarker appears in the dev server output once it serves.
	DevReadyMarker = "Local:"
	// ReadyMarker appears in the production frontend output once it serves.
	ReadyMarker = "Listening on"
)

// Probe reports whether something accepts connections on the loopback port.
type Probe func(ctx context.Context, port uint16) bool

// Option configures a Supervisor.
type Option func(*Supervisor)

// WithLauncher replaces the process launcher.
func WithLauncher(l Launcher) Option {
	return func(s *Supervisor) { s.launcher = l }
}

// WithProbe replaces the TCP readiness probe.
func WithProbe(p Probe) Option {
	return func(s *Supervisor) { s.probe = p }
}

// WithReadyTimeout sets how long Start waits for readiness.
func WithReadyTimeout(d time.Duration) Option {
	return func(s *Supervisor) { s.readyTimeout = d }
}

// WithTempDir sets the root that artifacts are extracted under.
func WithTempDir(dir string) Option {
	return func(s *Supervisor) { s.tempDir = dir }
}

// WithWorkDir sets the directory the client directory is resolved against in dev mode.
func WithWorkDir(dir string) Option {
	return func(s *Supervisor) { s.workDir = dir }
}

// WithTracer sets the tracer used for startup phases.
func WithTracer(t ports.Tracer) Option {
	return func(s *Supervisor) { s.tracer = t }
}

// WithMetrics sets the metrics sink.
func WithMetrics(m ports.Metrics) Option {
	return func(s *Supervisor) { s.metrics = m }
}

// Supervisor owns the frontend child process for the lifetime of the host.
type Supervisor struct {
	strategy     domain.DeliveryStrategy
	store        ports.ArtifactStore
	logger       ports.Logger
	tracer       ports.Tracer
	metrics      ports.Metrics
	launcher     Launcher
	probe        Probe
	readyTimeout time.Duration
	tempDir      string
	workDir      string

	mu       sync.Mutex
	proc     Process
	exitErr  error
	done     chan struct{}
	stopping bool
	stopOnce sync.Once
}

// New creates a supervisor for the given delivery strategy.
func New(strategy domain.DeliveryStrategy, store ports.ArtifactStore, logger ports.Logger, opts ...Option) *Supervisor {
	s := &Supervisor{
		strategy:     strategy,
		store:        store,
		logger:       logger,
		tracer:       telemetry.NewNoOpTracer(),
		metrics:      metrics.NoOp{},
		launcher:     ExecLauncher{},
		probe:        dialProbe,
		readyTimeout: domain.MinReadyTimeout,
		tempDir:      os.TempDir(),
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// launchPlan is everything needed to start and await one strategy.
type launchPlan struct {
	spec   LaunchSpec
	marker string
	probe  bool
}

// Start launches the frontend and blocks until it is ready, it exits, the
// ready timeout passes or ctx is canceled. On any error the child is stopped.
func (s *Supervisor) Start(ctx context.Context, port uint16) error {
	s.mu.Lock()
	if s.proc != nil || s.stopping {
		s.mu.Unlock()
		return domain.ErrFrontendAlreadyStarted
	}
	s.mu.Unlock()

	ctx, span := s.tracer.Start(ctx, "frontend.prepare")
	span.SetAttribute("strategy", s.strategy.String())
	plan, err := s.plan(port)
	span.RecordError(err)
	span.End()
	if err != nil {
		return err
	}

	_, span = s.tracer.Start(ctx, "frontend.spawn")
	proc, err := s.launcher.Launch(plan.spec)
	span.RecordError(err)
	span.End()
	if err != nil {
		return err
	}
	started := time.Now()

	s.mu.Lock()
	s.proc = proc
	s.mu.Unlock()

	s.logger.Info("frontend started", "strategy", s.strategy.String(), "pid", proc.Pid(), "port", port)

	ready := domain.NewReadySignal()
	s.consume(proc, plan.marker, ready)

	ctx, span = s.tracer.Start(ctx, "frontend.ready")
	defer span.End()
	span.SetAttribute("port", port)

	if err := s.awaitReady(ctx, port, plan.probe, ready); err != nil {
		span.RecordError(err)
		s.Stop()
		return err
	}

	took := time.Since(started)
	span.SetAttribute("reason", string(ready.Reason()))
	s.metrics.FrontendReady(s.strategy, ready.Reason(), took)
	s.logger.Info("frontend ready", "reason", string(ready.Reason()), "took", took.Round(time.Millisecond).String())
	return nil
}

// consume starts one reader per output stream and a reaper that waits for
// the process after both streams are drained.
func (s *Supervisor) consume(proc Process, marker string, ready *domain.ReadySignal) {
	out := s.logger.With("target", s.strategy.LogTarget())

	var streams sync.WaitGroup
	streams.Add(2)
	go func() {
		defer streams.Done()
		ingest(proc.Stdout(), out.Info, marker, ready, s.streamFailed("stdout"))
	}()
	go func() {
		defer streams.Done()
		ingest(proc.Stderr(), out.Warn, "", ready, s.streamFailed("stderr"))
	}()

	go func() {
		streams.Wait()
		err := proc.Wait()

		s.mu.Lock()
		s.exitErr = err
		stopping := s.stopping
		s.mu.Unlock()

		if !stopping {
			s.metrics.FrontendExited(s.strategy)
		}
		close(s.done)
	}()
}

func (s *Supervisor) streamFailed(stream string) func(error) {
	return func(err error) {
		s.logger.Warn(domain.ErrLogStreamError.Error(), "stream", stream, "error", err.Error())
	}
}

func (s *Supervisor) awaitReady(ctx context.Context, port uint16, probe bool, ready *domain.ReadySignal) error {
	timeout := time.NewTimer(s.readyTimeout)
	defer timeout.Stop()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		if ready.IsReady() {
			return nil
		}

		select {
		case <-ready.Done():
			return nil
		case <-s.done:
			if ready.IsReady() {
				return nil
			}
			return s.exitedError()
		case <-ctx.Done():
			return ctx.Err()
		case <-timeout.C:
			return zerr.With(zerr.With(domain.ErrFrontendNotReady, "timeout", s.readyTimeout.String()), "port", port)
		case <-ticker.C:
			if probe && s.probe(ctx, port) {
				ready.Fire(domain.ReadyByConnect)
			}
		}
	}
}

func (s *Supervisor) exitedError() error {
	err := s.Err()
	if err == nil {
		return zerr.With(domain.ErrFrontendExited, "strategy", s.strategy.String())
	}
	return zerr.With(zerr.Wrap(err, domain.ErrFrontendExited.Error()), "strategy", s.strategy.String())
}

// Stop kills the frontend and waits briefly for it to exit. Only the first
// call has an effect.
func (s *Supervisor) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		proc := s.proc
		s.stopping = true
		s.mu.Unlock()

		if proc == nil {
			return
		}

		select {
		case <-s.done:
			return
		default:
		}

		if err := proc.Kill(); err != nil {
			s.logger.Warn(domain.ErrChildKillFailed.Error(), "pid", proc.Pid(), "error", err.Error())
		}

		timer := time.NewTimer(killGrace)
		defer timer.Stop()
		select {
		case <-s.done:
			s.logger.Info("frontend stopped", "pid", proc.Pid())
		case <-timer.C:
			s.logger.Warn("frontend did not exit after kill", "pid", proc.Pid(), "grace", killGrace.String())
		}
	})
}

// Done is closed when the frontend process has exited.
func (s *Supervisor) Done() <-chan struct{} {
	return s.done
}

// Err returns the process exit error. It is nil until Done is closed.
func (s *Supervisor) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exitErr
}

func (s *Supervisor) plan(port uint16) (launchPlan, error) {
	switch s.strategy {
	case domain.DevServer:
		return s.devServerPlan()
	case domain.NativeBinary:
		return s.nativeBinaryPlan(port)
	default:
		return s.hostedScriptPlan(port)
	}
}

func (s *Supervisor) devServerPlan() (launchPlan, error) {
	manifest := s.store.Manifest()

	workDir := s.workDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return launchPlan{}, zerr.Wrap(err, domain.ErrClientDirectoryMissing.Error())
		}
		workDir = wd
	}

	dir := filepath.Join(workDir, filepath.FromSlash(manifest.ClientDir))
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return launchPlan{}, zerr.With(domain.ErrClientDirectoryMissing, "path", dir)
	}

	if len(manifest.DevCommand) == 0 {
		return launchPlan{}, zerr.With(domain.ErrChildSpawnFailed, "reason", "empty dev command")
	}

	return launchPlan{
		spec: LaunchSpec{
			Path: manifest.DevCommand[0],
			Args: manifest.DevCommand[1:],
			Dir:  dir,
			Env:  os.Environ(),
		},
		marker: DevReadyMarker,
	}, nil
}

func (s *Supervisor) nativeBinaryPlan(port uint16) (launchPlan, error) {
	artifact, err := s.store.ExecutableImage()
	if err != nil {
		return launchPlan{}, err
	}

	layout := s.layout()
	path, err := materialize(layout, artifact)
	if err != nil {
		return launchPlan{}, err
	}

	return launchPlan{
		spec: LaunchSpec{
			Path: path,
			Dir:  layout.Dir(),
			Env:  childEnvironment(os.Environ(), port),
		},
		marker: ReadyMarker,
		probe:  true,
	}, nil
}

func (s *Supervisor) hostedScriptPlan(port uint16) (launchPlan, error) {
	artifact, err := s.store.ScriptBundle()
	if err != nil {
		return launchPlan{}, err
	}

	layout := s.layout()
	path, err := materialize(layout, artifact)
	if err != nil {
		return launchPlan{}, err
	}

	return launchPlan{
		spec: LaunchSpec{
			Path: artifact.Interpreter,
			Args: []string{path},
			Dir:  layout.Dir(),
			Env:  childEnvironment(os.Environ(), port),
		},
		marker: ReadyMarker,
		probe:  true,
	}, nil
}

func (s *Supervisor) layout() domain.TempLayout {
	return domain.NewTempLayout(s.tempDir, s.store.Manifest().Name)
}

// childEnvironment returns base with PORT, HOST and NODE_ENV replaced.
func childEnvironment(base []string, port uint16) []string {
	overrides := map[string]string{
		"PORT":     strconv.Itoa(int(port)),
		"HOST":     domain.LoopbackHost,
		"NODE_ENV": "production",
	}

	env := make([]string, 0, len(base)+len(overrides))
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if _, ok := overrides[key]; ok {
			continue
		}
		env = append(env, kv)
	}
	for _, key := range []string{"PORT", "HOST", "NODE_ENV"} {
		env = append(env, key+"="+overrides[key])
	}
	return env
}

func dialProbe(ctx context.Context, port uint16) bool {
	d := net.Dialer{Timeout: pollInterval}
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(domain.LoopbackHost, strconv.Itoa(int(port))))
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

var _ ports.Frontend = (*Supervisor)(nil)
