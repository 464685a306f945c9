package frontend_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/frame/internal/adapters/frontend"
	"go.trai.ch/frame/internal/adapters/logger"
)

// syncBuffer is a bytes.Buffer safe for the concurrent writes of the ingestion goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newJSONLogger(t *testing.T) (*logger.Logger, *syncBuffer) {
	t.Helper()

	buf := &syncBuffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	lg.SetJSON(true)
	return lg, buf
}

func logRecords(t *testing.T, buf *syncBuffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func findRecord(records []map[string]any, msg string) map[string]any {
	for _, r := range records {
		if r["msg"] == msg {
			return r
		}
	}
	return nil
}

// fakeProcess is an in-memory frontend child driven by the test.
type fakeProcess struct {
	stdout  *io.PipeReader
	stderr  *io.PipeReader
	outW    *io.PipeWriter
	errW    *io.PipeWriter
	exitCh  chan error
	killErr error
	killed  atomic.Bool
	once    sync.Once
}

func newFakeProcess() *fakeProcess {
	outR, outW := io.Pipe()
	errR, errW := io.Pipe()
	return &fakeProcess{
		stdout: outR,
		stderr: errR,
		outW:   outW,
		errW:   errW,
		exitCh: make(chan error, 1),
	}
}

func (p *fakeProcess) Pid() int          { return 4242 }
func (p *fakeProcess) Stdout() io.Reader { return p.stdout }
func (p *fakeProcess) Stderr() io.Reader { return p.stderr }
func (p *fakeProcess) Wait() error       { return <-p.exitCh }

func (p *fakeProcess) Kill() error {
	p.killed.Store(true)
	if p.killErr != nil {
		return p.killErr
	}
	p.exit(errors.New("signal: killed"))
	return nil
}

func (p *fakeProcess) exit(err error) {
	p.once.Do(func() {
		_ = p.outW.Close()
		_ = p.errW.Close()
		p.exitCh <- err
	})
}

func (p *fakeProcess) println(line string) {
	_, _ = io.WriteString(p.outW, line+"\n")
}

func (p *fakeProcess) eprintln(line string) {
	_, _ = io.WriteString(p.errW, line+"\n")
}

// fakeLauncher hands out a prepared process and records the spec it was given.
type fakeLauncher struct {
	mu   sync.Mutex
	proc *fakeProcess
	spec frontend.LaunchSpec
	err  error
	n    int
}

func (l *fakeLauncher) Launch(spec frontend.LaunchSpec) (frontend.Process, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.spec = spec
	l.n++
	if l.err != nil {
		return nil, l.err
	}
	return l.proc, nil
}

func (l *fakeLauncher) launches() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.n
}

func (l *fakeLauncher) launched() frontend.LaunchSpec {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.spec
}
