package frontend_test

import (
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/frame/internal/adapters/frontend"
	"go.trai.ch/frame/internal/core/domain"
)

type recordedLine struct {
	msg   string
	attrs []any
}

type lineRecorder struct {
	mu    sync.Mutex
	lines []recordedLine
}

func (r *lineRecorder) emit(msg string, attrs ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, recordedLine{msg: msg, attrs: attrs})
}

func (r *lineRecorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.lines))
	for _, l := range r.lines {
		out = append(out, l.msg)
	}
	return out
}

func TestIngest_StripsEscapesAndSkipsBlankLines(t *testing.T) {
	rec := &lineRecorder{}
	ready := domain.NewReadySignal()
	input := "\x1b[32mhello\x1b[0m world\n   \n\x1b[0m\n\tindented\r\n"

	frontend.Ingest(strings.NewReader(input), rec.emit, "", ready, func(err error) {
		t.Fatalf("unexpected stream error: %v", err)
	})

	assert.Equal(t, []string{"hello world", "\tindented"}, rec.messages())
	assert.False(t, ready.IsReady())
}

func TestIngest_FiresOnMarker(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		marker string
		ready  bool
	}{
		{name: "plain marker", input: "Listening on 127.0.0.1:41234\n", marker: "Listening on", ready: true},
		{name: "styled marker", input: "  \x1b[32m➜\x1b[39m  \x1b[1mLocal\x1b[22m:   http://localhost:5173/\n", marker: "Local:", ready: true},
		{name: "no marker", input: "compiling...\n", marker: "Listening on", ready: false},
		{name: "empty marker never fires", input: "Listening on 127.0.0.1:1\n", marker: "", ready: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &lineRecorder{}
			ready := domain.NewReadySignal()

			frontend.Ingest(strings.NewReader(tt.input), rec.emit, tt.marker, ready, func(error) {})

			assert.Equal(t, tt.ready, ready.IsReady())
			if tt.ready {
				assert.Equal(t, domain.ReadyByLog, ready.Reason())
			}
		})
	}
}

func TestIngest_OverlongLineStopsIngestionButDrains(t *testing.T) {
	rec := &lineRecorder{}
	ready := domain.NewReadySignal()
	r, w := io.Pipe()

	var streamErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		frontend.Ingest(r, rec.emit, "", ready, func(err error) { streamErr = err })
	}()

	_, _ = io.WriteString(w, "first\n")
	_, _ = io.WriteString(w, strings.Repeat("x", frontend.MaxLineSize+1)+"\n")
	// The write only completes if the rest of the stream is drained.
	_, err := io.WriteString(w, "after the long line\n")
	assert.NoError(t, err)
	_ = w.Close()
	<-done

	assert.Error(t, streamErr)
	assert.Equal(t, []string{"first"}, rec.messages())
}
