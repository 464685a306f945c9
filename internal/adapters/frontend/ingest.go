package frontend

import (
	"bufio"
	"io"
	"strings"

	"go.trai.ch/frame/internal/core/domain"
)

// maxLineSize bounds a single line of child output.
const maxLineSize = 1 << 20

// lineSink receives one cleaned line of child output.
type lineSink func(msg string, attrs ...any)

// ingest reads r line by line until EOF. Lines are stripped of escape
// sequences and dropped when blank. The first line containing marker fires
// ready. A read error is passed to onErr; the rest of the stream is then
// discarded so the child never blocks on a full pipe.
func ingest(r io.Reader, emit lineSink, marker string, ready *domain.ReadySignal, onErr func(error)) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for sc.Scan() {
		line := domain.StripANSI(sc.Text())
		if strings.TrimSpace(line) == "" {
			continue
		}
		emit(line)
		if marker != "" && strings.Contains(line, marker) {
			ready.Fire(domain.ReadyByLog)
		}
	}

	if err := sc.Err(); err != nil {
		onErr(err)
		_, _ = io.Copy(io.Discard, r)
	}
}
