// Package bridge connects a session to an editor, either over standard streams or over
// websockets.
package bridge

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"
	"sync"

	"github.com/swatchkit/swatchkit/log"
	"github.com/swatchkit/swatchkit/session"
)

const maxLine = 1 << 20

// Stdio writes palettes as JSON lines.
type Stdio struct {
	mu sync.Mutex
	w  io.Writer
}

// NewStdio returns a sink writing to w.
func NewStdio(w io.Writer) *Stdio {
	return &Stdio{w: w}
}

// Publish writes p as one line. Stdio editors do not reply.
func (s *Stdio) Publish(_ context.Context, p session.Palette) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.w.Write(append(data, '\n'))
	return "", err
}

// ReadCommands decodes one command per line of r until r is exhausted or ctx is done.
// Blank lines are ignored and malformed ones logged and skipped. The returned channel
// is closed when reading stops.
func ReadCommands(ctx context.Context, r io.Reader) <-chan session.Command {
	commands := make(chan session.Command)

	go func() {
		defer close(commands)

		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLine)

		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			cmd, ok := decode([]byte(line))
			if !ok {
				continue
			}

			select {
			case commands <- cmd:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			log.Warnf("reading commands: %s", err)
		}
	}()

	return commands
}

func decode(data []byte) (session.Command, bool) {
	var cmd session.Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		log.Warnf("skipping malformed command: %s", err)
		return cmd, false
	}
	return cmd, true
}
