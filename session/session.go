// Package session holds the palette of one document and applies editor commands to it.
//
// Commands are handled one at a time. Palettes produced by init and load are handed to a
// Sink on a separate goroutine so that a slow editor never blocks command handling.
package session

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/swatchkit/swatchkit/constant"
	"github.com/swatchkit/swatchkit/log"
	"github.com/swatchkit/swatchkit/swatch"
)

// Command is a message from the editor.
type Command struct {
	Op  string            `json:"op" jsonschema:"enum=init,enum=load,enum=redraw"`
	Map map[string]string `json:"map,omitempty" jsonschema:"description=Old color to new color, six hex digits each"`
}

// Palette is the message sent to the editor.
type Palette struct {
	Colors []swatch.Code `json:"colors"`
}

// Sink delivers palettes to the editor. A non-empty reply is written to the session
// output.
type Sink interface {
	Publish(ctx context.Context, p Palette) (string, error)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, p Palette) (string, error)

func (f SinkFunc) Publish(ctx context.Context, p Palette) (string, error) {
	return f(ctx, p)
}

// Options configure a Session.
type Options struct {
	// Output receives editor replies. Nil discards them.
	Output io.Writer

	// AfterRedraw is called after every repaint, with the session lock held.
	AfterRedraw func(swatch.Set)

	// QueueSize bounds the number of palettes waiting for the sink.
	QueueSize int
}

// Session owns the swatch set of one document.
type Session struct {
	mu     sync.Mutex
	root   swatch.Element
	set    swatch.Set
	opts   Options
	sink   Sink
	queue  chan Palette
	done   chan struct{}
	cancel context.CancelFunc
	closed bool
}

// New starts a session over the document rooted at root.
func New(root swatch.Element, sink Sink, opts Options) *Session {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 16
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		root:   root,
		opts:   opts,
		sink:   sink,
		queue:  make(chan Palette, opts.QueueSize),
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go s.publish(ctx)
	return s
}

// Handle applies one command. Unknown commands are ignored.
func (s *Session) Handle(cmd Command) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	switch cmd.Op {
	case constant.OpInit:
		if len(s.set) > 0 {
			s.enqueue()
		}
	case constant.OpLoad:
		s.set = swatch.Build(swatch.Walk(s.root))
		log.Infof("loaded palette: %d colors, %d usages", len(s.set), s.set.Usages())
		s.enqueue()
	case constant.OpRedraw:
		s.redraw(cmd.Map)
	default:
		log.Debugf("ignoring unknown command %q", cmd.Op)
	}
}

func (s *Session) redraw(raw map[string]string) {
	if raw == nil {
		return
	}

	table, err := swatch.ParseRemap(raw)
	if err != nil {
		log.Warnf("redraw: invalid remap entries dropped: %s", err)
	}

	if dropped := s.set.Prune(); dropped > 0 {
		log.Debugf("dropped %d detached usages", dropped)
	}

	changed := s.set.Apply(table)
	swatch.Repaint(s.set)
	log.Infof("redraw: %d of %d swatches recolored", changed, len(s.set))

	if s.opts.AfterRedraw != nil {
		s.opts.AfterRedraw(s.set)
	}
}

// enqueue queues the current palette. When the queue is full the oldest waiting palette
// gives way, so the newest one always reaches the sink.
func (s *Session) enqueue() {
	p := Palette{Colors: s.set.Colors()}
	for {
		select {
		case s.queue <- p:
			return
		default:
		}

		select {
		case <-s.queue:
			log.Debug("palette queue full, dropping oldest palette")
		default:
		}
	}
}

func (s *Session) publish(ctx context.Context) {
	defer close(s.done)

	for p := range s.queue {
		if s.sink == nil {
			continue
		}

		reply, err := s.sink.Publish(ctx, p)
		if err != nil {
			log.Warnf("publish palette: %s", err)
			continue
		}

		if reply == "" || s.opts.Output == nil {
			continue
		}
		if _, err := fmt.Fprintln(s.opts.Output, reply); err != nil {
			log.Warnf("write reply: %s", err)
		}
	}
}

// Serve handles commands in arrival order until the channel is closed or ctx is done.
func (s *Session) Serve(ctx context.Context, commands <-chan Command) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd, ok := <-commands:
			if !ok {
				return nil
			}
			s.Handle(cmd)
		}
	}
}

// Colors returns the distinct colors of the current palette in swatch order.
func (s *Session) Colors() []swatch.Code {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Colors()
}

// Palette returns the current palette message.
func (s *Session) Palette() Palette {
	return Palette{Colors: s.Colors()}
}

// View calls fn with the current set while no command is being handled. fn must not
// keep the set nor call back into the session.
func (s *Session) View(fn func(swatch.Set)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.set)
}

// Close stops accepting commands and waits until every queued palette was delivered.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()

	<-s.done
	s.cancel()
}
