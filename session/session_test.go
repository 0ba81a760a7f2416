package session

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/swatchkit/swatchkit/constant"
	"github.com/swatchkit/swatchkit/dom"
	"github.com/swatchkit/swatchkit/swatch"
)

const page = `<html><head><style>
.card { background-color: #ff0000; border: 2px solid #00ff00 }
</style></head>
<body style="background: #ffffff; color: #000000">
<div class="card"><p style="color: #ff0000">one</p></div>
<span id="gone" style="color: #00ff00">two</span>
</body></html>`

// recorder collects every published palette.
type recorder struct {
	mu       sync.Mutex
	palettes []Palette
	reply    string
	err      error
}

func (r *recorder) Publish(_ context.Context, p Palette) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.palettes = append(r.palettes, p)
	return r.reply, r.err
}

// gated holds every delivery until the gate is closed.
type gated struct {
	recorder
	gate chan struct{}
}

func (g *gated) Publish(ctx context.Context, p Palette) (string, error) {
	<-g.gate
	return g.recorder.Publish(ctx, p)
}

func (r *recorder) all() []Palette {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Palette(nil), r.palettes...)
}

func load() *dom.Document {
	doc, err := dom.Parse(strings.NewReader(page))
	So(err, ShouldBeNil)
	return doc
}

func TestSession(t *testing.T) {
	Convey("Given a session over a document", t, func() {
		doc := load()
		sink := &recorder{}
		s := New(doc.Root(), sink, Options{})

		Convey("init before any load publishes nothing", func() {
			s.Handle(Command{Op: constant.OpInit})
			s.Close()
			So(sink.all(), ShouldBeEmpty)
		})

		Convey("load publishes the distinct colors", func() {
			s.Handle(Command{Op: constant.OpLoad})
			s.Close()

			palettes := sink.all()
			So(len(palettes), ShouldEqual, 1)
			So(palettes[0].Colors, ShouldResemble, []swatch.Code{"ff0000", "000000", "00ff00", "ffffff"})
		})

		Convey("init after load re-sends the palette", func() {
			s.Handle(Command{Op: constant.OpLoad})
			s.Handle(Command{Op: constant.OpInit})
			s.Close()

			palettes := sink.all()
			So(len(palettes), ShouldEqual, 2)
			So(palettes[1], ShouldResemble, palettes[0])
		})

		Convey("Loading twice yields the same swatches", func() {
			type entry struct {
				color swatch.Code
				users int
			}
			snapshot := func() (entries []entry) {
				s.View(func(set swatch.Set) {
					for _, sw := range set {
						entries = append(entries, entry{sw.Color, len(sw.Users)})
					}
				})
				return entries
			}

			s.Handle(Command{Op: constant.OpLoad})
			first := snapshot()
			s.Handle(Command{Op: constant.OpLoad})
			second := snapshot()
			s.Close()

			So(first, ShouldNotBeEmpty)
			So(second, ShouldResemble, first)

			palettes := sink.all()
			So(len(palettes), ShouldEqual, 2)
			So(palettes[1], ShouldResemble, palettes[0])
		})

		Convey("redraw recolors every usage of a remapped swatch", func() {
			s.Handle(Command{Op: constant.OpLoad})
			s.Handle(Command{Op: constant.OpRedraw, Map: map[string]string{"ff0000": "0000ff", "00ff00": "00ff00"}})

			So(s.Colors(), ShouldResemble, []swatch.Code{"0000ff", "000000", "00ff00", "ffffff"})

			fresh := swatch.Build(swatch.Walk(doc.Root())).Colors()
			So(fresh, ShouldContain, swatch.Code("0000ff"))
			So(fresh, ShouldNotContain, swatch.Code("ff0000"))
			s.Close()
		})

		Convey("redraw without a map changes nothing", func() {
			s.Handle(Command{Op: constant.OpLoad})
			before, _ := doc.HTML()
			s.Handle(Command{Op: constant.OpRedraw})
			after, _ := doc.HTML()
			So(after, ShouldEqual, before)
			s.Close()
		})

		Convey("Invalid remap entries are dropped and the rest applied", func() {
			s.Handle(Command{Op: constant.OpLoad})
			s.Handle(Command{Op: constant.OpRedraw, Map: map[string]string{"ff0000": "blue", "000000": "111111"}})
			So(s.Colors(), ShouldContain, swatch.Code("ff0000"))
			So(s.Colors(), ShouldContain, swatch.Code("111111"))
			s.Close()
		})

		Convey("Unknown commands are ignored", func() {
			s.Handle(Command{Op: "explode"})
			s.Close()
			So(sink.all(), ShouldBeEmpty)
		})

		Convey("Usages of removed elements are dropped on redraw", func() {
			s.Handle(Command{Op: constant.OpLoad})
			gone, err := doc.Find("#gone")
			So(err, ShouldBeNil)
			doc.Remove(gone[0])

			var usages int
			s.Handle(Command{Op: constant.OpRedraw, Map: map[string]string{"00ff00": "123456"}})
			s.View(func(set swatch.Set) {
				sw, ok := set.Find("123456")
				So(ok, ShouldBeTrue)
				usages = len(sw.Users)
			})
			So(usages, ShouldEqual, 4)
			So(gone[0].Style(), ShouldEqual, "color: #00ff00")
			s.Close()
		})

		Convey("AfterRedraw sees the repainted set", func() {
			var seen []swatch.Code
			s := New(doc.Root(), sink, Options{AfterRedraw: func(set swatch.Set) { seen = set.Colors() }})
			s.Handle(Command{Op: constant.OpLoad})
			s.Handle(Command{Op: constant.OpRedraw, Map: map[string]string{"ffffff": "fafafa"}})
			s.Close()
			So(seen, ShouldContain, swatch.Code("fafafa"))
		})

		Reset(func() {
			s.Close()
		})
	})
}

func TestBackpressure(t *testing.T) {
	Convey("Given a sink that stalls", t, func() {
		doc := load()
		sink := &gated{gate: make(chan struct{})}
		s := New(doc.Root(), sink, Options{QueueSize: 2})

		Convey("The newest palette survives a full queue", func() {
			for i := 0; i < 17; i++ {
				s.Handle(Command{Op: constant.OpLoad})
			}
			s.Handle(Command{Op: constant.OpRedraw, Map: map[string]string{"ff0000": "0000ff"}})
			s.Handle(Command{Op: constant.OpLoad})
			want := s.Colors()

			close(sink.gate)
			s.Close()

			palettes := sink.all()
			So(len(palettes), ShouldBeLessThanOrEqualTo, 3)
			last := palettes[len(palettes)-1]
			So(last.Colors, ShouldResemble, want)
			So(last.Colors, ShouldContain, swatch.Code("0000ff"))
			So(last.Colors, ShouldNotContain, swatch.Code("ff0000"))
		})

		Reset(func() {
			select {
			case <-sink.gate:
			default:
				close(sink.gate)
			}
			s.Close()
		})
	})
}

func TestReplies(t *testing.T) {
	Convey("Given a sink that replies", t, func() {
		doc := load()
		var out bytes.Buffer

		Convey("Replies are written to the output", func() {
			s := New(doc.Root(), &recorder{reply: "ok"}, Options{Output: &out})
			s.Handle(Command{Op: constant.OpLoad})
			s.Close()
			So(out.String(), ShouldEqual, "ok\n")
		})

		Convey("Failed deliveries write nothing", func() {
			s := New(doc.Root(), &recorder{reply: "ok", err: errors.New("closed")}, Options{Output: &out})
			s.Handle(Command{Op: constant.OpLoad})
			s.Close()
			So(out.String(), ShouldBeEmpty)
		})

		Convey("SinkFunc adapts plain functions", func() {
			s := New(doc.Root(), SinkFunc(func(_ context.Context, p Palette) (string, error) {
				return string(p.Colors[0]), nil
			}), Options{Output: &out})
			s.Handle(Command{Op: constant.OpLoad})
			s.Close()
			So(out.String(), ShouldEqual, "ff0000\n")
		})
	})
}

func TestServe(t *testing.T) {
	Convey("Given a command channel", t, func() {
		doc := load()
		sink := &recorder{}
		s := New(doc.Root(), sink, Options{})
		defer s.Close()

		Convey("Commands are handled in order until the channel closes", func() {
			commands := make(chan Command, 3)
			commands <- Command{Op: constant.OpLoad}
			commands <- Command{Op: constant.OpRedraw, Map: map[string]string{"ff0000": "abcdef"}}
			commands <- Command{Op: constant.OpInit}
			close(commands)

			So(s.Serve(context.Background(), commands), ShouldBeNil)
			s.Close()

			palettes := sink.all()
			So(len(palettes), ShouldEqual, 2)
			So(palettes[1].Colors[0], ShouldEqual, swatch.Code("abcdef"))
		})

		Convey("Cancelling the context stops serving", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()
			So(s.Serve(ctx, make(chan Command)), ShouldEqual, context.DeadlineExceeded)
		})
	})
}
