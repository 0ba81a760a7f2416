package css

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseColor(t *testing.T) {
	Convey("ParseColor", t, func() {
		Convey("Hex notations", func() {
			So(must(ParseColor("#ff8800")), ShouldResemble, RGBA{R: 255, G: 136, B: 0, A: 1})
			So(must(ParseColor("#F80")), ShouldResemble, RGBA{R: 255, G: 136, B: 0, A: 1})
			So(must(ParseColor("#ff880080")), ShouldResemble, RGBA{R: 255, G: 136, B: 0, A: 0.502})
			So(must(ParseColor("#f800")), ShouldResemble, RGBA{R: 255, G: 136, B: 0, A: 0})
		})

		Convey("Named colors", func() {
			So(must(ParseColor("red")), ShouldResemble, RGBA{R: 255, A: 1})
			So(must(ParseColor("  CornflowerBlue ")), ShouldResemble, RGBA{R: 100, G: 149, B: 237, A: 1})
			So(must(ParseColor("transparent")), ShouldResemble, Transparent)
		})

		Convey("Functional notations", func() {
			So(must(ParseColor("rgb(1, 2, 3)")), ShouldResemble, RGBA{R: 1, G: 2, B: 3, A: 1})
			So(must(ParseColor("rgba(1,2,3,0.5)")), ShouldResemble, RGBA{R: 1, G: 2, B: 3, A: 0.5})
			So(must(ParseColor("rgb(100% 0% 0% / 50%)")), ShouldResemble, RGBA{R: 255, A: 0.5})
			So(must(ParseColor("rgb(300, -4, 0)")), ShouldResemble, RGBA{R: 255, A: 1})
			So(must(ParseColor("hsl(120, 100%, 50%)")), ShouldResemble, RGBA{G: 255, A: 1})
			So(must(ParseColor("hsla(0deg, 0%, 100%, 0)")), ShouldResemble, RGBA{R: 255, G: 255, B: 255, A: 0})
		})

		Convey("Out of range components are clamped", func() {
			So(must(ParseColor("rgb(120%, -10%, 0)")), ShouldResemble, RGBA{R: 255, A: 1})
			So(must(ParseColor("rgba(0, 0, 0, 7)")), ShouldResemble, RGBA{A: 1})
			So(must(ParseColor("rgba(0, 0, 0, -0.5)")), ShouldResemble, RGBA{})
			So(must(ParseColor("hsl(0, 250%, 50%)")), ShouldResemble, RGBA{R: 255, A: 1})
		})

		Convey("Rejects everything else", func() {
			for _, bad := range []string{"", "#ggg", "#12345", "rgb(1, 2)", "rgb 1 2 3", "notacolor", "currentcolor", "url(x.png)"} {
				_, ok := ParseColor(bad)
				So(ok, ShouldBeFalse)
			}
		})
	})
}

func TestResolved(t *testing.T) {
	Convey("Resolved", t, func() {
		So(RGBA{R: 255, G: 136, A: 1}.Resolved(), ShouldEqual, "rgb(255, 136, 0)")
		So(RGBA{R: 1, G: 2, B: 3, A: 0.5}.Resolved(), ShouldEqual, "rgba(1, 2, 3, 0.5)")
		So(Transparent.Resolved(), ShouldEqual, "rgba(0, 0, 0, 0)")
	})
}

func TestParseValue(t *testing.T) {
	Convey("ParseValue", t, func() {
		Convey("Keywords", func() {
			for text, kw := range map[string]Keyword{
				"currentColor": CurrentColor,
				"inherit":      Inherit,
				"initial":      Initial,
				"unset":        Unset,
			} {
				v, ok := ParseValue(text)
				So(ok, ShouldBeTrue)
				So(v.Keyword, ShouldEqual, kw)
			}
		})

		Convey("Literals", func() {
			v, ok := ParseValue("#000")
			So(ok, ShouldBeTrue)
			So(v, ShouldResemble, LiteralValue(Black))
		})

		Convey("Invalid", func() {
			_, ok := ParseValue("bogus")
			So(ok, ShouldBeFalse)
		})
	})
}

// must drops the ok flag of a successful parse.
func must(c RGBA, ok bool) RGBA {
	So(ok, ShouldBeTrue)
	return c
}
