package dom

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/swatchkit/swatchkit/css"
	"github.com/swatchkit/swatchkit/swatch"
)

const page = `<!DOCTYPE html>
<html>
<head>
<title>palette</title>
<style>
p { color: #ff0000 }
.note { background: url(x.png) no-repeat, #00f; }
#main p { color: rgb(0, 128, 0) }
.alert { border-color: red !important }
a::before { color: pink }
p:hover, em { color: #abcdef }
</style>
<style media="print">p { color: #999999 }</style>
</head>
<body style="background-color: white">
<div id="main"><p>one</p><p class="note" style="color: currentcolor">two</p></div>
<p>three</p>
<span class="alert" style="border-color: blue">four</span>
<section style="color: #123456"><b style="border: 1px solid; outline-color: inherit">five</b></section>
</body>
</html>`

func mustParse() *Document {
	doc, err := Parse(strings.NewReader(page))
	So(err, ShouldBeNil)
	return doc
}

func find(doc *Document, selector string) []Element {
	elements, err := doc.Find(selector)
	So(err, ShouldBeNil)
	return elements
}

func style(e Element) css.Computed {
	computed, ok := e.ComputedStyle()
	So(ok, ShouldBeTrue)
	return computed
}

func TestComputedStyle(t *testing.T) {
	Convey("Given a parsed document", t, func() {
		doc := mustParse()
		ps := find(doc, "p")
		So(len(ps), ShouldEqual, 3)

		Convey("The root gets initial values", func() {
			root := doc.Root()
			So(root.Tag(), ShouldEqual, "html")
			computed := style(root)
			So(computed[css.Color], ShouldEqual, "rgb(0, 0, 0)")
			So(computed[css.BackgroundColor], ShouldEqual, "rgba(0, 0, 0, 0)")
			So(computed[css.BorderLeftColor], ShouldEqual, "rgb(0, 0, 0)")
		})

		Convey("Inline styles apply", func() {
			body := find(doc, "body")[0]
			So(style(body)[css.BackgroundColor], ShouldEqual, "rgb(255, 255, 255)")
		})

		Convey("More specific selectors win", func() {
			So(style(ps[0])[css.Color], ShouldEqual, "rgb(0, 128, 0)")
			So(style(ps[2])[css.Color], ShouldEqual, "rgb(255, 0, 0)")
		})

		Convey("Inline currentcolor takes the parent color", func() {
			computed := style(ps[1])
			So(computed[css.Color], ShouldEqual, "rgb(0, 0, 0)")
			So(computed[css.BackgroundColor], ShouldEqual, "rgb(0, 0, 255)")
		})

		Convey("Important stylesheet declarations beat inline ones", func() {
			span := find(doc, "span")[0]
			So(style(span)[css.BorderTopColor], ShouldEqual, "rgb(255, 0, 0)")
		})

		Convey("Borders and outlines follow the inherited color", func() {
			b := find(doc, "b")[0]
			computed := style(b)
			So(computed[css.Color], ShouldEqual, "rgb(18, 52, 86)")
			So(computed[css.BorderBottomColor], ShouldEqual, "rgb(18, 52, 86)")
			So(computed[css.OutlineColor], ShouldEqual, "rgb(18, 52, 86)")
		})

		Convey("Unsupported selectors are dropped without losing the rest of the list", func() {
			b := find(doc, "section")[0]
			So(style(b)[css.Color], ShouldEqual, "rgb(18, 52, 86)")
			em, err := Parse(strings.NewReader(`<style>p:hover, em { color: #abcdef }</style><em>x</em>`))
			So(err, ShouldBeNil)
			So(style(find(em, "em")[0])[css.Color], ShouldEqual, "rgb(171, 205, 239)")
		})

		Convey("Elements that never render have no style", func() {
			_, ok := find(doc, "title")[0].ComputedStyle()
			So(ok, ShouldBeFalse)
			_, ok = find(doc, "head")[0].ComputedStyle()
			So(ok, ShouldBeFalse)
		})

		Convey("Invalid selectors are reported", func() {
			_, err := doc.Find("p[")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSetStyle(t *testing.T) {
	Convey("Given a parsed document", t, func() {
		doc := mustParse()

		Convey("Writes replace the resolved value", func() {
			p := find(doc, "p")[2]
			p.SetStyle(css.Color, "#0000ff")
			So(p.Style(), ShouldEqual, "color: #0000ff;")
			So(style(p)[css.Color], ShouldEqual, "rgb(0, 0, 255)")
		})

		Convey("Writes keep unrelated declarations and override shorthands", func() {
			span := find(doc, "span")[0]
			span.SetStyle(css.BorderTopColor, "#00ff00")
			So(span.Style(), ShouldEqual, "border-color: blue; border-top-color: #00ff00 !important;")

			computed := style(span)
			So(computed[css.BorderTopColor], ShouldEqual, "rgb(0, 255, 0)")
			So(computed[css.BorderLeftColor], ShouldEqual, "rgb(255, 0, 0)")
		})

		Convey("Writes show in the rendered document", func() {
			find(doc, "body")[0].SetStyle(css.BackgroundColor, "#101010")
			out, err := doc.HTML()
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, `<body style="background-color: #101010;">`)
		})

		Convey("Inherited colors follow a write to the parent", func() {
			section := find(doc, "section")[0]
			b := find(doc, "b")[0]
			So(style(b)[css.BorderTopColor], ShouldEqual, "rgb(18, 52, 86)")

			section.SetStyle(css.Color, "#010203")
			So(style(b)[css.BorderTopColor], ShouldEqual, "rgb(1, 2, 3)")
		})
	})
}

func TestRemove(t *testing.T) {
	Convey("Given a removed element", t, func() {
		doc := mustParse()
		div := find(doc, "div")[0]
		inner := find(doc, "div p")[0]
		doc.Remove(div)

		Convey("It and its descendants are detached", func() {
			So(div.Attached(), ShouldBeFalse)
			So(inner.Attached(), ShouldBeFalse)
			_, ok := inner.ComputedStyle()
			So(ok, ShouldBeFalse)
		})

		Convey("Writes to detached elements are ignored", func() {
			inner.SetStyle(css.Color, "#ffffff")
			So(inner.Style(), ShouldEqual, "")
		})

		Convey("Other elements are unaffected", func() {
			So(len(find(doc, "p")), ShouldEqual, 1)
			So(doc.Root().Attached(), ShouldBeTrue)
		})
	})
}

func TestPath(t *testing.T) {
	Convey("Paths are anchored at ids and disambiguate siblings", t, func() {
		doc := mustParse()
		ps := find(doc, "p")
		So(ps[0].Path(), ShouldEqual, "div#main > p:nth-of-type(1)")
		So(ps[2].Path(), ShouldEqual, "html > body > p")
	})
}

func TestPalette(t *testing.T) {
	Convey("Given the palette of a parsed document", t, func() {
		doc := mustParse()
		set := swatch.Build(swatch.Walk(doc.Root()))

		Convey("Every visible color is a swatch", func() {
			So(set.Colors(), ShouldContain, swatch.Code("ff0000"))
			So(set.Colors(), ShouldContain, swatch.Code("008000"))
			So(set.Colors(), ShouldContain, swatch.Code("0000ff"))
			So(set.Colors(), ShouldContain, swatch.Code("123456"))
			So(set.Colors(), ShouldContain, swatch.Code("ffffff"))
			So(set.Colors(), ShouldNotContain, swatch.Code("999999"))
			So(set.Colors(), ShouldNotContain, swatch.Code("ffc0cb"))
		})

		Convey("Remapping recolors the document", func() {
			set.Apply(swatch.RemapTable{"ff0000": "00ffff"})
			swatch.Repaint(set)

			again := swatch.Build(swatch.Walk(doc.Root()))
			So(again.Colors(), ShouldContain, swatch.Code("00ffff"))
			So(again.Colors(), ShouldNotContain, swatch.Code("ff0000"))
		})

		Convey("Repainting the identity changes nothing visible", func() {
			before := set.Colors()
			swatch.Repaint(set)
			So(swatch.Build(swatch.Walk(doc.Root())).Colors(), ShouldResemble, before)
		})
	})
}
