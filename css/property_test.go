package css

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestProperty(t *testing.T) {
	Convey("Property", t, func() {
		Convey("Has a fixed enumeration of seven color properties", func() {
			So(Properties, ShouldHaveLength, 7)
			So(Properties[0], ShouldEqual, BackgroundColor)
			So(Properties[6], ShouldEqual, OutlineColor)
		})

		Convey("Names round-trip", func() {
			for _, p := range Properties {
				got, ok := PropertyByName(p.String())
				So(ok, ShouldBeTrue)
				So(got, ShouldEqual, p)
			}
		})

		Convey("Only color inherits", func() {
			So(Color.Inherited(), ShouldBeTrue)
			So(BorderTopColor.Inherited(), ShouldBeFalse)
		})

		Convey("Encodes as text in JSON", func() {
			data, err := json.Marshal(map[string]Property{"p": BorderLeftColor})
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{"p":"border-left-color"}`)

			var p Property
			So(json.Unmarshal([]byte(`"outline-color"`), &p), ShouldBeNil)
			So(p, ShouldEqual, OutlineColor)
			So(json.Unmarshal([]byte(`"width"`), &p), ShouldNotBeNil)
		})
	})
}
