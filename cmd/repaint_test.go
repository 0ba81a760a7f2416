package cmd

import (
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/swatchkit/swatchkit/dom"
	"github.com/swatchkit/swatchkit/filesystem"
)

var errFlush = errors.New("flush failed")

// stubbornFs hands out files that fail to close.
type stubbornFs struct {
	afero.Fs
}

func (s stubbornFs) Create(name string) (afero.File, error) {
	f, err := s.Fs.Create(name)
	if err != nil {
		return nil, err
	}
	return stubbornFile{f}, nil
}

type stubbornFile struct {
	afero.File
}

func (f stubbornFile) Close() error {
	_ = f.File.Close()
	return errFlush
}

func TestWriteDocument(t *testing.T) {
	Convey("Given a parsed document", t, func() {
		doc, err := dom.Parse(strings.NewReader(`<p style="color: #ff0000">hi</p>`))
		So(err, ShouldBeNil)

		Convey("It is rendered to the target file", func() {
			filesystem.SetMemMapFs()
			So(writeDocument(doc, "/out.html"), ShouldBeNil)

			data, err := filesystem.API().ReadFile("/out.html")
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `style="color: #ff0000"`)
		})

		Convey("A failed close is reported", func() {
			filesystem.Use(stubbornFs{afero.NewMemMapFs()})
			err := writeDocument(doc, "/out.html")
			So(errors.Is(err, errFlush), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "close /out.html")
		})

		Reset(func() {
			filesystem.SetMemMapFs()
		})
	})
}

func TestRemapFlags(t *testing.T) {
	Convey("Given the repaint flags", t, func() {
		filesystem.SetMemMapFs()
		flags := repaintCmd.Flags()

		Reset(func() {
			_ = flags.Set("map-file", "")
			_ = flags.Lookup("map").Value.(interface{ Replace([]string) error }).Replace(nil)
		})

		Convey("Pairs override the map file", func() {
			So(filesystem.API().WriteFile("/map.json", []byte(`{"ff0000": "00ff00", "000000": "111111"}`), 0o644), ShouldBeNil)
			So(flags.Set("map-file", "/map.json"), ShouldBeNil)
			So(flags.Set("map", "ff0000 = 0000ff"), ShouldBeNil)

			raw, err := remapFlags(repaintCmd)
			So(err, ShouldBeNil)
			So(raw, ShouldResemble, map[string]string{"ff0000": "0000ff", "000000": "111111"})
		})

		Convey("Pairs without a separator are rejected", func() {
			So(flags.Set("map", "ff0000"), ShouldBeNil)
			_, err := remapFlags(repaintCmd)
			So(err, ShouldNotBeNil)
		})
	})
}
