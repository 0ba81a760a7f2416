package log

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/swatchkit/swatchkit/filesystem"
	"github.com/swatchkit/swatchkit/key"
	"github.com/swatchkit/swatchkit/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)

		Convey("Setup succeeds and the facade stays inert", func() {
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeFalse)
			So(func() { Infof("ignored %d", 1) }, ShouldNotPanic)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		defer viper.Set(key.LogsWrite, false)

		Convey("Setup creates today's log file", func() {
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeTrue)

			path := filepath.Join(where.Logs(), fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
			So(lo.Must(filesystem.API().Exists(path)), ShouldBeTrue)

			Convey("And entries are written to it", func() {
				WithFields(map[string]any{"swatches": 3}).Infof("palette built")
				data := lo.Must(filesystem.API().ReadFile(path))
				So(string(data), ShouldContainSubstring, "palette built")
			})
		})
	})
}
