package version

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
	"github.com/swatchkit/swatchkit/color"
	"github.com/swatchkit/swatchkit/constant"
	"github.com/swatchkit/swatchkit/icon"
	"github.com/swatchkit/swatchkit/key"
	"github.com/swatchkit/swatchkit/style"
	"github.com/swatchkit/swatchkit/util"
)

// Notify prints a notice when a newer release than the running one is available.
func Notify(ctx context.Context) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	if ctx == nil {
		ctx = context.Background()
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	version, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(version, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint(ReleasesURL+"/tag/v"+version),
	)
}
