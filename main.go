// Package main is the entry point for the swatchkit application.
package main

import (
	"github.com/samber/lo"
	"github.com/swatchkit/swatchkit/cmd"
	"github.com/swatchkit/swatchkit/config"
	"github.com/swatchkit/swatchkit/internal/cache"
	"github.com/swatchkit/swatchkit/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cache.CollectGarbage()

	cmd.Execute()
}
