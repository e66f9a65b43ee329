package main

import (
	"github.com/urfave/cli"

	"raycaster/pkg/config"
)

// WriteConfig saves the effective configuration so it can be edited.
func WriteConfig(ctx *cli.Context) error {
	cfg, log, err := setup(ctx)
	if err != nil {
		return err
	}
	defer log.Close()

	out := ctx.String("out")
	if err := config.SaveConfig(cfg, out); err != nil {
		return err
	}

	log.Infof("configuration written to %s", out)
	return nil
}
