package main

import (
	"github.com/urfave/cli"

	"raycaster/pkg/viewer"
)

// View opens the interactive window.
func View(ctx *cli.Context) error {
	cfg, log, err := setup(ctx)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Starting raycaster viewer...")
	v, err := viewer.NewEngine(cfg, log)
	if err != nil {
		return err
	}

	log.Info("Viewer initialized, starting render loop...")
	v.Run()
	return nil
}
