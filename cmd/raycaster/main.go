package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/urfave/cli"
)

func init() {
	// GLFW requires the program to be running on the main thread
	runtime.LockOSThread()
}

func main() {
	app := cli.NewApp()
	app.Name = "raycaster"
	app.Usage = "render a shaded scene with a multi-threaded CPU ray caster"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: "path to a YAML configuration file",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "view",
			Usage:  "open an interactive window rendering the animated scene",
			Action: View,
		},
		{
			Name:  "render",
			Usage: "render frames to an image file without opening a window",
			Description: `
Render the demo scene headless. With --frames greater than one the scene is
animated and the last frame is written. A terminal preview of the result can
be printed with --ascii.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width (overrides the configuration)",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height (overrides the configuration)",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render goroutines (overrides the configuration)",
				},
				cli.IntFlag{
					Name:  "frames",
					Value: 1,
					Usage: "number of animation frames to render",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
				cli.BoolFlag{
					Name:  "ascii",
					Usage: "print an ASCII preview of the frame to stdout",
				},
			},
			Action: Render,
		},
		{
			Name:  "config",
			Usage: "write the effective configuration as YAML",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Value: "config.yaml",
					Usage: "destination file",
				},
			},
			Action: WriteConfig,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
