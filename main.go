package main

import (
	"fmt"
	"os"

	"github.com/david14higgins/Pathtracer/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "render scenes using an offline CPU ray tracer"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "render",
			Usage:     "render a scene file to a PPM image",
			ArgsUsage: "scene.json",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "useBVH",
					Usage: "accelerate intersections with a bounding volume hierarchy",
				},
				cli.BoolFlag{
					Name:  "useAA",
					Usage: "enable stratified antialiasing",
				},
				cli.IntFlag{
					Name:  "aa-grid",
					Value: 8,
					Usage: "antialiasing stratification grid edge",
				},
				cli.IntFlag{
					Name:  "path-samples",
					Value: 16,
					Usage: "internal paths averaged per primary ray in pathtracer mode",
				},
				cli.IntFlag{
					Name:  "rr-bounces",
					Value: 0,
					Usage: "bounce depth beyond which russian roulette termination applies (0 disables it)",
				},
				cli.BoolFlag{
					Name:  "tonemap",
					Usage: "apply Reinhard-with-white-point tone mapping before quantization",
				},
				cli.IntFlag{
					Name:  "seed",
					Value: 1,
					Usage: "base RNG seed",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output PPM path (default: renders/<scene-basename>.ppm)",
				},
			},
			Action: cmd.RenderFrame,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
