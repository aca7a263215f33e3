package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/pixelate"
	"github.com/bodgit/pixelate/dither"
	"github.com/bodgit/pixelate/palette"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v2"
)

const defaultDB = "pixelate.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *slog.Logger {
	level := slog.LevelWarn
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
}

func newPixelate(c *cli.Context) (*pixelate.Pixelate, error) {
	db, err := pixelate.NewDB(c.String("db"))
	if err != nil {
		return nil, err
	}
	return pixelate.New(db, newLogger(c)), nil
}

func conversionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "width",
			Aliases: []string{"w"},
			Value:   64,
			Usage:   "width of the pixel grid",
		},
		&cli.StringFlag{
			Name:    "dither",
			Aliases: []string{"d"},
			Value:   string(dither.None),
			Usage:   fmt.Sprintf("dithering algorithm, one of %v", dither.Algorithms()),
		},
		&cli.Float64Flag{
			Name:    "strength",
			Aliases: []string{"s"},
			Value:   1,
			Usage:   "dither strength, from 0 to 1",
		},
		&cli.StringFlag{
			Name:    "palette",
			Aliases: []string{"p"},
			Usage:   "palette name, or comma-separated hex colors",
		},
		&cli.BoolFlag{
			Name:    "upscale",
			Aliases: []string{"u"},
			Usage:   "scale the result back up to the source size",
		},
	}
}

func conversionConfig(c *cli.Context, m *pixelate.Pixelate) (pixelate.Config, error) {
	cfg := pixelate.Config{
		TargetWidth: c.Int("width"),
		Algorithm:   dither.Algorithm(c.String("dither")),
		Strength:    c.Float64("strength"),
	}

	if name := c.String("palette"); name != "" {
		var (
			p   palette.Palette
			err error
		)
		if strings.ContainsAny(name, "#,") {
			p, err = palette.Parse(strings.Split(name, ",")...)
		} else {
			p, err = m.Palette(name)
		}
		if err != nil {
			return pixelate.Config{}, err
		}
		cfg.Palette = p
	}

	if c.Bool("upscale") {
		cfg.OutputMode = pixelate.OutputOriginal
	}

	return cfg, nil
}

func main() {
	_ = godotenv.Load()

	app := cli.NewApp()

	app.Name = "pixelate"
	app.Usage = "Pixel art conversion utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"PIXELATE_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to palette database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert a single image to pixel art",
			Description: "",
			ArgsUsage:   "SOURCE DESTINATION",
			Flags:       conversionFlags(),
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := newPixelate(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer m.Close()

				cfg, err := conversionConfig(c, m)
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := m.File(c.Args().Get(0), c.Args().Get(1), cfg); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Convert a directory tree of images",
			Description: "",
			ArgsUsage:   "SOURCE DESTINATION",
			Flags:       conversionFlags(),
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := newPixelate(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer m.Close()

				cfg, err := conversionConfig(c, m)
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := m.Scan(c.Args().Get(0), c.Args().Get(1), cfg); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "palette",
			Usage: "Manage palettes",
			Subcommands: []*cli.Command{
				{
					Name:  "list",
					Usage: "List the available palettes",
					Action: func(c *cli.Context) error {
						m, err := newPixelate(c)
						if err != nil {
							return cli.Exit(err, 1)
						}
						defer m.Close()

						names, err := m.Palettes()
						if err != nil {
							return cli.Exit(err, 1)
						}

						for _, name := range names {
							fmt.Println(name)
						}

						return nil
					},
				},
				{
					Name:      "import",
					Usage:     "Import a palette from a JSON file",
					ArgsUsage: "FILE",
					Action: func(c *cli.Context) error {
						if c.NArg() < 1 {
							cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
						}

						m, err := newPixelate(c)
						if err != nil {
							return cli.Exit(err, 1)
						}
						defer m.Close()

						name, err := m.ImportPalette(c.Args().First())
						if err != nil {
							return cli.Exit(err, 1)
						}

						fmt.Println(name)

						return nil
					},
				},
				{
					Name:      "show",
					Usage:     "Show the colors in a palette",
					ArgsUsage: "NAME",
					Action: func(c *cli.Context) error {
						if c.NArg() < 1 {
							cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
						}

						m, err := newPixelate(c)
						if err != nil {
							return cli.Exit(err, 1)
						}
						defer m.Close()

						p, err := m.Palette(c.Args().First())
						if err != nil {
							return cli.Exit(err, 1)
						}

						for _, col := range p {
							fmt.Printf("#%02x%02x%02x\n", col.R, col.G, col.B)
						}

						return nil
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
