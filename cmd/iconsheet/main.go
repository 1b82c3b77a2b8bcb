package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/iconsheet"
	"github.com/bodgit/iconsheet/progmem"
	"github.com/disintegration/imaging"
	"github.com/gookit/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func exitError(err error) error {
	return cli.Exit(fmt.Sprintf("%s %v", color.Red.Sprint("ERROR:"), err), 1)
}

func tileFlags(def int) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "tile-size",
			Value: def,
			Usage: "icon tile size in pixels",
		},
		&cli.IntFlag{
			Name:  "spacing",
			Value: iconsheet.DefaultSpacing,
			Usage: "spacing between tiles in pixels",
		},
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "iconsheet"
	app.Usage = "Firmware icon sprite sheet utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "generate",
			Usage:       "Generate embedded icon arrays from a manifest",
			Description: "Crops every icon named in the manifest from its sprite sheet and writes PNG and monochrome bitmap arrays plus a lookup registry as C++ source.",
			ArgsUsage:   "MANIFEST",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   progmem.Filename,
					Usage:   "path to generated source",
				},
				&cli.StringFlag{
					Name:    "manifest",
					Aliases: []string{"m"},
					EnvVars: []string{"ICONSHEET_MANIFEST"},
					Usage:   "path to manifest, used when MANIFEST is not given",
				},
			},
			Action: func(c *cli.Context) error {
				manifest := c.Args().First()
				if manifest == "" {
					manifest = c.String("manifest")
				}
				if manifest == "" {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}

				m, err := iconsheet.Load(manifest)
				if err != nil {
					return exitError(err)
				}

				s, err := iconsheet.New(m, newLogger(c)).Generate(c.String("output"))
				if err != nil {
					return exitError(err)
				}

				fmt.Printf("%s %s\n", color.Green.Sprint("Generated:"), s.Output)
				fmt.Printf("Icons: %d\n", s.Icons)
				fmt.Printf("Approx flash usage: png=%dB + bmp=%dB + registry\n", s.PNGBytes, s.BitmapBytes)

				return nil
			},
		},
		{
			Name:        "extract",
			Usage:       "Extract individual icons from a sprite sheet",
			Description: "Writes every tile that is not blank (all white or transparent) to its own PNG file, numbered by grid position.",
			ArgsUsage:   "SHEET",
			Flags: append(tileFlags(iconsheet.DefaultExtractTileSize),
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   iconsheet.DefaultExtractDir,
					Usage:   "output directory",
				},
				&cli.StringFlag{
					Name:    "prefix",
					Aliases: []string{"p"},
					Value:   iconsheet.DefaultExtractPrefix,
					Usage:   "icon filename prefix",
				},
				&cli.IntFlag{
					Name:  "colors",
					Usage: "reduce each icon to at most this many colors",
				},
			),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}

				r, err := iconsheet.Extract(c.Args().First(), iconsheet.ExtractOptions{
					Output:   c.String("output"),
					Prefix:   c.String("prefix"),
					TileSize: c.Int("tile-size"),
					Spacing:  c.Int("spacing"),
					Colors:   c.Int("colors"),
				}, newLogger(c))
				if err != nil {
					return exitError(err)
				}

				fmt.Printf("Grid: %dx%d\n", r.Columns, r.Rows)
				fmt.Printf("%s %d icons\n", color.Green.Sprint("Extracted:"), len(r.Files))
				fmt.Printf("Skipped (blank): %d icons\n", r.Skipped)
				fmt.Printf("Output directory: %s\n", c.String("output"))

				return nil
			},
		},
		{
			Name:        "template",
			Usage:       "Create a canvas for drawing icons",
			Description: "Creates a white canvas with grey grid lines marking where each tile goes.",
			Flags: append(tileFlags(32),
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   "icon_template.png",
					Usage:   "output filename",
				},
				&cli.BoolFlag{
					Name:  "blank",
					Usage: "create blank template without grid",
				},
				&cli.BoolFlag{
					Name:  "markers",
					Usage: "show red reference markers",
				},
			),
			Action: func(c *cli.Context) error {
				opts := iconsheet.TemplateOptions{
					Size:     iconsheet.DefaultCanvasSize,
					TileSize: c.Int("tile-size"),
					Spacing:  c.Int("spacing"),
					Blank:    c.Bool("blank"),
					Markers:  c.Bool("markers"),
				}
				if opts.TileSize <= 0 || opts.Spacing < 0 {
					return exitError(errors.Errorf("invalid tile size %d or spacing %d", opts.TileSize, opts.Spacing))
				}

				if err := imaging.Save(iconsheet.Template(opts), c.String("output")); err != nil {
					return exitError(err)
				}

				fmt.Printf("%s %s\n", color.Green.Sprint("Saved:"), c.String("output"))
				if !opts.Blank {
					fmt.Printf("Icon slots: %dx%d\n", opts.Slots(), opts.Slots())
				}

				return nil
			},
		},
		{
			Name:        "show",
			Usage:       "Print an icon's monochrome bitmap",
			Description: "Encodes the manifest and prints the named icon's bitmap as it will appear on the OLED.",
			ArgsUsage:   "MANIFEST NAME",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "dataurl",
					Usage: "also print the PNG data as a data URL",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}

				m, err := iconsheet.Load(c.Args().Get(0))
				if err != nil {
					return exitError(err)
				}

				if err := show(os.Stdout, m, c.Args().Get(1), c.Bool("dataurl"), newLogger(c)); err != nil {
					return exitError(err)
				}

				return nil
			},
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
