package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"io/ioutil"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/dotbraille"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "dotbraille"
	app.Usage = "A command-line tool for printing images as unicode braille symbols."
	app.UsageText = "1) dotbraille [options] [file|url]\n" +
		/*      */ "   2) dotbraille [options] - < [file]"
	app.Author = "Kevin Cantwell"
	app.Email = "kevin.cantwell@gmail.com"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "width,w",
			Usage: "`COLUMNS` of braille symbols in the output.",
			Value: dotbraille.DefaultConfig().Width,
		},
		cli.Float64Flag{
			Name:  "threshold,t",
			Usage: "OkLab `LIGHTNESS` between 0 and 1 at which a dot is drawn.",
			Value: dotbraille.DefaultConfig().Threshold,
		},
		cli.BoolFlag{
			Name:  "invert,i",
			Usage: "Draws dots for dark pixels, for light terminal backgrounds.",
		},
		cli.BoolFlag{
			Name:  "dither,d",
			Usage: "Disables error diffusion dithering.",
		},
		cli.StringFlag{
			Name:  "config,c",
			Usage: "YAML `FILE` with default settings. Flags take precedence.",
		},
		cli.StringFlag{
			Name:  "filter",
			Usage: "Resampling `FILTER`: nearest or linear.",
			Value: dotbraille.DefaultConfig().Filter,
		},
		cli.StringFlag{
			Name:  "scale",
			Usage: "`MODE` = fill crops to the output aspect ratio, stretch does not.",
			Value: dotbraille.DefaultConfig().Scale,
		},
		cli.StringFlag{
			Name:  "diffusion",
			Usage: "Error diffusion `KERNEL`, one of " + strings.Join(dotbraille.Kernels(), ", ") + ".",
			Value: dotbraille.DefaultKernel,
		},
		cli.Float64Flag{
			Name:  "strength",
			Usage: "`STRENGTH` of error diffusion. 1 is full strength, 0 is none.",
			Value: float64(dotbraille.DefaultConfig().Strength),
		},
		cli.BoolFlag{
			Name:  "fit,f",
			Usage: "Sets the width to the width of the terminal.",
		},
		cli.StringFlag{
			Name:  "text",
			Usage: "Renders `TEXT` instead of an image.",
		},
		cli.Float64Flag{
			Name:  "gamma,g",
			Usage: "`GAMMA` = 1.0 gives the original image. GAMMA less than 1.0 darkens the image and GAMMA greater than 1.0 lightens it.",
			Value: dotbraille.DefaultConfig().Gamma,
		},
		cli.Float64Flag{
			Name:  "brightness,b",
			Usage: "`BRIGHTNESS` = 0 gives the original image. BRIGHTNESS = -100 gives solid black image. BRIGHTNESS = 100 gives solid white image.",
		},
		cli.Float64Flag{
			Name:  "contrast",
			Usage: "`CONTRAST` = 0 gives the original image. CONTRAST = -100 gives solid grey image. CONTRAST = 100 gives maximum contrast.",
		},
		cli.Float64Flag{
			Name:  "sharpen,s",
			Usage: "`SHARPEN` = 0 gives the original image. SHARPEN greater than 0 sharpens the image.",
		},
		cli.Float64Flag{
			Name:  "sigmoid-midpoint",
			Usage: "`MIDPOINT` of contrast that must be between 0 and 1.",
			Value: dotbraille.DefaultConfig().SigmoidMidpoint,
		},
		cli.Float64Flag{
			Name:  "sigmoid-factor",
			Usage: "`FACTOR` = 0 gives the original image. FACTOR greater than 0 increases contrast. FACTOR less than 0 decreases contrast.",
		},
		// -v is taken by --version.
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Logs the conversion to stderr.",
		},
	}
	app.Action = func(c *cli.Context) error {
		logger := log.New(ioutil.Discard, "dotbraille: ", 0)
		if c.Bool("verbose") {
			logger.SetOutput(stderr)
		}

		cfg, err := config(c)
		if err != nil {
			return err
		}
		logger.Printf("config: %+v", cfg)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		img, err := input(ctx, c)
		if err != nil {
			return err
		}
		b := img.Bounds()
		logger.Printf("source: %dx%d", b.Dx(), b.Dy())
		if size, err := dotbraille.Geometry(b.Dx(), b.Dy(), cfg.Width); err == nil {
			logger.Printf("output: %d columns, %d rows (%v dots)", size.Cols, size.Rows, size.Dots())
		}

		return dotbraille.NewEncoder(stdout, dotbraille.WithConfig(cfg)).Encode(img)
	}
	return app
}

// config layers the config file and explicitly set flags over the defaults.
func config(c *cli.Context) (dotbraille.Config, error) {
	cfg := dotbraille.DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = dotbraille.LoadConfig(path); err != nil {
			return cfg, err
		}
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.Bool("fit") {
		if cols, ok := terminalColumns(); ok {
			cfg.Width = cols
		}
	}
	if c.IsSet("threshold") {
		cfg.Threshold = c.Float64("threshold")
	}
	if c.Bool("invert") {
		cfg.Invert = true
	}
	if c.Bool("dither") {
		cfg.Dither = false
	}
	if c.IsSet("filter") {
		cfg.Filter = c.String("filter")
	}
	if c.IsSet("scale") {
		cfg.Scale = c.String("scale")
	}
	if c.IsSet("diffusion") {
		cfg.Diffusion = c.String("diffusion")
	}
	if c.IsSet("strength") {
		cfg.Strength = float32(c.Float64("strength"))
	}
	if c.IsSet("gamma") {
		cfg.Gamma = c.Float64("gamma")
	}
	if c.IsSet("brightness") {
		cfg.Brightness = c.Float64("brightness")
	}
	if c.IsSet("contrast") {
		cfg.Contrast = c.Float64("contrast")
	}
	if c.IsSet("sharpen") {
		cfg.Sharpen = c.Float64("sharpen")
	}
	if c.IsSet("sigmoid-midpoint") {
		cfg.SigmoidMidpoint = c.Float64("sigmoid-midpoint")
	}
	if c.IsSet("sigmoid-factor") {
		cfg.SigmoidFactor = c.Float64("sigmoid-factor")
	}
	return cfg, cfg.Validate()
}

func input(ctx context.Context, c *cli.Context) (image.Image, error) {
	if c.IsSet("text") {
		return dotbraille.Label(c.String("text")), nil
	}
	name := c.Args().First()
	if name == "" {
		return nil, errors.New("an image path, url or - is required")
	}
	return dotbraille.Open(ctx, name)
}
