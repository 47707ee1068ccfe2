// Command colorwheel converts CSS colors and renders color wheel previews.
//
// Usage:
//
//	colorwheel convert [-to rgb|rgba|hsl|hsla|hsv|hsva|hex] [-v] COLOR
//	colorwheel render [-config profile.toml] [-size N] [-output wheel.png] [-caption] [-v] COLOR
//	colorwheel names
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/colorwheel"
	"github.com/gogpu/colorwheel/css"
	"github.com/gogpu/colorwheel/render"
)

// errUsage marks command line mistakes; run exits with status 2 for them.
var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	err := dispatch(args, stdout, stderr)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr, "usage: colorwheel convert|render|names [flags] [COLOR]")
		return 2
	default:
		fmt.Fprintln(stderr, "colorwheel:", err)
		return 1
	}
}

func dispatch(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}
	switch args[0] {
	case "convert":
		return runConvert(args[1:], stdout, stderr)
	case "render":
		return runRender(args[1:], stdout, stderr)
	case "names":
		for _, name := range css.Names() {
			fmt.Fprintf(stdout, "%-22s %s\n", name, css.Hex6(name))
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

// enableLogging routes library logs to stderr.
func enableLogging(stderr io.Writer) {
	colorwheel.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

// colorArg returns the single positional COLOR argument. Spaces inside
// functional notation are allowed, so all remaining arguments are joined.
func colorArg(fs *flag.FlagSet) (string, error) {
	if fs.NArg() == 0 {
		return "", fmt.Errorf("%w: missing COLOR", errUsage)
	}
	return strings.Join(fs.Args(), " "), nil
}

func runConvert(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		to      = fs.String("to", "hex", "target notation: rgb, rgba, hsl, hsla, hsv, hsva or hex")
		verbose = fs.Bool("v", false, "log to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	text, err := colorArg(fs)
	if err != nil {
		return err
	}
	if *verbose {
		enableLogging(stderr)
		defer colorwheel.SetLogger(nil)
	}

	out, err := convert(text, *to)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, out)
	return nil
}

// convert parses text best-effort and formats it in the notation named by to.
func convert(text, to string) (string, error) {
	rgba := css.ParseRGB(text)
	c := css.NewRGBA(rgba[0], rgba[1], rgba[2], rgba[3])
	if strings.EqualFold(to, "hex") {
		return css.FormatHex(c), nil
	}
	space, err := css.ParseSpace(to)
	if err != nil {
		return "", fmt.Errorf("%w: -to: %w", errUsage, err)
	}
	out, err := c.To(space)
	if err != nil {
		return "", err
	}
	return css.FormatFunc(out), nil
}

func runRender(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		profile = fs.String("config", "", "TOML render profile")
		size    = fs.Float64("size", 0, "canvas size in pixels (default 256)")
		output  = fs.String("output", "colorwheel.png", "output file")
		caption = fs.Bool("caption", false, "print the selection below the wheel")
		verbose = fs.Bool("v", false, "log to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	text, err := colorArg(fs)
	if err != nil {
		return err
	}

	var conf config
	if *profile != "" {
		if conf, err = readConfig(*profile); err != nil {
			return err
		}
	}
	// Flags given on the command line win over the profile.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			conf.Size = *size
		case "caption":
			conf.Caption = *caption
		case "v":
			conf.Verbose = *verbose
		}
	})
	if conf.Verbose {
		enableLogging(stderr)
		defer colorwheel.SetLogger(nil)
	}

	w, err := colorwheel.New(conf.wheelOptions()...)
	if err != nil {
		return err
	}
	sel := colorwheel.SelectionFromCSS(text)
	if err := render.SavePNG(*output, w, sel, render.WithCaption(conf.Caption)); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s saved to %s (%gx%g)\n", sel.Hex(), *output, w.Size(), w.Size())
	return nil
}
