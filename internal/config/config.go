package config

import (
	"errors"
	"fmt"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// DefaultOutputDir is the Flutter iOS runner's app icon set, relative to the
// project root.
const DefaultOutputDir = "ios/Runner/Assets.xcassets/AppIcon.appiconset"

type Options struct {
	OutputDir string `long:"out-dir" env:"ICONGEN_OUT_DIR" default:"ios/Runner/Assets.xcassets/AppIcon.appiconset" description:"Directory the icon PNGs are written to"`
	Debug     bool   `long:"debug" env:"ICONGEN_DEBUG" description:"Enable verbose debug output"`
}

func ParseOptions() (Options, error) {
	return ParseArgs(nil)
}

// ParseArgs parses args, or the process arguments when args is nil, after
// loading an optional .env file from the working directory.
func ParseArgs(args []string) (Options, error) {
	_ = godotenv.Load()
	opts := Options{}
	parser := flags.NewParser(&opts, flags.Default)
	var (
		rest []string
		err  error
	)
	if args == nil {
		rest, err = parser.Parse()
	} else {
		rest, err = parser.ParseArgs(args)
	}
	if err != nil {
		return Options{}, err
	}
	if len(rest) > 0 {
		return Options{}, fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
	}
	return opts, nil
}

func Validate(opts Options) error {
	if strings.TrimSpace(opts.OutputDir) == "" {
		return errors.New("output directory is required")
	}
	return nil
}
