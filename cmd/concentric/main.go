// Command concentric generates concentric ring images into a directory.
//
// Usage:
//
//	concentric [-out dir] [-n count]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ringfield/concentric"
	"github.com/rs/zerolog"
)

func main() {
	logger := concentric.NewLogger(os.Stdout)
	if err := run(os.Args[1:], logger); err != nil {
		logger.Fatal().Err(err).Msg("batch aborted")
	}
}

func run(args []string, logger zerolog.Logger) error {
	fs := flag.NewFlagSet("concentric", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	out := fs.String("out", "Images", "directory to write images to")
	n := fs.Int("n", 1, "number of images to generate")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	sc := concentric.DefaultScene()
	sc.Logger = logger
	return sc.GenerateBatch(*out, *n)
}
