package concentric

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/ringfield/concentric/canvas"
	"github.com/ringfield/concentric/geom"
	"github.com/rs/zerolog"
)

// MaxSeed is the largest seed returned by [NewSeed].
const MaxSeed = 100_000_000

// NewSeed returns a seed chosen uniformly at random from [0, MaxSeed].
func NewSeed() int64 {
	return rand.Int64N(MaxSeed + 1)
}

// NewRand returns the random stream for seed. Equal seeds yield equal
// streams.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// FileName returns the base name of the image generated for seed.
func FileName(seed int64) string {
	return fmt.Sprintf("concentric_circles_%d.png", seed)
}

// IntRange is the half-open integer interval [Min, Max).
type IntRange struct {
	Min, Max int
}

// Draw returns an integer drawn uniformly from r. An empty range yields Min.
func (r IntRange) Draw(rng *rand.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.IntN(r.Max-r.Min)
}

// Scene describes how each image of a batch is generated. The layout bounds
// are drawn per image from the given ranges.
type Scene struct {
	Width, Height int
	// Background fills the canvas and is the center colour of the radial
	// background gradient; GradientEdge is its colour at the long edge
	// distance.
	Background   color.RGBA
	GradientEdge color.RGBA
	Hues         []float64

	MinThickness IntRange
	MaxThickness IntRange
	MinPadding   IntRange
	MaxPadding   IntRange

	ArcProbability int
	RandomSeam     bool

	Save   canvas.SaveOptions
	Logger zerolog.Logger
}

// DefaultScene returns the standard 2000×2000 scene, logging to standard
// output.
func DefaultScene() Scene {
	return Scene{
		Width:          2000,
		Height:         2000,
		Background:     color.RGBA{11, 9, 9, 255},
		GradientEdge:   color.RGBA{25, 23, 23, 255},
		Hues:           []float64{0.58611, 0.98611, 0.25},
		MinThickness:   IntRange{10, 20},
		MaxThickness:   IntRange{50, 200},
		MinPadding:     IntRange{5, 25},
		MaxPadding:     IntRange{75, 150},
		ArcProbability: 9000,
		Save:           canvas.DefaultSaveOptions,
		Logger:         NewLogger(os.Stdout),
	}
}

// Layout returns the layout for seed, drawing the bounds from the scene's
// ranges.
func (sc Scene) Layout(seed int64) Layout {
	rng := NewRand(seed)
	minThickness := sc.MinThickness.Draw(rng)
	maxThickness := sc.MaxThickness.Draw(rng)
	minPadding := sc.MinPadding.Draw(rng)
	maxPadding := sc.MaxPadding.Draw(rng)
	return DefaultLayout.
		WithThickness(float64(minThickness), float64(maxThickness)).
		WithPadding(float64(minPadding), float64(maxPadding)).
		WithArcProbability(sc.ArcProbability).
		WithRandomSeam(sc.RandomSeam)
}

// Render paints the image for seed onto a new canvas.
func (sc Scene) Render(seed int64) (*canvas.Canvas, Stats, error) {
	bg := sc.Background
	c := canvas.New(sc.Width, sc.Height, &bg)

	err := c.Paint(func(s *canvas.Session) error {
		center := geom.Pt(float64(sc.Width)/2, float64(sc.Height)/2)
		radius := float64(max(sc.Width, sc.Height))
		s.FillRect(c.Bounds(), canvas.NewRadialGradient(center, radius, sc.Background, sc.GradientEdge))
		return nil
	})
	if err != nil {
		return nil, Stats{}, err
	}

	layout := sc.Layout(seed)
	var st Stats
	err = c.Paint(func(s *canvas.Session) error {
		st = Compose(s, NewRand(seed), sc.Hues, layout)
		return nil
	})
	if err != nil {
		return nil, Stats{}, err
	}
	return c, st, nil
}

// Result reports the outcome of generating one image.
type Result struct {
	Seed    int64
	Path    string
	Stats   Stats
	Saved   bool
	SaveErr error
	Elapsed time.Duration
}

// Generate renders the image for seed and saves it to dir. Failing to save
// is reported in the result and logged, not returned, except for
// [canvas.ErrExists], which aborts with an error.
func (sc Scene) Generate(dir string, seed int64) (Result, error) {
	started := time.Now()
	res := Result{
		Seed: seed,
		Path: filepath.Join(dir, FileName(seed)),
	}

	c, st, err := sc.Render(seed)
	if err != nil {
		return res, fmt.Errorf("render seed %d: %w", seed, err)
	}
	res.Stats = st

	if err := c.Save(res.Path, sc.Save); err != nil {
		if errors.Is(err, canvas.ErrExists) {
			return res, err
		}
		res.SaveErr = err
		sc.Logger.Error().Err(err).Int64("seed", seed).Str("path", res.Path).Msg("failed to save image")
	} else {
		res.Saved = true
	}
	res.Elapsed = time.Since(started)

	sc.Logger.Info().
		Int64("seed", seed).
		Str("path", res.Path).
		Int("rings", st.Rings).
		Int("arcs", st.Arcs).
		Bool("saved", res.Saved).
		Dur("elapsed", res.Elapsed).
		Msg("generated image")
	return res, nil
}

// GenerateBatch generates count images into dir, one after another, each
// with a fresh seed from [NewSeed]. Images that fail to save are skipped.
func (sc Scene) GenerateBatch(dir string, count int) error {
	var saved int
	for i := range count {
		res, err := sc.Generate(dir, NewSeed())
		if err != nil {
			return fmt.Errorf("image %d of %d: %w", i+1, count, err)
		}
		if res.Saved {
			saved++
		}
	}
	sc.Logger.Info().Int("requested", max(count, 0)).Int("saved", saved).Str("dir", dir).Msg("batch complete")
	return nil
}

// GenerateBatch generates count images into dir using [DefaultScene].
func GenerateBatch(dir string, count int) error {
	return DefaultScene().GenerateBatch(dir, count)
}
