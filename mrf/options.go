// SPDX-License-Identifier: MIT
// Package: factorgraph/mrf
//
// options.go - functional options for the MRF builders.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors only record values; validation happens once in
//     resolve so user input always surfaces as an error, never a panic.
//   • Determinism is explicit: the seed is part of the configuration and the
//     random source is created per call. No package-level RNG exists.

package mrf

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

// Defaults applied when no option overrides them.
const (
	DefaultSigma           = 0.5
	DefaultSmoothnessSigma = 0.5
)

// DefaultSeed is the sampling seed used when WithSeed is not given.
const DefaultSeed int64 = 42

// Option customises a builder call.
type Option func(*config)

// config is the resolved set of builder parameters.
type config struct {
	sigma           float64
	smoothnessSigma float64
	seed            int64
	scheme          RowScheme
	logger          zerolog.Logger
}

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) config {
	c := config{
		sigma:           DefaultSigma,
		smoothnessSigma: DefaultSmoothnessSigma,
		seed:            DefaultSeed,
		scheme:          LetterRows,
		logger:          zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// validate checks the numeric parameters.
func (c config) validate() error {
	if !validSigma(c.sigma) {
		return fmt.Errorf("sigma=%g: %w", c.sigma, ErrInvalidSigma)
	}
	if !validSigma(c.smoothnessSigma) {
		return fmt.Errorf("smoothness sigma=%g: %w", c.smoothnessSigma, ErrInvalidSigma)
	}
	return nil
}

func validSigma(s float64) bool {
	return !math.IsNaN(s) && !math.IsInf(s, 0) && s > 0
}

// WithSigma sets the observation noise standard deviation (default 0.5).
// It drives both the sampled noise and the data-factor noise model.
func WithSigma(sigma float64) Option {
	return func(c *config) { c.sigma = sigma }
}

// WithSmoothnessSigma sets the pairwise smoothness standard deviation
// (default 0.5).
func WithSmoothnessSigma(sigma float64) Option {
	return func(c *config) { c.smoothnessSigma = sigma }
}

// WithSeed fixes the sampling seed (default 42). Every seed, including 0,
// is used verbatim.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithRowScheme selects row labelling and key layout (default LetterRows).
func WithRowScheme(s RowScheme) Option {
	return func(c *config) { c.scheme = s }
}

// WithLogger attaches a logger for a debug-level build summary.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}
