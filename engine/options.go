package engine

import "git.gammaspectra.live/P2Pool/softaes/aes/mode"

const DefaultKeySize = 16
const DefaultScheduleCacheSize = 16

type options struct {
	mode              mode.Mode
	keySize           int
	keyHex            string
	ivHex             string
	workers           int
	scheduleCacheSize int
}

type Option func(o *options)

func WithMode(m mode.Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithKeySize sets the size in bytes of the random key generated when WithKey is not given
func WithKeySize(size int) Option {
	return func(o *options) {
		o.keySize = size
	}
}

func WithKey(keyHex string) Option {
	return func(o *options) {
		o.keyHex = keyHex
	}
}

func WithIV(ivHex string) Option {
	return func(o *options) {
		o.ivHex = ivHex
	}
}

// WithWorkers is passed through to the block mode driver, see mode.WithWorkers
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithScheduleCacheSize sets how many expanded key schedules are kept
func WithScheduleCacheSize(size int) Option {
	return func(o *options) {
		o.scheduleCacheSize = size
	}
}
