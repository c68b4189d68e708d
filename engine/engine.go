package engine

import (
	"crypto/rand"
	"fmt"
	"slices"
	"sync"

	"git.gammaspectra.live/P2Pool/softaes/aes"
	"git.gammaspectra.live/P2Pool/softaes/aes/mode"
	"git.gammaspectra.live/P2Pool/softaes/types"
	"git.gammaspectra.live/P2Pool/softaes/utils"
	"github.com/floatdrop/lru"
	fasthex "github.com/tmthrgd/go-hex"
)

// Engine holds a cipher configuration (mode, key, optional IV) and runs the block mode driver with it.
// All methods are safe for concurrent use.
type Engine struct {
	lock     sync.RWMutex
	mode     mode.Mode
	key      types.Bytes
	iv       types.Bytes
	schedule aes.Schedule

	workers int

	cacheLock sync.Mutex
	cache     *lru.LRU[string, aes.Schedule]
}

// New creates an Engine. Without WithKey a random key of WithKeySize bytes is generated, without WithIV a random IV is generated.
func New(opts ...Option) (*Engine, error) {
	o := options{
		mode:              mode.ECB,
		keySize:           DefaultKeySize,
		scheduleCacheSize: DefaultScheduleCacheSize,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.scheduleCacheSize <= 0 {
		o.scheduleCacheSize = 1
	}

	e := &Engine{
		workers: o.workers,
		cache:   lru.New[string, aes.Schedule](o.scheduleCacheSize),
	}

	var err error
	if o.keyHex == "" {
		if o.keyHex, err = GenerateKey(o.keySize); err != nil {
			return nil, err
		}
	}
	if o.ivHex == "" {
		if o.ivHex, err = GenerateIV(); err != nil {
			return nil, err
		}
	}

	if err = e.Configure(o.mode, o.keyHex, o.ivHex); err != nil {
		return nil, err
	}
	return e, nil
}

func decodeHex(what, s string) (types.Bytes, error) {
	buf, err := fasthex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidHex, what, err)
	}
	return buf, nil
}

// Configure replaces mode, key and IV. ivHex may be empty unless m is mode.CBC.
// On error the previous configuration is kept.
func (e *Engine) Configure(m mode.Mode, keyHex, ivHex string) error {
	switch m {
	case mode.ECB, mode.CBC:
	default:
		return &mode.UnsupportedModeError{Mode: m}
	}

	key, err := decodeHex("key", keyHex)
	if err != nil {
		return err
	}

	var iv types.Bytes
	if ivHex != "" {
		if iv, err = decodeHex("iv", ivHex); err != nil {
			return err
		}
		if len(iv) != aes.BlockSize {
			return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidIVLength, len(iv), aes.BlockSize)
		}
	} else if m == mode.CBC {
		return fmt.Errorf("%w: %s requires a %d byte IV", ErrInvalidIVLength, m, aes.BlockSize)
	}

	schedule, err := e.expand(key)
	if err != nil {
		return err
	}

	e.lock.Lock()
	defer e.lock.Unlock()
	e.mode = m
	e.key = key
	e.iv = iv
	e.schedule = schedule

	utils.Debugf("Engine", "configured mode %s, AES-%d, iv = %t", m, len(key)*8, iv != nil)
	return nil
}

// expand returns the cached schedule for key, expanding it on a miss. The returned schedule is shared and must not be modified.
func (e *Engine) expand(key []byte) (aes.Schedule, error) {
	e.cacheLock.Lock()
	defer e.cacheLock.Unlock()

	if schedule := e.cache.Get(string(key)); schedule != nil {
		return *schedule, nil
	}

	schedule, err := aes.ExpandKey(key)
	if err != nil {
		return nil, err
	}
	utils.Debugf("Engine", "expanded AES-%d key schedule, %d cached", len(key)*8, e.cache.Len())
	e.cache.Set(string(key), schedule)
	return schedule, nil
}

// ExpandKey decodes keyHex and returns its round keys, schedule[0] being the first round key
func (e *Engine) ExpandKey(keyHex string) (aes.Schedule, error) {
	key, err := decodeHex("key", keyHex)
	if err != nil {
		return nil, err
	}
	schedule, err := e.expand(key)
	if err != nil {
		return nil, err
	}
	return slices.Clone(schedule), nil
}

func (e *Engine) crypt(direction mode.Direction, data []byte) ([]byte, error) {
	e.lock.RLock()
	m, schedule := e.mode, e.schedule
	e.lock.RUnlock()

	var opts []mode.Option
	if e.workers != 0 {
		opts = append(opts, mode.WithWorkers(e.workers))
	}
	return mode.Crypt(m, direction, data, schedule, opts...)
}

// Encrypt encrypts plaintext under the configured mode and key. The final block is zero padded.
func (e *Engine) Encrypt(plaintext []byte) ([]byte, error) {
	return e.crypt(mode.Encrypt, plaintext)
}

// Decrypt decrypts ciphertext under the configured mode and key. Padding added by Encrypt is kept.
func (e *Engine) Decrypt(ciphertext []byte) ([]byte, error) {
	return e.crypt(mode.Decrypt, ciphertext)
}

func (e *Engine) EncryptFile(inputPath, outputPath string) error {
	return fmt.Errorf("%w: encrypt file %s", ErrNotImplemented, inputPath)
}

func (e *Engine) DecryptFile(inputPath, outputPath string) error {
	return fmt.Errorf("%w: decrypt file %s", ErrNotImplemented, inputPath)
}

func (e *Engine) Mode() mode.Mode {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return e.mode
}

// Key returns the configured key as lowercase hex
func (e *Engine) Key() string {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return e.key.String()
}

// IV returns the configured IV as lowercase hex, or an empty string when none is set
func (e *Engine) IV() string {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return e.iv.String()
}

func (e *Engine) String() string {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return fmt.Sprintf("AES(mode=%s, key=%s, iv=%s)", e.mode, e.key, e.iv)
}

// GenerateKey returns byteLength random bytes from crypto/rand as hex. byteLength must be 16, 24 or 32.
func GenerateKey(byteLength int) (string, error) {
	if _, _, err := aes.Parameters(byteLength); err != nil {
		return "", err
	}
	return randomHex(byteLength)
}

// GenerateIV returns a random 16 byte IV as hex
func GenerateIV() (string, error) {
	return randomHex(aes.BlockSize)
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return fasthex.EncodeToString(buf), nil
}
