package mode

import (
	"runtime"

	"git.gammaspectra.live/P2Pool/softaes/aes"
	"git.gammaspectra.live/P2Pool/softaes/utils"
	"golang.org/x/sys/cpu"
)

const DefaultParallelThreshold = 1024

// blocksPerWork number of blocks handed to a worker at once
const blocksPerWork = 64

type options struct {
	workers           int
	parallelThreshold int
}

type Option func(o *options)

// WithWorkers sets the number of goroutines used for large inputs. 1 forces sequential processing, <= 0 uses runtime.NumCPU()
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithParallelThreshold sets the minimum number of blocks before work is split across workers
func WithParallelThreshold(blocks int) Option {
	return func(o *options) {
		o.parallelThreshold = blocks
	}
}

func newOptions(opts []Option) options {
	o := options{
		workers:           runtime.NumCPU(),
		parallelThreshold: DefaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.NumCPU()
	}
	return o
}

// Pad zero pads data on the right up to a multiple of aes.BlockSize.
// The padding is not reversible: trailing zero bytes of data cannot be told apart from padding.
func Pad(data []byte) []byte {
	blocks := (len(data) + aes.BlockSize - 1) / aes.BlockSize
	padded := make([]byte, blocks*aes.BlockSize)
	copy(padded, data)
	return padded
}

// EncryptECB encrypts every 16-byte block of data independently under schedule.
// A final partial block is zero padded, so output length is always a multiple of aes.BlockSize.
func EncryptECB(data []byte, schedule aes.Schedule, opts ...Option) ([]byte, error) {
	return ecb(Encrypt, data, schedule, newOptions(opts))
}

// DecryptECB reverses EncryptECB. Padding is not removed, and a partial final block is zero padded
// before decryption like on encryption.
func DecryptECB(data []byte, schedule aes.Schedule, opts ...Option) ([]byte, error) {
	return ecb(Decrypt, data, schedule, newOptions(opts))
}

// Crypt dispatches to the implementation of mode. Recognized but unimplemented modes return *UnsupportedModeError.
func Crypt(mode Mode, direction Direction, data []byte, schedule aes.Schedule, opts ...Option) ([]byte, error) {
	switch mode {
	case ECB:
		return ecb(direction, data, schedule, newOptions(opts))
	default:
		return nil, &UnsupportedModeError{Mode: mode}
	}
}

type scratch struct {
	_     cpu.CacheLinePad
	state aes.State
	_     cpu.CacheLinePad
}

func ecb(direction Direction, data []byte, schedule aes.Schedule, o options) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	out := Pad(data)
	blocks := len(out) / aes.BlockSize

	transform := aes.EncryptBlock
	if direction == Decrypt {
		transform = aes.DecryptBlock
	}

	if o.workers == 1 || blocks < o.parallelThreshold {
		var state aes.State
		for i := 0; i < len(out); i += aes.BlockSize {
			state = transform(aes.StateFromBytes(out[i:]), schedule)
			state.PutBytes(out[i:])
		}
		return out, nil
	}

	workSize := uint64((blocks + blocksPerWork - 1) / blocksPerWork)

	var states []scratch

	if utils.IsLogLevelDebug() {
		utils.Debugf("ECB", "%s %d blocks in %d chunks across %d workers", direction, blocks, workSize, min(uint64(o.workers), workSize))
	}

	err := utils.SplitWork(o.workers, workSize, func(workIndex uint64, routineIndex int) error {
		s := &states[routineIndex]
		start := int(workIndex) * blocksPerWork * aes.BlockSize
		end := min(start+blocksPerWork*aes.BlockSize, len(out))
		for i := start; i < end; i += aes.BlockSize {
			s.state = transform(aes.StateFromBytes(out[i:]), schedule)
			s.state.PutBytes(out[i:])
		}
		return nil
	}, func(routines, routineIndex int) error {
		if states == nil {
			states = make([]scratch, routines)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
