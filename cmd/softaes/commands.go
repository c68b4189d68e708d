package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	"git.gammaspectra.live/P2Pool/softaes/aes"
	"git.gammaspectra.live/P2Pool/softaes/aes/mode"
	"git.gammaspectra.live/P2Pool/softaes/engine"
	"git.gammaspectra.live/P2Pool/softaes/types"
	"git.gammaspectra.live/P2Pool/softaes/utils"
	fasthex "github.com/tmthrgd/go-hex"
	"golang.org/x/sys/cpu"
)

var errMissingKey = errors.New("missing -key")

func newFlagSet(name string) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	return flags
}

// readHexInput returns the decoded -in value, or stdin decoded as hex when -in is empty
func readHexInput(in string, stdin io.Reader) ([]byte, error) {
	if in == "" {
		buf, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		in = string(bytes.Join(bytes.Fields(buf), nil))
	}
	data, err := fasthex.DecodeString(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrInvalidHex, err)
	}
	return data, nil
}

func writeHexLine(w io.Writer, buf []byte) error {
	out := make([]byte, len(buf)*2+1)
	fasthex.Encode(out, buf)
	out[len(out)-1] = '\n'
	_, err := w.Write(out)
	return err
}

func keygenCommand(args []string, _ io.Reader, stdout io.Writer) error {
	flags := newFlagSet("keygen")
	size := flags.Int("size", engine.DefaultKeySize, "Key size in bytes: 16, 24 or 32")
	iv := flags.Bool("iv", false, "Generate a 16 byte IV instead of a key")
	if err := flags.Parse(args); err != nil {
		return err
	}

	var (
		out string
		err error
	)
	if *iv {
		out, err = engine.GenerateIV()
	} else {
		out, err = engine.GenerateKey(*size)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

type expandResult struct {
	KeySize   int           `json:"key_size"`
	Rounds    int           `json:"rounds"`
	RoundKeys []types.Block `json:"round_keys"`
}

func expandCommand(args []string, _ io.Reader, stdout io.Writer) error {
	flags := newFlagSet("expand")
	keyHex := flags.String("key", "", "Key in hex")
	asJSON := flags.Bool("json", false, "Output JSON")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *keyHex == "" {
		return errMissingKey
	}

	e, err := engine.New(engine.WithKey(*keyHex))
	if err != nil {
		return err
	}
	schedule, err := e.ExpandKey(*keyHex)
	if err != nil {
		return err
	}

	if *asJSON {
		result := expandResult{
			KeySize:   schedule.KeySize(),
			Rounds:    schedule.Rounds(),
			RoundKeys: make([]types.Block, 0, len(schedule)),
		}
		for _, roundKey := range schedule {
			result.RoundKeys = append(result.RoundKeys, roundKey.Block())
		}
		return utils.WriteJSON(stdout, result, "  ")
	}

	for _, roundKey := range schedule {
		if _, err = fmt.Fprintln(stdout, roundKey); err != nil {
			return err
		}
	}
	return nil
}

type cryptFlags struct {
	key     *string
	iv      *string
	mode    *string
	in      *string
	workers *int
}

func newCryptFlags(flags *flag.FlagSet) cryptFlags {
	return cryptFlags{
		key:     flags.String("key", "", "Key in hex, 16, 24 or 32 bytes"),
		iv:      flags.String("iv", "", "IV in hex, 16 bytes"),
		mode:    flags.String("mode", mode.ECB.String(), "Block mode: ECB or CBC"),
		in:      flags.String("in", "", "Input in hex"),
		workers: flags.Int("workers", 0, "Worker goroutines for large inputs, 0 for one per CPU"),
	}
}

func (f cryptFlags) engine() (*engine.Engine, error) {
	m, err := mode.ParseMode(*f.mode)
	if err != nil {
		return nil, err
	}
	return engine.New(engine.WithMode(m), engine.WithKey(*f.key), engine.WithIV(*f.iv), engine.WithWorkers(*f.workers))
}

func encryptCommand(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := newFlagSet("encrypt")
	f := newCryptFlags(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}

	var (
		plaintext []byte
		err       error
	)
	if *f.in != "" {
		if plaintext, err = readHexInput(*f.in, nil); err != nil {
			return err
		}
	} else if plaintext, err = io.ReadAll(stdin); err != nil {
		return err
	}

	e, err := f.engine()
	if err != nil {
		return err
	}
	if *f.key == "" {
		utils.Logf("softaes", "generated key = %s", e.Key())
	}
	utils.Debugf("softaes", "%s", e)

	ciphertext, err := e.Encrypt(plaintext)
	if err != nil {
		return err
	}
	return writeHexLine(stdout, ciphertext)
}

func decryptCommand(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := newFlagSet("decrypt")
	f := newCryptFlags(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *f.key == "" {
		return errMissingKey
	}

	ciphertext, err := readHexInput(*f.in, stdin)
	if err != nil {
		return err
	}

	e, err := f.engine()
	if err != nil {
		return err
	}
	utils.Debugf("softaes", "%s", e)

	plaintext, err := e.Decrypt(ciphertext)
	if err != nil {
		return err
	}
	return writeHexLine(stdout, plaintext)
}

type inspectResult struct {
	mode.Census
	// MeanAdjacentDistance average number of differing bits between consecutive blocks, 64 for random data
	MeanAdjacentDistance float64 `json:"mean_adjacent_distance"`
}

func inspectCommand(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := newFlagSet("inspect")
	in := flags.String("in", "", "Ciphertext in hex")
	if err := flags.Parse(args); err != nil {
		return err
	}

	ciphertext, err := readHexInput(*in, stdin)
	if err != nil {
		return err
	}
	if len(ciphertext) == 0 {
		return mode.ErrEmptyInput
	}

	result := inspectResult{
		Census: mode.RepeatedBlocks(ciphertext),
	}

	padded := mode.Pad(ciphertext)
	if blocks := len(padded) / aes.BlockSize; blocks > 1 {
		var total int
		for i := aes.BlockSize; i < len(padded); i += aes.BlockSize {
			total += utils.BitDistance(types.BlockFromBytes(padded[i-aes.BlockSize:i]), types.BlockFromBytes(padded[i:]))
		}
		result.MeanAdjacentDistance = float64(total) / float64(blocks-1)
	}

	if result.Repeats > 0 {
		utils.Noticef("softaes", "%d repeated blocks out of %d, input is likely ECB with structured plaintext", result.Repeats, result.Total)
	}

	return utils.WriteJSON(stdout, result, "  ")
}

type infoResult struct {
	Arch           string   `json:"arch"`
	KeySizes       []int    `json:"key_sizes"`
	Modes          []string `json:"modes"`
	Implemented    []string `json:"implemented_modes"`
	HardwareAES    bool     `json:"hardware_aes"`
	SoftwareOnly   bool     `json:"software_only"`
	ScheduleCache  int      `json:"schedule_cache_size"`
	ParallelBlocks int      `json:"parallel_threshold_blocks"`
}

func infoCommand(args []string, _ io.Reader, stdout io.Writer) error {
	flags := newFlagSet("info")
	if err := flags.Parse(args); err != nil {
		return err
	}

	return utils.WriteJSON(stdout, infoResult{
		Arch:        runtime.GOARCH,
		KeySizes:    []int{16, 24, 32},
		Modes:       []string{mode.ECB.String(), mode.CBC.String()},
		Implemented: []string{mode.ECB.String()},
		// reported only, every operation runs the table based implementation
		HardwareAES:    cpu.X86.HasAES || cpu.ARM64.HasAES || cpu.S390X.HasAES,
		SoftwareOnly:   true,
		ScheduleCache:  engine.DefaultScheduleCacheSize,
		ParallelBlocks: mode.DefaultParallelThreshold,
	}, "  ")
}
