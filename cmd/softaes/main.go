package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"git.gammaspectra.live/P2Pool/softaes/utils"
)

var errUsage = errors.New("usage: softaes [-debug] <keygen|expand|encrypt|decrypt|inspect|info> [flags]")

type command func(args []string, stdin io.Reader, stdout io.Writer) error

var commands = map[string]command{
	"keygen":  keygenCommand,
	"expand":  expandCommand,
	"encrypt": encryptCommand,
	"decrypt": decryptCommand,
	"inspect": inspectCommand,
	"info":    infoCommand,
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := flag.NewFlagSet("softaes", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	debug := flags.Bool("debug", false, "Enable debug logging")
	logFile := flags.Bool("log-file", false, "Include file:line in log lines")
	logFunc := flags.Bool("log-func", false, "Include the calling function in log lines, implies -log-file")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	if *debug {
		utils.GlobalLogLevel |= utils.LogLevelDebug
	}
	if *logFile || *logFunc {
		utils.LogFile = true
		utils.LogFunc = *logFunc
	}

	if flags.NArg() == 0 {
		return errUsage
	}

	name := strings.ToLower(flags.Arg(0))
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}
	if err := cmd(flags.Args()[1:], stdin, stdout); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		utils.Errorf("softaes", "%s", err)
		os.Exit(1)
	}
}
