package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/rs/zerolog"
)

// Environment passed to extensions, the same variables Config reads.
const (
	EnvLedgerFile = "CGS_LEDGER"
	EnvYear       = "CGS_YEAR"
	EnvPeriod     = "CGS_PERIOD"
	EnvOrderKey   = "CGS_ORDER_KEY"
)

// IsCommand reports whether name is a builtin subcommand.
func IsCommand(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// RunExtension attempts to find and execute an external cgs-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(ctx context.Context, subcommand string, args []string) (bool, int) {
	log := zerolog.Ctx(ctx)
	name := "cgs-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Debug().Err(err).Str("extension", name).Msg("extension not found in PATH")
		return false, 0
	}

	opts, err := resolveOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return true, 2
	}

	cmd := exec.CommandContext(ctx, lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr

	// the resolved global flags override the environment of the extension
	cmd.Env = append(os.Environ(),
		EnvLedgerFile+"="+opts.ledger,
		EnvYear+"="+strconv.Itoa(opts.year),
		EnvPeriod+"="+opts.period.String(),
		EnvOrderKey+"="+config.OrderKey,
	)

	log.Debug().Str("extension", lp).Strs("args", args).Msg("running extension")
	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
