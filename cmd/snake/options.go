package main

import (
	"flag"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Environment keys, read after an optional .env file; flags override them
const (
	envLog  = "SNAKE_LOG"
	envMute = "SNAKE_MUTE"
	envSeed = "SNAKE_SEED"
)

type options struct {
	logPath string
	mute    bool
	seed    uint64 // 0 seeds from the clock
}

// loadEnv merges a dotenv file into the environment; a missing file is not an error
func loadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(err, "[loadEnv] %s", path)
	}
	return nil
}

// parseOptions reads flags from args with defaults taken from the environment
func parseOptions(args []string) (options, error) {
	var opts options

	defMute, err := envBool(envMute)
	if err != nil {
		return opts, err
	}
	defSeed, err := envUint(envSeed)
	if err != nil {
		return opts, err
	}

	fset := flag.NewFlagSet("snake", flag.ContinueOnError)
	fset.StringVar(&opts.logPath, "log", os.Getenv(envLog), "write logs to this file (empty disables logging)")
	fset.BoolVar(&opts.mute, "mute", defMute, "disable item feedback tones")
	fset.Uint64Var(&opts.seed, "seed", defSeed, "random seed for spawns and colors (0 picks one)")

	if err := fset.Parse(args); err != nil {
		return opts, errors.Wrap(err, "[parseOptions] flags")
	}
	if fset.NArg() > 0 {
		return opts, errors.Errorf("[parseOptions] unexpected arguments: %v", fset.Args())
	}
	return opts, nil
}

func envBool(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.Wrapf(err, "[envBool] %s=%q", key, v)
	}
	return b, nil
}

func envUint(key string) (uint64, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "[envUint] %s=%q", key, v)
	}
	return n, nil
}
