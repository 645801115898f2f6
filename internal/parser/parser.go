// Package parser turns positional args, flags and the CASE_SENSITIVE env into launch parameters and validates them
package parser

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/urfave/cli/v3"
)

const EnvCaseSensitive = "CASE_SENSITIVE"

var (
	ErrMissingArgument         = errors.New("not enough arguments")
	ErrMissingEnvironment      = errors.New("environment variable " + EnvCaseSensitive + " is not set")
	ErrInvalidEnvironmentValue = errors.New("environment variable " + EnvCaseSensitive + " is not an integer")
)

// Flags - options of the root command read by InitAppMode
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Value:   false,
			Usage:   "debug logging to stderr",
		},
		&cli.StringFlag{
			Name:  "serve",
			Value: "",
			Usage: "run as a search node listening on `ADDRESS` instead of searching a file",
		},
	}
}

// LookupEnv - same contract as os.LookupEnv
type LookupEnv func(key string) (string, bool)

const argsSeparator = "--"

// SplitArgs cuts os.Args-like args at the first "--". Only head goes through flag parsing,
// tail is taken as positional args verbatim, so a query may start with '-'.
func SplitArgs(args []string) (head, tail []string) {
	for i, arg := range args {
		if i > 0 && arg == argsSeparator {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

// InitAppMode reads already parsed command state: with --serve the app runs as a search node,
// otherwise query and file path are taken from positional args followed by tail from SplitArgs.
func InitAppMode(cmd *cli.Command, tail []string, lookup LookupEnv) (*model.AppInit, error) {
	appInit := model.AppInit{
		Verbose: cmd.Bool("verbose"),
	}

	if addr := cmd.String("serve"); addr != "" {
		appInit.Mode = model.ModeNode
		appInit.Address = addr
		return &appInit, nil
	}

	positional := cmd.Args().Slice()
	// оставшийся разделитель - не аргумент
	if len(positional) > 0 && positional[0] == argsSeparator {
		positional = positional[1:]
	}
	positional = append(slices.Clone(positional), tail...)

	run, err := ResolveRunConfig(positional, lookup)
	if err != nil {
		return nil, err
	}
	appInit.Mode = model.ModeSearch
	appInit.Run = run

	return &appInit, nil
}

// ResolveRunConfig builds RunConfig from positional args (program name excluded) and CASE_SENSITIVE.
// Args beyond the second are ignored.
func ResolveRunConfig(args []string, lookup LookupEnv) (*model.RunConfig, error) {
	// разбираемся с паттерном и файлом
	switch len(args) {
	case 0:
		return nil, fmt.Errorf("%w: missing query", ErrMissingArgument)
	case 1:
		return nil, fmt.Errorf("%w: missing file path", ErrMissingArgument)
	}

	caseSensitive, err := parseCaseSensitive(lookup)
	if err != nil {
		return nil, err
	}

	return &model.RunConfig{
		Query:         args[0],
		FilePath:      args[1],
		CaseSensitive: caseSensitive,
	}, nil
}

// only 1 enables case-sensitive mode, any other integer (0, negative, 2...) disables it
func parseCaseSensitive(lookup LookupEnv) (bool, error) {
	raw, ok := lookup(EnvCaseSensitive)
	if !ok {
		return false, ErrMissingEnvironment
	}

	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidEnvironmentValue, raw)
	}

	return value == 1, nil
}
