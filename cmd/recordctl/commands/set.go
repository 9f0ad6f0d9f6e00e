package commands

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
)

type setConfig struct {
	*cli.Command
	main *mainConfig
}

// SetCommand returns the set subcommand.
func SetCommand(mainCfg *mainConfig) *cli.Command {
	cfg := &setConfig{main: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "set").
		WithAliases("s").
		WithSynopsis("set <path=value>... - Set values and print the document").
		WithRun(cfg.run)
}

func (cfg *setConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: set requires at least one path=value argument", cli.ErrUsage)
	}

	r, err := cfg.main.load(cc)
	if err != nil {
		return err
	}

	for _, arg := range args {
		path, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("%w: %q is not of the form path=value", cli.ErrUsage, arg)
		}

		parts := splitPath(path)
		if len(parts) == 0 {
			return fmt.Errorf("%w: empty path in %q", cli.ErrUsage, arg)
		}

		theLog.Debug("set", "path", path, "value", value)

		if err := r.StorePath(parts, parseValue(value)); err != nil {
			return fmt.Errorf("error setting %s: %w", path, err)
		}
	}

	return writeYAML(cc.Out, r)
}
