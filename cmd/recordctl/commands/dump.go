package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

type dumpConfig struct {
	*cli.Command
	main *mainConfig
}

// DumpCommand returns the dump subcommand.
func DumpCommand(mainCfg *mainConfig) *cli.Command {
	cfg := &dumpConfig{main: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "dump").
		WithSynopsis("dump [path] - Print a debugging dump of the nested values").
		WithRun(cfg.run)
}

func (cfg *dumpConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: dump takes at most one path", cli.ErrUsage)
	}

	r, err := cfg.main.load(cc)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		if r, err = r.At(splitPath(args[0])...); err != nil {
			return err
		}
	}

	_, err = fmt.Fprint(cc.Out, r.Dump())

	return err
}
