package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

type getConfig struct {
	*cli.Command
	main *mainConfig
}

// GetCommand returns the get subcommand.
func GetCommand(mainCfg *mainConfig) *cli.Command {
	cfg := &getConfig{main: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "get").
		WithAliases("g").
		WithSynopsis("get <path> - Print the value at path").
		WithRun(cfg.run)
}

func (cfg *getConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}

	r, err := cfg.main.load(cc)
	if err != nil {
		return err
	}

	v, err := lookup(r, splitPath(args[0]))
	if err != nil {
		return err
	}

	return writeValue(cc.Out, v)
}
