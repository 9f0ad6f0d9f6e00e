package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

type keysConfig struct {
	*cli.Command
	main *mainConfig
}

// KeysCommand returns the keys subcommand.
func KeysCommand(mainCfg *mainConfig) *cli.Command {
	cfg := &keysConfig{main: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "keys").
		WithAliases("k", "ls").
		WithSynopsis("keys [path] - List field names in order").
		WithRun(cfg.run)
}

func (cfg *keysConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: keys takes at most one path", cli.ErrUsage)
	}

	r, err := cfg.main.load(cc)
	if err != nil {
		return err
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	rec, err := r.At(splitPath(path)...)
	if err != nil {
		return err
	}

	for _, k := range rec.Keys() {
		fmt.Fprintln(cc.Out, k)
	}

	return nil
}
