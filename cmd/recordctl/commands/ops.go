package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"openrecord/store"
)

type opsConfig struct {
	*cli.Command
	main *mainConfig
}

// OpsCommand returns the ops subcommand.
func OpsCommand(mainCfg *mainConfig) *cli.Command {
	cfg := &opsConfig{main: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "ops").
		WithSynopsis("ops - List the table primitives reachable as name!").
		WithRun(cfg.run)
}

func (cfg *opsConfig) run(cc *cli.Context, args []string) error {
	if _, err := cfg.Parse(cc, args); err != nil {
		return err
	}

	for _, op := range store.RawOps() {
		fmt.Fprintf(cc.Out, "%s!\n", op)
	}

	return nil
}
