package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"openrecord/recordyaml"
)

type mergeConfig struct {
	*cli.Command
	main *mainConfig
}

// MergeCommand returns the merge subcommand.
func MergeCommand(mainCfg *mainConfig) *cli.Command {
	cfg := &mergeConfig{main: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "merge").
		WithAliases("m").
		WithSynopsis("merge <file>... - Merge documents over the input and print the result").
		WithRun(cfg.run)
}

func (cfg *mergeConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires at least one file", cli.ErrUsage)
	}

	r, err := cfg.main.load(cc)
	if err != nil {
		return err
	}

	opts, err := cfg.main.recordOpts()
	if err != nil {
		return err
	}

	for _, file := range args {
		other, err := recordyaml.LoadFile(file, opts...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}

		theLog.Debug("merge", "file", file, "fields", other.Len())

		if r, err = r.Merge(other); err != nil {
			return fmt.Errorf("error merging %s: %w", file, err)
		}
	}

	return writeYAML(cc.Out, r)
}
