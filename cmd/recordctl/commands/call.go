package commands

import (
	"fmt"
	"iter"

	"github.com/scott-cotton/cli"

	"openrecord/record"
	"openrecord/store"
)

type callConfig struct {
	*cli.Command
	main *mainConfig

	Doc bool `cli:"name=doc desc='print the document after the call'"`
}

// CallCommand returns the call subcommand.
func CallCommand(mainCfg *mainConfig) *cli.Command {
	cfg := &callConfig{main: mainCfg}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "call").
		WithAliases("c").
		WithSynopsis("call [-doc] <path> <member> [arg...] - Resolve a member such as port=, keys! or tls?").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *callConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: call requires a path and a member", cli.ErrUsage)
	}

	r, err := cfg.main.load(cc)
	if err != nil {
		return err
	}

	target, err := r.At(splitPath(args[0])...)
	if err != nil {
		return err
	}

	callArgs := make([]any, 0, len(args)-2)
	for _, a := range args[2:] {
		callArgs = append(callArgs, parseValue(a))
	}

	access := record.Classify(args[1], callArgs...)

	theLog.Debug("call", "name", access.Name, "marker", access.Marker, "args", len(callArgs))

	res, err := target.Resolve(access)
	if err != nil {
		return fmt.Errorf("error calling %s: %w", args[1], err)
	}

	if err := writeResult(cc, res); err != nil {
		return err
	}

	if cfg.Doc {
		return writeYAML(cc.Out, r)
	}

	return nil
}

func writeResult(cc *cli.Context, res any) error {
	switch x := res.(type) {
	case iter.Seq2[string, any]:
		for k, v := range x {
			fmt.Fprintf(cc.Out, "%s: %v\n", k, v)
		}

		return nil
	case *store.Table:
		for _, k := range x.Keys() {
			fmt.Fprintln(cc.Out, k)
		}

		return nil
	case []string:
		for _, k := range x {
			fmt.Fprintln(cc.Out, k)
		}

		return nil
	}

	return writeValue(cc.Out, res)
}
