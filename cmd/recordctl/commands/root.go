package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"

	"openrecord/options"
	"openrecord/record"
)

const usageText = `recordctl reads a YAML document into a record and works on it.

The document is read from -f (default stdin). Paths are dotted field names,
"." or "" is the document itself.

Examples:
  recordctl -f app.yaml get db.port
  recordctl -f app.yaml set db.port=5433 db.tls.enabled=true
  recordctl -f app.yaml keys db
  recordctl -f app.yaml merge override.yaml
  recordctl -f app.yaml call db port= 5434
  recordctl -policy cascade,fold -f app.yaml inspect`

type mainConfig struct {
	File    string `cli:"name=f aliases=file desc='input document (default stdin)'"`
	Policy  string `cli:"name=policy desc='record policy: cascade, nested, fold, nocache joined by commas'"`
	Verbose bool   `cli:"name=v desc='debug logging'"`

	Main *cli.Command
}

// Root returns the root command for recordctl.
func Root() *cli.Command {
	cfg := &mainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Main, "recordctl").
		WithSynopsis("recordctl [-f file] [-policy p] [-v] command [args]").
		WithDescription(usageText).
		WithOpts(opts...).
		WithRun(cfg.run).
		WithSubs(
			GetCommand(cfg),
			SetCommand(cfg),
			KeysCommand(cfg),
			MergeCommand(cfg),
			InspectCommand(cfg),
			DumpCommand(cfg),
			CallCommand(cfg),
			OpsCommand(cfg),
		)
}

func (cfg *mainConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *mainConfig) recordOpts() ([]record.Option, error) {
	p, ok := options.ParsePolicy(cfg.Policy)
	if !ok {
		return nil, fmt.Errorf("%w: unknown policy %q", cli.ErrUsage, cfg.Policy)
	}

	return []record.Option{record.WithPolicy(p)}, nil
}
