package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"openrecord/internal/visit"
	"openrecord/record"
)

type inspectConfig struct {
	*cli.Command
	main *mainConfig

	Color bool `cli:"name=color desc='inspect with color'"`
}

// InspectCommand returns the inspect subcommand.
func InspectCommand(mainCfg *mainConfig) *cli.Command {
	cfg := &inspectConfig{main: mainCfg}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "inspect").
		WithAliases("i").
		WithSynopsis("inspect [-color] [path] - Print the record in its debugging form").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *inspectConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: inspect takes at most one path", cli.ErrUsage)
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

	p := plainPalette()
	if cfg.Color || isTerminal(cc.Out) {
		color.NoColor = false
		p = newPalette()
	}

	_, err = fmt.Fprintln(cc.Out, p.render(r))

	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd())
}

type palette struct {
	field   func(string, ...any) string
	str     func(string, ...any) string
	number  func(string, ...any) string
	boolean func(string, ...any) string
	null    func(string, ...any) string
	sep     func(string, ...any) string
}

func newPalette() *palette {
	return &palette{
		field:   color.RGB(128, 168, 196).SprintfFunc(),
		str:     color.RGB(8, 196, 16).SprintfFunc(),
		number:  color.RGB(128, 216, 236).SprintfFunc(),
		boolean: color.CyanString,
		null:    color.RGB(168, 0, 196).SprintfFunc(),
		sep:     color.RGB(196, 128, 128).SprintfFunc(),
	}
}

func plainPalette() *palette {
	return &palette{
		field:   fmt.Sprintf,
		str:     fmt.Sprintf,
		number:  fmt.Sprintf,
		boolean: fmt.Sprintf,
		null:    fmt.Sprintf,
		sep:     fmt.Sprintf,
	}
}

// render writes r in the same shape as record.Record.String.
func (p *palette) render(r *record.Record) string {
	var (
		b  strings.Builder
		tr visit.Tracker[*record.Record]
	)

	p.record(&b, r, &tr)

	return b.String()
}

func (p *palette) record(b *strings.Builder, r *record.Record, tr *visit.Tracker[*record.Record]) {
	if !tr.Enter(r) {
		b.WriteString(p.sep("#<Record: ...>"))
		return
	}
	defer tr.Leave(r)

	b.WriteString(p.sep("#<Record: {"))

	i := 0
	for k, v := range r.All() {
		if i > 0 {
			b.WriteString(p.sep(", "))
		}

		b.WriteString(p.field("%s", k))
		b.WriteString(p.sep(": "))
		p.value(b, v, tr)

		i++
	}

	b.WriteString(p.sep("}>"))
}

func (p *palette) value(b *strings.Builder, v any, tr *visit.Tracker[*record.Record]) {
	switch x := v.(type) {
	case nil:
		b.WriteString(p.null("nil"))
	case *record.Record:
		p.record(b, x, tr)
	case string:
		b.WriteString(p.str("%s", strconv.Quote(x)))
	case bool:
		b.WriteString(p.boolean("%v", x))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		b.WriteString(p.number("%v", x))
	default:
		fmt.Fprintf(b, "%v", x)
	}
}
