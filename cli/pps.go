package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	goutils "go.viam.com/utils"

	"github.com/majenkotech/gpio-pic32/components/board/pic32mz"
	"github.com/majenkotech/gpio-pic32/components/board/pic32mz/pps"
	"github.com/majenkotech/gpio-pic32/logging"
)

type runner struct {
	open BoardOpener
}

func (r *runner) config(c *cli.Context) (*pic32mz.Config, error) {
	conf := &pic32mz.Config{}
	if path := c.String(configFlag); path != "" {
		var err error
		if conf, err = pic32mz.ReadConfig(path); err != nil {
			return nil, errors.Wrapf(err, "cannot read config %q", path)
		}
	}
	if c.IsSet(dryRunFlag) {
		conf.DryRun = c.Bool(dryRunFlag)
	}
	if c.IsSet(baseAddressFlag) {
		conf.BaseAddress = c.Uint64(baseAddressFlag)
	}
	if c.Bool(debugFlag) {
		conf.LogLevel = logging.DEBUG.String()
	}
	return conf, nil
}

// withBoard runs fn against a board whose registers are already mapped.
func (r *runner) withBoard(c *cli.Context, fn func(b *pic32mz.Board) error) error {
	conf, err := r.config(c)
	if err != nil {
		return err
	}
	if c.Bool(debugFlag) {
		prev := logging.GlobalLogLevel.Level()
		logging.GlobalLogLevel.SetLevel(logging.DEBUG.AsZap())
		defer logging.GlobalLogLevel.SetLevel(prev)
	}
	logger := logging.NewBlankLogger("pps")
	logger.SetLevel(logging.INFO)
	if c.App.ErrWriter == os.Stderr {
		logger.AddAppender(logging.NewStderrAppender())
	} else {
		logger.AddAppender(logging.NewWriterAppender(c.App.ErrWriter))
	}
	if conf.LogFile != "" {
		file := logging.NewFileAppender(conf.LogFile)
		defer goutils.UncheckedErrorFunc(file.Close)
		logger.AddAppender(file)
	}

	b, err := r.open(conf, logger)
	if err != nil {
		return err
	}
	defer goutils.UncheckedErrorFunc(b.Close)
	if err := b.Open(); err != nil {
		return err
	}
	return fn(b)
}

func parsePins(c *cli.Context, args []string) ([]pps.Pin, error) {
	pins := make([]pps.Pin, 0, len(args))
	for _, arg := range args {
		p, err := pps.ParsePin(arg)
		if err != nil {
			return nil, usageErrorf(c, "%v", err)
		}
		pins = append(pins, p)
	}
	return pins, nil
}

func requirePins(c *cli.Context) ([]pps.Pin, error) {
	if c.NArg() == 0 {
		return nil, usageErrorf(c, "expected at least one pin")
	}
	return parsePins(c, c.Args().Slice())
}

func (r *runner) outputAction(c *cli.Context) error {
	pins, err := requirePins(c)
	if err != nil {
		return err
	}
	return r.withBoard(c, func(b *pic32mz.Board) error {
		for _, p := range pins {
			printf(c.App.Writer, "%s: %s", p, b.PPS().OutputMapping(p))
		}
		return nil
	})
}

func (r *runner) inputAction(c *cli.Context) error {
	pins, err := requirePins(c)
	if err != nil {
		return err
	}
	return r.withBoard(c, func(b *pic32mz.Board) error {
		for _, p := range pins {
			printf(c.App.Writer, "%s: %s", p, b.PPS().InputMapping(p))
		}
		return nil
	})
}

func (r *runner) clearAction(c *cli.Context) error {
	pins, err := requirePins(c)
	if err != nil {
		return err
	}
	return r.withBoard(c, func(b *pic32mz.Board) error {
		for _, p := range pins {
			if _, ok := pps.Lookup(p); !ok {
				warningf(c.App.ErrWriter, "%s has no peripheral pin select, skipping", p)
				continue
			}
			b.PPS().ClearMapping(p)
		}
		return nil
	})
}

func (r *runner) routeAction(c *cli.Context) error {
	if c.NArg() != 2 {
		return usageErrorf(c, "expected a pin and a mode")
	}
	pins, err := parsePins(c, c.Args().Slice()[:1])
	if err != nil {
		return err
	}
	m, err := pps.ParseMode(c.Args().Get(1))
	if err != nil {
		return usageErrorf(c, "%v", err)
	}
	p := pins[0]
	return r.withBoard(c, func(b *pic32mz.Board) error {
		if err := b.PPS().Route(p, m); err != nil {
			return err
		}
		printf(c.App.Writer, "%s: output %s, input %s", p, b.PPS().OutputMapping(p), b.PPS().InputMapping(p))
		return nil
	})
}

func (r *runner) modesAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return usageErrorf(c, "expected one pin")
	}
	pins, err := parsePins(c, c.Args().Slice())
	if err != nil {
		return err
	}
	modes := pps.SupportedModes(pins[0])
	if len(modes) == 0 {
		return errors.Errorf("%s has no peripheral pin select", pins[0])
	}
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Mode", "Function", "Direction"})
	for _, m := range modes {
		direction := "input"
		if m.IsOutput() {
			direction = "output"
		}
		t.AppendRow(table.Row{m.String(), string(m.Func()), direction})
	}
	printf(c.App.Writer, "%s", t.Render())
	return nil
}

func (r *runner) showAction(c *cli.Context) error {
	pins := pps.Pins()
	if c.NArg() != 0 {
		var err error
		if pins, err = parsePins(c, c.Args().Slice()); err != nil {
			return err
		}
	}
	return r.withBoard(c, func(b *pic32mz.Board) error {
		t := table.NewWriter()
		t.AppendHeader(table.Row{"Pin", "Group", "Output register", "Output", "Input"})
		for _, p := range pins {
			route, ok := pps.Lookup(p)
			if !ok {
				t.AppendRow(table.Row{p.String(), "-", "-", "-", "-"})
				continue
			}
			reg := "-"
			if route.HasOutput {
				reg = pps.RegisterName(route.Output)
			}
			t.AppendRow(table.Row{
				p.String(),
				fmt.Sprintf("%d", route.Group),
				reg,
				b.PPS().OutputMapping(p).String(),
				b.PPS().InputMapping(p).String(),
			})
		}
		printf(c.App.Writer, "%s", t.Render())
		return nil
	})
}

func usageErrorf(c *cli.Context, format string, a ...interface{}) error {
	usage := strings.TrimSpace(fmt.Sprintf("%s %s %s", c.App.Name, c.Command.Name, c.Command.ArgsUsage))
	return errors.Errorf("%s (usage: %s)", fmt.Sprintf(format, a...), usage)
}
