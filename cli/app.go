// Package cli implements the pps command, which inspects and changes peripheral pin select
// routing on a PIC32MZ.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"

	"github.com/majenkotech/gpio-pic32/components/board/pic32mz"
	"github.com/majenkotech/gpio-pic32/logging"
)

const (
	// Flags.
	configFlag      = "config"
	debugFlag       = "debug"
	dryRunFlag      = "dry-run"
	baseAddressFlag = "base-address"
)

// A BoardOpener builds the board a command runs against.
type BoardOpener func(conf *pic32mz.Config, logger logging.Logger) (*pic32mz.Board, error)

func openPhysicalBoard(conf *pic32mz.Config, logger logging.Logger) (*pic32mz.Board, error) {
	return pic32mz.NewBoard(conf, logger)
}

// NewApp returns a new app with the PPS commands, Writer set to out, and ErrWriter set to
// errOut. Logs go to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	return newApp(out, errOut, openPhysicalBoard)
}

func newApp(out, errOut io.Writer, open BoardOpener) *cli.App {
	r := &runner{open: open}
	return &cli.App{
		Name:            "pps",
		Usage:           "inspect and change PIC32MZ peripheral pin select routing",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    configFlag,
				Aliases: []string{"c"},
				Usage:   "load configuration from `FILE`",
			},
			&cli.BoolFlag{
				Name:  debugFlag,
				Usage: "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  dryRunFlag,
				Usage: "log register writes instead of performing them",
			},
			&cli.Uint64Flag{
				Name:        baseAddressFlag,
				Usage:       "physical `ADDRESS` of the PPS register page",
				DefaultText: "0x1f801000",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "output",
				Usage:     "print the peripheral output driving each pin",
				ArgsUsage: "PIN...",
				Action:    r.outputAction,
			},
			{
				Name:      "input",
				Usage:     "print the peripheral input fed from each pin",
				ArgsUsage: "PIN...",
				Action:    r.inputAction,
			},
			{
				Name:      "clear",
				Usage:     "disconnect every peripheral signal from each pin",
				ArgsUsage: "PIN...",
				Action:    r.clearAction,
			},
			{
				Name:      "route",
				Usage:     "connect a peripheral signal to a pin, NC disconnects it",
				ArgsUsage: "PIN MODE",
				Action:    r.routeAction,
			},
			{
				Name:      "modes",
				Usage:     "list the peripheral signals that can be routed to a pin",
				ArgsUsage: "PIN",
				Action:    r.modesAction,
			},
			{
				Name:      "show",
				Usage:     "print the routing of the given pins, or of every remappable pin",
				ArgsUsage: "[PIN...]",
				Action:    r.showAction,
			},
		},
	}
}
