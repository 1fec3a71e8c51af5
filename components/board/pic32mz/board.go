// Package pic32mz wires the PPS register window and resolver of a PIC32MZ board together.
package pic32mz

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/majenkotech/gpio-pic32/components/board/pic32mz/pps"
	"github.com/majenkotech/gpio-pic32/components/board/pic32mz/sfr"
	"github.com/majenkotech/gpio-pic32/logging"
)

// A Board owns the register window of a PIC32MZ and the resolver reading it.
type Board struct {
	logger   logging.Logger
	window   *sfr.Window
	resolver *pps.Resolver
}

// NewBoard returns a board over the physical register page described by conf. The page is not
// mapped until Open is called or a register is first accessed.
func NewBoard(conf *Config, logger logging.Logger, opts ...sfr.Option) (*Board, error) {
	if _, err := conf.Validate(""); err != nil {
		return nil, err
	}
	if conf.LogLevel != "" {
		logger.SetLevel(conf.Level())
	}
	window := sfr.NewWindow(conf.Base(), logger.Sublogger("sfr"), opts...)

	var regs sfr.Registers = window
	if conf.DryRun {
		regs = sfr.ReadOnly(window, logger.Sublogger("sfr"))
	}
	b := NewBoardFromRegisters(regs, logger)
	b.window = window
	logger.Debugw("PIC32MZ board configured",
		"base", fmt.Sprintf("%#x", conf.Base()), "dry_run", conf.DryRun)
	return b, nil
}

// NewBoardFromRegisters returns a board over an existing register file.
func NewBoardFromRegisters(regs sfr.Registers, logger logging.Logger) *Board {
	return &Board{
		logger:   logger,
		resolver: pps.NewResolver(regs, logger.Sublogger("pps")),
	}
}

// Open maps the register page. It is a no-op for boards built from a register file.
func (b *Board) Open() error {
	if b.window == nil {
		return nil
	}
	return b.window.Open()
}

// PPS returns the pin routing resolver.
func (b *Board) PPS() *pps.Resolver {
	return b.resolver
}

// LineByName returns the periph.io view of the named pin.
func (b *Board) LineByName(name string) (*pps.Line, error) {
	p, err := pps.ParsePin(name)
	if err != nil {
		return nil, err
	}
	line, ok := b.resolver.Line(p)
	if !ok {
		return nil, errors.Errorf("pin %s has no peripheral pin select", p)
	}
	return line, nil
}

// Close unmaps the register page and flushes the logger.
func (b *Board) Close() error {
	var err error
	if b.window != nil {
		err = multierr.Combine(err, b.window.Close())
	}
	return multierr.Combine(err, b.logger.Sync())
}
