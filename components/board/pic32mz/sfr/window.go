// Package sfr provides access to the PIC32MZ special function register page that holds the
// peripheral pin select registers, by way of periph.io's physical memory mapping.
package sfr

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	goutils "go.viam.com/utils"
	"periph.io/x/host/v3/pmem"

	"github.com/majenkotech/gpio-pic32/logging"
)

const (
	// DefaultBaseAddress is the physical address of the PPS register page.
	DefaultBaseAddress uint64 = 0x1f801000
	// WindowSize is the number of bytes mapped over the register page.
	WindowSize = 4096

	offsetMask = WindowSize - 1
)

// An Offset is the byte offset of a 32-bit register in the PPS register block, e.g. 0x15c8.
type Offset uint32

func (o Offset) String() string {
	return fmt.Sprintf("%04x", uint32(o))
}

// Registers is raw 32-bit register access at an offset.
type Registers interface {
	Read(offset Offset) uint32
	Write(offset Offset, value uint32)
}

// A Mapping is a mapped physical memory range viewed as 32-bit words. *pmem.View is one.
type Mapping interface {
	Uint32() []uint32
	Close() error
}

// A MapFunc maps size bytes of physical memory starting at base.
type MapFunc func(base uint64, size int) (Mapping, error)

func mapPhysical(base uint64, size int) (Mapping, error) {
	view, err := pmem.Map(base, size)
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Window is a register window over the PPS page. The page is mapped once, either by an explicit
// call to Open or on first access. It is not safe for concurrent use.
type Window struct {
	base   uint64
	mapFn  MapFunc
	fatal  func(msg string, keysAndValues ...interface{})
	logger logging.Logger

	once    sync.Once
	mapping Mapping
	words   []uint32
	err     error
}

// An Option configures a Window.
type Option func(*Window)

// WithMapFunc replaces the physical memory mapper.
func WithMapFunc(fn MapFunc) Option {
	return func(w *Window) {
		w.mapFn = fn
	}
}

// WithFatalHandler replaces what happens when the lazy mapping fails. It defaults to the
// logger's Fatalw, which exits the process.
func WithFatalHandler(fn func(msg string, keysAndValues ...interface{})) Option {
	return func(w *Window) {
		w.fatal = fn
	}
}

// NewWindow returns an unmapped window over the register page at base.
func NewWindow(base uint64, logger logging.Logger, opts ...Option) *Window {
	w := &Window{
		base:   base,
		mapFn:  mapPhysical,
		fatal:  logger.Fatalw,
		logger: logger,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Open maps the register page if it is not mapped yet. Only the first call does any work; later
// calls return the same result.
func (w *Window) Open() error {
	w.once.Do(w.establish)
	return w.err
}

func (w *Window) establish() {
	mapping, err := w.mapFn(w.base, WindowSize)
	if err != nil {
		w.err = errors.Wrapf(err, "PPS mmap of %#x failed", w.base)
		return
	}
	words := mapping.Uint32()
	if len(words) < WindowSize/4 {
		goutils.UncheckedError(mapping.Close())
		w.err = errors.Errorf("PPS mmap of %#x returned %d words, want %d", w.base, len(words), WindowSize/4)
		return
	}
	w.mapping = mapping
	w.words = words
	w.logger.Debugw("mapped PPS registers", "base", fmt.Sprintf("%#x", w.base), "size", WindowSize)
}

// ensure reports whether the window is usable, handing any mapping failure to the fatal handler.
func (w *Window) ensure() bool {
	if err := w.Open(); err != nil {
		w.fatal("cannot access PPS registers", "error", err)
		return false
	}
	return true
}

func index(offset Offset) int {
	return int(offset&offsetMask) / 4
}

// Read returns the full 32-bit register at offset.
func (w *Window) Read(offset Offset) uint32 {
	if !w.ensure() {
		return 0
	}
	return w.words[index(offset)]
}

// Write stores value into the register at offset.
func (w *Window) Write(offset Offset, value uint32) {
	if !w.ensure() {
		return
	}
	w.words[index(offset)] = value
	w.logger.Debugf("%08x -> [%s]", value, offset)
}

// Close unmaps the register page. Any later access is reported to the fatal handler.
func (w *Window) Close() error {
	w.once.Do(func() {})
	var err error
	if w.mapping != nil {
		err = w.mapping.Close()
	}
	w.mapping = nil
	w.words = nil
	if w.err == nil {
		w.err = errors.New("PPS register window is closed")
	}
	return err
}

type readOnly struct {
	regs   Registers
	logger logging.Logger
}

// ReadOnly wraps regs so that reads go through and writes are only logged.
func ReadOnly(regs Registers, logger logging.Logger) Registers {
	return &readOnly{regs: regs, logger: logger}
}

func (r *readOnly) Read(offset Offset) uint32 {
	return r.regs.Read(offset)
}

func (r *readOnly) Write(offset Offset, value uint32) {
	r.logger.Infof("dry run: %08x -> [%s]", value, offset)
}
