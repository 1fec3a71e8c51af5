// Package pps resolves and changes peripheral pin select routing on the PIC32MZ.
//
// The crossbar connects a fixed set of peripheral signals to a subset of the port pins. Each
// pin belongs to one of four groups. An output register per pin holds a selector code naming the
// peripheral output driving it, decoded through its group's table. Each peripheral input has a
// register holding the selector code of the pin feeding it, and a pin's code is only meaningful
// within its own group.
//
// Nothing is cached: every query reads the registers again.
package pps

import (
	"github.com/pkg/errors"

	"github.com/majenkotech/gpio-pic32/components/board/pic32mz/sfr"
	"github.com/majenkotech/gpio-pic32/logging"
)

// Only the low four bits of a PPS register are implemented.
const selectorMask = 0xf

// A Route describes how a pin is wired into the crossbar.
type Route struct {
	Group Group
	// Code is the selector value an input register holds when it is fed from the pin.
	Code uint32
	// Output is the output register of the pin. HasOutput is false for input-only pins.
	Output    sfr.Offset
	HasOutput bool
}

// Lookup returns the crossbar wiring of p, or false if p cannot be remapped.
func Lookup(p Pin) (Route, bool) {
	route, ok := pinRoutes[p]
	if !ok {
		return Route{}, false
	}
	return Route{
		Group:     route.group,
		Code:      route.code,
		Output:    route.output,
		HasOutput: route.output != 0,
	}, true
}

// Pins returns every remappable pin in ascending order.
func Pins() []Pin {
	out := make([]Pin, len(sortedPins))
	copy(out, sortedPins)
	return out
}

// A Resolver reads and writes pin routing through a register file. It is not safe for
// concurrent use; multi-register operations are not atomic.
type Resolver struct {
	regs   sfr.Registers
	logger logging.Logger
}

// NewResolver returns a resolver over regs.
func NewResolver(regs sfr.Registers, logger logging.Logger) *Resolver {
	return &Resolver{regs: regs, logger: logger}
}

func (r *Resolver) read(offset sfr.Offset) uint32 {
	return r.regs.Read(offset) & selectorMask
}

// OutputMapping returns the signal currently driven onto p, or NoConnection if there is none,
// the code is reserved, or p has no output register.
func (r *Resolver) OutputMapping(p Pin) Mode {
	route, ok := pinRoutes[p]
	if !ok || route.output == 0 {
		return NoConnection
	}
	return outputModes[route.group.index()][r.read(route.output)]
}

// InputMapping returns the first peripheral input, in scan order, whose register holds the code
// of p. It returns NoConnection if there is none or p cannot be remapped.
//
// A well formed configuration has at most one match. Further matches are logged and ignored.
func (r *Resolver) InputMapping(p Pin) Mode {
	route, ok := pinRoutes[p]
	if !ok {
		return NoConnection
	}
	found := NoConnection
	var others []string
	for _, in := range inputRoutes[route.group.index()] {
		if r.read(in.reg) != route.code {
			continue
		}
		if found == NoConnection {
			found = in.mode
		} else {
			others = append(others, in.mode.String())
		}
	}
	if len(others) != 0 {
		// Code 0 is also the reset value of every input register.
		if route.code == 0 {
			r.logger.Debugw("input code of pin is held by several registers", "pin", p, "mode", found, "ignored", others)
		} else {
			r.logger.Warnw("input code of pin is held by several registers", "pin", p, "mode", found, "ignored", others)
		}
	}
	return found
}

// ClearMapping disconnects p: every input register of its group holding its code is zeroed, then
// its output register is zeroed regardless of its content. Pins that cannot be remapped are left
// alone.
func (r *Resolver) ClearMapping(p Pin) {
	route, ok := pinRoutes[p]
	if !ok {
		return
	}
	for _, in := range inputRoutes[route.group.index()] {
		if r.read(in.reg) == route.code {
			r.regs.Write(in.reg, 0)
		}
	}
	if route.output != 0 {
		r.regs.Write(route.output, 0)
	}
}

// SetOutputMapping drives m onto p. NoConnection disconnects the output.
func (r *Resolver) SetOutputMapping(p Pin, m Mode) error {
	route, ok := pinRoutes[p]
	if !ok {
		return errors.Errorf("pin %s cannot be remapped", p)
	}
	if route.output == 0 {
		return errors.Errorf("pin %s is input only", p)
	}
	if m == NoConnection {
		r.regs.Write(route.output, 0)
		return nil
	}
	code, ok := outputCodes[route.group.index()][m]
	if !ok {
		return errors.Errorf("%s cannot be driven onto pin %s (%s)", m, p, route.group)
	}
	r.regs.Write(route.output, code)
	return nil
}

// SetInputMapping feeds the peripheral input m from p.
func (r *Resolver) SetInputMapping(p Pin, m Mode) error {
	route, ok := pinRoutes[p]
	if !ok {
		return errors.Errorf("pin %s cannot be remapped", p)
	}
	if !m.IsInput() {
		return errors.Errorf("%s is not a peripheral input", m)
	}
	if inputGroup[m] != route.group {
		return errors.Errorf("%s cannot be fed from pin %s (%s, want %s)", m, p, route.group, inputGroup[m])
	}
	r.regs.Write(inputReg[m], route.code)
	return nil
}

// Route connects m to p in whichever direction m goes. NoConnection clears every routing of p.
func (r *Resolver) Route(p Pin, m Mode) error {
	switch {
	case m == NoConnection:
		if _, ok := pinRoutes[p]; !ok {
			return errors.Errorf("pin %s cannot be remapped", p)
		}
		r.ClearMapping(p)
		return nil
	case m.IsInput():
		return r.SetInputMapping(p, m)
	case m.IsOutput():
		return r.SetOutputMapping(p, m)
	}
	return errors.Errorf("unknown mode %s", m)
}

// SupportedModes returns the signals that can be routed to p: outputs in code order, then
// inputs in scan order.
func SupportedModes(p Pin) []Mode {
	route, ok := pinRoutes[p]
	if !ok {
		return nil
	}
	var modes []Mode
	if route.output != 0 {
		for _, m := range outputModes[route.group.index()] {
			if m != NoConnection {
				modes = append(modes, m)
			}
		}
	}
	for _, in := range inputRoutes[route.group.index()] {
		modes = append(modes, in.mode)
	}
	return modes
}

// InputRegister returns the register feeding the peripheral input m.
func InputRegister(m Mode) (sfr.Offset, bool) {
	reg, ok := inputReg[m]
	return reg, ok
}
