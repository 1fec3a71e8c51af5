package pps

import (
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/pin"
)

var (
	_ pin.Pin     = (*Line)(nil)
	_ pin.PinFunc = (*Line)(nil)
)

// A Line exposes one remappable pin through the periph.io pin interfaces.
type Line struct {
	r *Resolver
	p Pin
}

// Line returns the periph.io view of p, or false if p cannot be remapped.
func (r *Resolver) Line(p Pin) (*Line, bool) {
	if _, ok := pinRoutes[p]; !ok {
		return nil, false
	}
	return &Line{r: r, p: p}, true
}

// Pin returns the pin behind the line.
func (l *Line) Pin() Pin {
	return l.p
}

func (l *Line) String() string {
	return l.p.String()
}

// Name implements pin.Pin.
func (l *Line) Name() string {
	return l.p.String()
}

// Number implements pin.Pin. It is the packed pin identifier.
func (l *Line) Number() int {
	return int(l.p)
}

// Function implements pin.Pin.
func (l *Line) Function() string {
	return string(l.Func())
}

// Halt disconnects every peripheral signal from the pin.
func (l *Line) Halt() error {
	l.r.ClearMapping(l.p)
	return nil
}

// Func returns the peripheral output driving the pin if there is one, else the peripheral
// input fed from it.
func (l *Line) Func() pin.Func {
	if m := l.r.OutputMapping(l.p); m != NoConnection {
		return m.Func()
	}
	return l.r.InputMapping(l.p).Func()
}

// SupportedFuncs implements pin.PinFunc.
func (l *Line) SupportedFuncs() []pin.Func {
	modes := SupportedModes(l.p)
	out := make([]pin.Func, 0, len(modes))
	for _, m := range modes {
		out = append(out, m.Func())
	}
	return out
}

// SetFunc routes f to the pin. pin.FuncNone disconnects it.
func (l *Line) SetFunc(f pin.Func) error {
	m, err := ModeFromFunc(f)
	if err != nil {
		return errors.Wrapf(err, "pin %s", l.p)
	}
	return l.r.Route(l.p, m)
}
