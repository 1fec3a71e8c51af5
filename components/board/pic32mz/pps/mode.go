package pps

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"periph.io/x/conn/v3/pin"
)

// A Mode is a peripheral signal that can be routed through the pin select crossbar. The zero
// value is NoConnection.
type Mode uint8

// NoConnection means no peripheral signal is routed.
const NoConnection Mode = 0

// Output signals, driven by a peripheral onto a pin.
const (
	U1TX Mode = iota + 1
	U1RTS
	U2TX
	U2RTS
	U3TX
	U3RTS
	U4TX
	U4RTS
	U5TX
	U5RTS
	U6TX
	U6RTS
	SDO1
	SDO2
	SDO3
	SDO4
	SDO5
	SDO6
	SS1O
	SS2O
	SS3O
	SS4O
	SS5O
	SS6O
	OC1
	OC2
	OC3
	OC4
	OC5
	OC6
	OC7
	OC8
	OC9
	C1OUT
	C2OUT
	C1TX
	C2TX
	REFCLKO1
	REFCLKO3
	REFCLKO4

	firstInput
)

// Input signals, read by a peripheral from a pin.
const (
	INT1 = iota + firstInput
	INT2
	INT3
	INT4
	T2CK
	T3CK
	T4CK
	T5CK
	T6CK
	T7CK
	T8CK
	T9CK
	IC1
	IC2
	IC3
	IC4
	IC5
	IC6
	IC7
	IC8
	IC9
	OCFA
	U1RX
	U1CTS
	U2RX
	U2CTS
	U3RX
	U3CTS
	U4RX
	U4CTS
	U5RX
	U5CTS
	U6RX
	U6CTS
	SDI1
	SDI2
	SDI3
	SDI4
	SDI5
	SDI6
	SS1I
	SS2I
	SS3I
	SS4I
	SS5I
	SS6I
	C1RX
	C2RX
	REFCLKI1
	REFCLKI3
	REFCLKI4

	numModes
)

var modeNames = [numModes]struct {
	name string
	fn   pin.Func
}{
	NoConnection: {"NC", pin.FuncNone},
	U1TX:         {"U1TX", "UART1_TX"},
	U1RTS:        {"U1RTS", "UART1_RTS"},
	U2TX:         {"U2TX", "UART2_TX"},
	U2RTS:        {"U2RTS", "UART2_RTS"},
	U3TX:         {"U3TX", "UART3_TX"},
	U3RTS:        {"U3RTS", "UART3_RTS"},
	U4TX:         {"U4TX", "UART4_TX"},
	U4RTS:        {"U4RTS", "UART4_RTS"},
	U5TX:         {"U5TX", "UART5_TX"},
	U5RTS:        {"U5RTS", "UART5_RTS"},
	U6TX:         {"U6TX", "UART6_TX"},
	U6RTS:        {"U6RTS", "UART6_RTS"},
	SDO1:         {"SDO1", "SPI1_SDO"},
	SDO2:         {"SDO2", "SPI2_SDO"},
	SDO3:         {"SDO3", "SPI3_SDO"},
	SDO4:         {"SDO4", "SPI4_SDO"},
	SDO5:         {"SDO5", "SPI5_SDO"},
	SDO6:         {"SDO6", "SPI6_SDO"},
	SS1O:         {"SS1O", "SPI1_SS_OUT"},
	SS2O:         {"SS2O", "SPI2_SS_OUT"},
	SS3O:         {"SS3O", "SPI3_SS_OUT"},
	SS4O:         {"SS4O", "SPI4_SS_OUT"},
	SS5O:         {"SS5O", "SPI5_SS_OUT"},
	SS6O:         {"SS6O", "SPI6_SS_OUT"},
	OC1:          {"OC1", "OC1"},
	OC2:          {"OC2", "OC2"},
	OC3:          {"OC3", "OC3"},
	OC4:          {"OC4", "OC4"},
	OC5:          {"OC5", "OC5"},
	OC6:          {"OC6", "OC6"},
	OC7:          {"OC7", "OC7"},
	OC8:          {"OC8", "OC8"},
	OC9:          {"OC9", "OC9"},
	C1OUT:        {"C1OUT", "CMP1_OUT"},
	C2OUT:        {"C2OUT", "CMP2_OUT"},
	C1TX:         {"C1TX", "CAN1_TX"},
	C2TX:         {"C2TX", "CAN2_TX"},
	REFCLKO1:     {"REFCLKO1", "REFCLK1_OUT"},
	REFCLKO3:     {"REFCLKO3", "REFCLK3_OUT"},
	REFCLKO4:     {"REFCLKO4", "REFCLK4_OUT"},
	INT1:         {"INT1", "INT1"},
	INT2:         {"INT2", "INT2"},
	INT3:         {"INT3", "INT3"},
	INT4:         {"INT4", "INT4"},
	T2CK:         {"T2CK", "TIMER2_CLK"},
	T3CK:         {"T3CK", "TIMER3_CLK"},
	T4CK:         {"T4CK", "TIMER4_CLK"},
	T5CK:         {"T5CK", "TIMER5_CLK"},
	T6CK:         {"T6CK", "TIMER6_CLK"},
	T7CK:         {"T7CK", "TIMER7_CLK"},
	T8CK:         {"T8CK", "TIMER8_CLK"},
	T9CK:         {"T9CK", "TIMER9_CLK"},
	IC1:          {"IC1", "IC1"},
	IC2:          {"IC2", "IC2"},
	IC3:          {"IC3", "IC3"},
	IC4:          {"IC4", "IC4"},
	IC5:          {"IC5", "IC5"},
	IC6:          {"IC6", "IC6"},
	IC7:          {"IC7", "IC7"},
	IC8:          {"IC8", "IC8"},
	IC9:          {"IC9", "IC9"},
	OCFA:         {"OCFA", "OC_FAULT_A"},
	U1RX:         {"U1RX", "UART1_RX"},
	U1CTS:        {"U1CTS", "UART1_CTS"},
	U2RX:         {"U2RX", "UART2_RX"},
	U2CTS:        {"U2CTS", "UART2_CTS"},
	U3RX:         {"U3RX", "UART3_RX"},
	U3CTS:        {"U3CTS", "UART3_CTS"},
	U4RX:         {"U4RX", "UART4_RX"},
	U4CTS:        {"U4CTS", "UART4_CTS"},
	U5RX:         {"U5RX", "UART5_RX"},
	U5CTS:        {"U5CTS", "UART5_CTS"},
	U6RX:         {"U6RX", "UART6_RX"},
	U6CTS:        {"U6CTS", "UART6_CTS"},
	SDI1:         {"SDI1", "SPI1_SDI"},
	SDI2:         {"SDI2", "SPI2_SDI"},
	SDI3:         {"SDI3", "SPI3_SDI"},
	SDI4:         {"SDI4", "SPI4_SDI"},
	SDI5:         {"SDI5", "SPI5_SDI"},
	SDI6:         {"SDI6", "SPI6_SDI"},
	SS1I:         {"SS1I", "SPI1_SS_IN"},
	SS2I:         {"SS2I", "SPI2_SS_IN"},
	SS3I:         {"SS3I", "SPI3_SS_IN"},
	SS4I:         {"SS4I", "SPI4_SS_IN"},
	SS5I:         {"SS5I", "SPI5_SS_IN"},
	SS6I:         {"SS6I", "SPI6_SS_IN"},
	C1RX:         {"C1RX", "CAN1_RX"},
	C2RX:         {"C2RX", "CAN2_RX"},
	REFCLKI1:     {"REFCLKI1", "REFCLK1_IN"},
	REFCLKI3:     {"REFCLKI3", "REFCLK3_IN"},
	REFCLKI4:     {"REFCLKI4", "REFCLK4_IN"},
}

// String returns the datasheet name of the signal, e.g. "U3TX".
func (m Mode) String() string {
	if m >= numModes {
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
	return modeNames[m].name
}

// Func returns the periph.io function name of the signal, e.g. "UART3_TX".
func (m Mode) Func() pin.Func {
	if m >= numModes {
		return pin.FuncNone
	}
	return modeNames[m].fn
}

// IsOutput reports whether the signal is driven onto a pin.
func (m Mode) IsOutput() bool {
	return m > NoConnection && m < firstInput
}

// IsInput reports whether the signal is read from a pin.
func (m Mode) IsInput() bool {
	return m >= firstInput && m < numModes
}

// ParseMode parses either form of a signal name, case-insensitively: "U3TX" or "UART3_TX".
func ParseMode(name string) (Mode, error) {
	s := strings.ToUpper(strings.TrimSpace(name))
	if s == "" {
		return NoConnection, errors.New("empty mode name")
	}
	for m := NoConnection; m < numModes; m++ {
		if s == modeNames[m].name || (m != NoConnection && s == string(modeNames[m].fn)) {
			return m, nil
		}
	}
	return NoConnection, errors.Errorf("unknown mode %q", name)
}

// ModeFromFunc returns the signal whose periph.io function name is f. A generalized function
// such as "UART3_TX" and its datasheet name are both accepted.
func ModeFromFunc(f pin.Func) (Mode, error) {
	if f == pin.FuncNone {
		return NoConnection, nil
	}
	return ParseMode(string(f))
}
