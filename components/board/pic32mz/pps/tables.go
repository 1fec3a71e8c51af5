package pps

import (
	"sort"
	"strconv"

	"github.com/majenkotech/gpio-pic32/components/board/pic32mz/sfr"
)

// A Group is one of the four register families that share a selector code table.
type Group int

const numGroups = 4

func (g Group) String() string {
	return "group " + strconv.Itoa(int(g))
}

func (g Group) index() int {
	return int(g) - 1
}

// outputModes maps a group and the selector code held by an output register to the signal
// driving the pin. Codes left out are reserved and decode as NoConnection.
var outputModes = [numGroups][16]Mode{
	{ // group 1
		1:  U3TX,
		2:  U4RTS,
		5:  SDO1,
		6:  SDO2,
		7:  SDO3,
		9:  SDO5,
		10: SS6O,
		11: OC3,
		12: OC6,
		13: REFCLKO4,
		14: C2OUT,
		15: C1TX,
	},
	{ // group 2
		1:  U1TX,
		2:  U2RTS,
		3:  U5TX,
		4:  U6RTS,
		5:  SDO1,
		6:  SDO2,
		7:  SDO3,
		8:  SDO4,
		9:  SDO5,
		11: OC4,
		12: OC7,
		15: REFCLKO1,
	},
	{ // group 3
		1:  U3RTS,
		2:  U4TX,
		4:  U6TX,
		5:  SS1O,
		7:  SS3O,
		8:  SS4O,
		9:  SS5O,
		10: SDO6,
		11: OC5,
		12: OC8,
		14: C1OUT,
		15: REFCLKO3,
	},
	{ // group 4
		1:  U1RTS,
		2:  U2TX,
		3:  U5RTS,
		4:  U6TX,
		6:  SS2O,
		8:  SDO4,
		10: SDO6,
		11: OC2,
		12: OC1,
		13: OC9,
		15: C2TX,
	},
}

type inputRoute struct {
	reg  sfr.Offset
	mode Mode
}

// inputRoutes lists, per group, the input registers and the signal each feeds. The order is the
// order in which registers are scanned when resolving a pin's input mapping.
var inputRoutes = [numGroups][]inputRoute{
	{ // group 1
		{INT3R, INT3},
		{T2CKR, T2CK},
		{T6CKR, T6CK},
		{IC3R, IC3},
		{IC7R, IC7},
		{U1RXR, U1RX},
		{U2CTSR, U2CTS},
		{U5RXR, U5RX},
		{U6CTSR, U6CTS},
		{SDI1R, SDI1},
		{SDI3R, SDI3},
		{SDI5R, SDI5},
		{SS6R, SS6I},
		{REFCLKI1R, REFCLKI1},
	},
	{ // group 2
		{INT4R, INT4},
		{T5CKR, T5CK},
		{T7CKR, T7CK},
		{IC4R, IC4},
		{IC8R, IC8},
		{U3RXR, U3RX},
		{U4CTSR, U4CTS},
		{SDI2R, SDI2},
		{SDI4R, SDI4},
		{C1RXR, C1RX},
		{REFCLKI4R, REFCLKI4},
	},
	{ // group 3
		{INT2R, INT2},
		{T3CKR, T3CK},
		{T8CKR, T8CK},
		{IC2R, IC2},
		{IC5R, IC5},
		{IC9R, IC9},
		{U1CTSR, U1CTS},
		{U2RXR, U2RX},
		{U5CTSR, U5CTS},
		{SS1R, SS1I},
		{SS3R, SS3I},
		{SS4R, SS4I},
		{SS5R, SS5I},
		{C2RXR, C2RX},
	},
	{ // group 4
		{INT1R, INT1},
		{T4CKR, T4CK},
		{T9CKR, T9CK},
		{IC1R, IC1},
		{IC6R, IC6},
		{U3CTSR, U3CTS},
		{U4RXR, U4RX},
		{U6RXR, U6RX},
		{SS2R, SS2I},
		{SDI6R, SDI6},
		{OCFAR, OCFA},
		{REFCLKI3R, REFCLKI3},
	},
}

type pinRoute struct {
	group Group
	// code is the selector value an input register holds when it is fed from this pin.
	code uint32
	// output is the pin's output register, zero for input-only pins.
	output sfr.Offset
}

var pinRoutes = map[Pin]pinRoute{
	GPIOPin('A', 14): {1, 13, RPA14R},
	GPIOPin('A', 15): {2, 13, RPA15R},
	GPIOPin('B', 0):  {3, 5, RPB0R},
	GPIOPin('B', 1):  {2, 5, RPB1R},
	GPIOPin('B', 2):  {4, 7, RPB2R},
	GPIOPin('B', 3):  {2, 8, RPB3R},
	GPIOPin('B', 5):  {1, 8, RPB5R},
	GPIOPin('B', 6):  {4, 5, RPB6R},
	GPIOPin('B', 7):  {3, 7, RPB7R},
	GPIOPin('B', 8):  {3, 2, RPB8R},
	GPIOPin('B', 9):  {1, 5, RPB9R},
	GPIOPin('B', 10): {1, 6, RPB10R},
	GPIOPin('B', 15): {3, 3, RPB15R},
	GPIOPin('C', 1):  {1, 10, RPC1R},
	GPIOPin('C', 2):  {4, 12, RPC2R},
	GPIOPin('C', 3):  {3, 12, RPC3R},
	GPIOPin('C', 4):  {2, 10, RPC4R},
	GPIOPin('C', 13): {group: 2, code: 7},
	GPIOPin('C', 14): {group: 1, code: 7},
	GPIOPin('D', 0):  {4, 3, RPD0R},
	GPIOPin('D', 2):  {1, 0, RPD2R},
	GPIOPin('D', 3):  {2, 0, RPD3R},
	GPIOPin('D', 4):  {3, 4, RPD4R},
	GPIOPin('D', 5):  {4, 6, RPD5R},
	GPIOPin('D', 6):  {1, 14, RPD6R},
	GPIOPin('D', 7):  {2, 14, RPD7R},
	GPIOPin('D', 9):  {3, 0, RPD9R},
	GPIOPin('D', 11): {2, 3, RPD11R},
	GPIOPin('D', 12): {3, 10, RPD12R},
	GPIOPin('D', 14): {1, 11, RPD14R},
	GPIOPin('E', 3):  {3, 6, RPE3R},
	GPIOPin('E', 5):  {2, 6, RPE5R},
	GPIOPin('E', 8):  {4, 13, RPE8R},
	GPIOPin('E', 9):  {3, 13, RPE9R},
	GPIOPin('F', 0):  {2, 4, RPF0R},
	GPIOPin('F', 1):  {1, 4, RPF1R},
	GPIOPin('F', 2):  {4, 11, RPF2R},
	GPIOPin('F', 3):  {4, 8, RPF3R},
	GPIOPin('F', 4):  {1, 2, RPF4R},
	GPIOPin('F', 5):  {2, 2, RPF5R},
	GPIOPin('F', 8):  {3, 11, RPF8R},
	GPIOPin('F', 12): {3, 9, RPF12R},
	GPIOPin('G', 0):  {2, 12, RPG0R},
	GPIOPin('G', 1):  {1, 12, RPG1R},
	GPIOPin('G', 7):  {2, 1, RPG7R},
	GPIOPin('G', 8):  {1, 1, RPG8R},
	GPIOPin('G', 9):  {4, 1, RPG9R},
}

// Reverse lookups of the tables above, filled in by init.
var (
	outputCodes [numGroups]map[Mode]uint32
	inputGroup  = map[Mode]Group{}
	inputReg    = map[Mode]sfr.Offset{}
	sortedPins  []Pin
)

func init() {
	for g := range outputModes {
		outputCodes[g] = map[Mode]uint32{}
		for code, m := range outputModes[g] {
			if m != NoConnection {
				outputCodes[g][m] = uint32(code)
			}
		}
	}
	for g, routes := range inputRoutes {
		for _, in := range routes {
			inputGroup[in.mode] = Group(g + 1)
			inputReg[in.mode] = in.reg
		}
	}
	for p := range pinRoutes {
		sortedPins = append(sortedPins, p)
	}
	sort.Slice(sortedPins, func(i, j int) bool { return sortedPins[i] < sortedPins[j] })
}
