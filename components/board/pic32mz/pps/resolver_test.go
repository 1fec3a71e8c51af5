package pps

import (
	"testing"

	"go.viam.com/test"

	"github.com/majenkotech/gpio-pic32/components/board/pic32mz/sfr"
	"github.com/majenkotech/gpio-pic32/components/board/pic32mz/sfr/fake"
	"github.com/majenkotech/gpio-pic32/logging"
)

// No pin uses selector code 15, so an input register holding it is fed from nowhere.
const idleCode = 15

func idleRegisters() *fake.Registers {
	regs := fake.NewRegisters()
	for _, routes := range inputRoutes {
		for _, in := range routes {
			regs.Set(in.reg, idleCode)
		}
	}
	return regs
}

func outputPins() []Pin {
	var pins []Pin
	for _, p := range Pins() {
		if route, _ := Lookup(p); route.HasOutput {
			pins = append(pins, p)
		}
	}
	return pins
}

const nc = NoConnection

var expectedOutputModes = map[Group][16]Mode{
	1: {nc, U3TX, U4RTS, nc, nc, SDO1, SDO2, SDO3, nc, SDO5, SS6O, OC3, OC6, REFCLKO4, C2OUT, C1TX},
	2: {nc, U1TX, U2RTS, U5TX, U6RTS, SDO1, SDO2, SDO3, SDO4, SDO5, nc, OC4, OC7, nc, nc, REFCLKO1},
	3: {nc, U3RTS, U4TX, nc, U6TX, SS1O, nc, SS3O, SS4O, SS5O, SDO6, OC5, OC8, nc, C1OUT, REFCLKO3},
	4: {nc, U1RTS, U2TX, U5RTS, U6TX, nc, SS2O, nc, SDO4, nc, SDO6, OC2, OC1, OC9, nc, C2TX},
}

func TestOutputMappingTables(t *testing.T) {
	regs := fake.NewRegisters()
	r := NewResolver(regs, logging.NewTestLogger(t))

	for _, p := range outputPins() {
		route, _ := Lookup(p)
		for code := uint32(0); code < 16; code++ {
			regs.Set(route.Output, code)
			test.That(t, r.OutputMapping(p), test.ShouldEqual, expectedOutputModes[route.Group][code])
		}
	}
}

func TestOutputMappingIgnoresUpperBits(t *testing.T) {
	regs := fake.NewRegisters()
	r := NewResolver(regs, logging.NewTestLogger(t))

	regs.Set(RPD2R, 0xfffffff1)
	test.That(t, r.OutputMapping(GPIOPin('D', 2)), test.ShouldEqual, U3TX)
	regs.Set(RPD2R, 0x10)
	test.That(t, r.OutputMapping(GPIOPin('D', 2)), test.ShouldEqual, NoConnection)
}

func TestOutputMappingScenarioRD2(t *testing.T) {
	regs := fake.NewRegisters()
	r := NewResolver(regs, logging.NewTestLogger(t))
	rd2 := GPIOPin('D', 2)

	regs.Set(RPD2R, 1)
	test.That(t, r.OutputMapping(rd2), test.ShouldEqual, U3TX)

	regs.Set(RPD2R, 0)
	test.That(t, r.OutputMapping(rd2), test.ShouldEqual, NoConnection)

	regs.Set(RPD2R, 1)
	r.ClearMapping(rd2)
	test.That(t, regs.Read(RPD2R), test.ShouldEqual, uint32(0))
	test.That(t, r.OutputMapping(rd2), test.ShouldEqual, NoConnection)
}

func TestMappingUnknownPins(t *testing.T) {
	regs := idleRegisters()
	r := NewResolver(regs, logging.NewTestLogger(t))

	for _, p := range []Pin{GPIOPin('A', 0), GPIOPin('H', 3), GPIOPin('C', 12), Pin(-1), Pin(1000)} {
		test.That(t, r.OutputMapping(p), test.ShouldEqual, NoConnection)
		test.That(t, r.InputMapping(p), test.ShouldEqual, NoConnection)
		r.ClearMapping(p)
	}
	test.That(t, regs.Writes(), test.ShouldBeEmpty)
}

func TestInputOnlyPins(t *testing.T) {
	regs := idleRegisters()
	r := NewResolver(regs, logging.NewTestLogger(t))

	for _, p := range []Pin{GPIOPin('C', 13), GPIOPin('C', 14)} {
		route, ok := Lookup(p)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, route.HasOutput, test.ShouldBeFalse)
		test.That(t, r.OutputMapping(p), test.ShouldEqual, NoConnection)
	}

	// RC14 feeds group 1 with code 7.
	regs.Set(U1RXR, 7)
	test.That(t, r.InputMapping(GPIOPin('C', 14)), test.ShouldEqual, U1RX)

	r.ClearMapping(GPIOPin('C', 14))
	test.That(t, regs.Writes(), test.ShouldResemble, []fake.Write{{Offset: U1RXR, Value: 0}})
}

func TestInputMappingEveryFunction(t *testing.T) {
	logger := logging.NewTestLogger(t)

	for g, routes := range inputRoutes {
		group := Group(g + 1)
		for _, in := range routes {
			for _, p := range Pins() {
				route, _ := Lookup(p)
				if route.Group != group {
					continue
				}
				regs := idleRegisters()
				r := NewResolver(regs, logger)
				test.That(t, r.InputMapping(p), test.ShouldEqual, NoConnection)

				regs.Set(in.reg, route.Code)
				test.That(t, r.InputMapping(p), test.ShouldEqual, in.mode)

				if route.Code != 0 {
					regs.Set(in.reg, 0)
					test.That(t, r.InputMapping(p), test.ShouldEqual, NoConnection)
				}
			}
		}
	}
}

func TestInputMappingIgnoresOtherGroups(t *testing.T) {
	regs := idleRegisters()
	r := NewResolver(regs, logging.NewTestLogger(t))

	// RB5 is code 8 in group 1. INT4R belongs to group 2, where code 8 is RB3.
	regs.Set(INT4R, 8)
	test.That(t, r.InputMapping(GPIOPin('B', 5)), test.ShouldEqual, NoConnection)
	test.That(t, r.InputMapping(GPIOPin('B', 3)), test.ShouldEqual, INT4)
}

func TestInputMappingFirstMatch(t *testing.T) {
	logger, logs := logging.NewObservedTestLogger(t)
	regs := idleRegisters()
	r := NewResolver(regs, logger)
	rb5 := GPIOPin('B', 5)

	regs.Set(SDI1R, 8)
	regs.Set(INT3R, 8)
	test.That(t, r.InputMapping(rb5), test.ShouldEqual, INT3)

	warnings := logs.FilterMessage("input code of pin is held by several registers").All()
	test.That(t, warnings, test.ShouldHaveLength, 1)
	test.That(t, warnings[0].Level.String(), test.ShouldEqual, "warn")
	test.That(t, warnings[0].ContextMap()["pin"], test.ShouldEqual, "RB5")
	test.That(t, warnings[0].ContextMap()["mode"], test.ShouldEqual, "INT3")
}

func TestInputMappingResetState(t *testing.T) {
	logger, logs := logging.NewObservedTestLogger(t)
	regs := fake.NewRegisters()
	r := NewResolver(regs, logger)

	// Every input register resets to 0, which is the code of RD2 in group 1.
	test.That(t, r.InputMapping(GPIOPin('D', 2)), test.ShouldEqual, INT3)
	test.That(t, r.InputMapping(GPIOPin('D', 3)), test.ShouldEqual, INT4)
	test.That(t, r.InputMapping(GPIOPin('D', 9)), test.ShouldEqual, INT2)
	test.That(t, r.InputMapping(GPIOPin('B', 5)), test.ShouldEqual, NoConnection)

	for _, entry := range logs.All() {
		test.That(t, entry.Level.String(), test.ShouldEqual, "debug")
	}
}

func TestClearMappingOutput(t *testing.T) {
	regs := idleRegisters()
	r := NewResolver(regs, logging.NewTestLogger(t))

	for _, p := range outputPins() {
		route, _ := Lookup(p)
		for _, value := range []uint32{0, 1, 0xf, 0xdeadbeef} {
			regs.Set(route.Output, value)
			r.ClearMapping(p)
			test.That(t, regs.Read(route.Output), test.ShouldEqual, uint32(0))
			test.That(t, r.OutputMapping(p), test.ShouldEqual, NoConnection)
		}
	}
}

func TestClearMappingNoCollateral(t *testing.T) {
	regs := idleRegisters()
	r := NewResolver(regs, logging.NewTestLogger(t))

	// Group 1: RB5 is code 8, RB9 is code 5.
	regs.Set(INT3R, 8)
	regs.Set(SDI3R, 8)
	regs.Set(T2CKR, 5)
	regs.Set(RPB5R, 5)
	regs.Set(RPB9R, 9)
	// Group 2 code 8 is RB3.
	regs.Set(IC4R, 8)

	r.ClearMapping(GPIOPin('B', 5))

	test.That(t, regs.Read(INT3R), test.ShouldEqual, uint32(0))
	test.That(t, regs.Read(SDI3R), test.ShouldEqual, uint32(0))
	test.That(t, regs.Read(RPB5R), test.ShouldEqual, uint32(0))
	test.That(t, regs.Read(T2CKR), test.ShouldEqual, uint32(5))
	test.That(t, regs.Read(RPB9R), test.ShouldEqual, uint32(9))
	test.That(t, regs.Read(IC4R), test.ShouldEqual, uint32(8))
	test.That(t, regs.Writes(), test.ShouldResemble, []fake.Write{
		{Offset: INT3R, Value: 0},
		{Offset: SDI3R, Value: 0},
		{Offset: RPB5R, Value: 0},
	})
}

func TestClearMappingIdempotent(t *testing.T) {
	for _, p := range Pins() {
		route, _ := Lookup(p)
		regs := idleRegisters()
		r := NewResolver(regs, logging.NewTestLogger(t))

		// Feed two inputs of the group from the pin and one from elsewhere.
		routes := inputRoutes[route.Group.index()]
		regs.Set(routes[0].reg, route.Code)
		regs.Set(routes[len(routes)-1].reg, route.Code)
		regs.Set(routes[1].reg, (route.Code+1)%idleCode)
		if route.HasOutput {
			regs.Set(route.Output, 3)
		}

		r.ClearMapping(p)
		once := regs.Snapshot()
		r.ClearMapping(p)
		test.That(t, regs.Snapshot(), test.ShouldResemble, once)
		if route.Code != 0 {
			test.That(t, r.InputMapping(p), test.ShouldEqual, NoConnection)
		}
	}
}

func TestOutputRoundTrip(t *testing.T) {
	regs := fake.NewRegisters()
	r := NewResolver(regs, logging.NewTestLogger(t))

	for _, p := range outputPins() {
		route, _ := Lookup(p)
		for code, m := range expectedOutputModes[route.Group] {
			if m == NoConnection {
				continue
			}
			test.That(t, r.SetOutputMapping(p, m), test.ShouldBeNil)
			test.That(t, regs.Read(route.Output), test.ShouldEqual, uint32(code))
			test.That(t, r.OutputMapping(p), test.ShouldEqual, m)
		}
		test.That(t, r.SetOutputMapping(p, NoConnection), test.ShouldBeNil)
		test.That(t, r.OutputMapping(p), test.ShouldEqual, NoConnection)
	}
}

func TestSetOutputMappingErrors(t *testing.T) {
	regs := fake.NewRegisters()
	r := NewResolver(regs, logging.NewTestLogger(t))

	err := r.SetOutputMapping(GPIOPin('D', 2), U1TX)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "group 1")

	err = r.SetOutputMapping(GPIOPin('C', 13), U1TX)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "input only")

	err = r.SetOutputMapping(GPIOPin('H', 0), U1TX)
	test.That(t, err, test.ShouldNotBeNil)

	test.That(t, regs.Writes(), test.ShouldBeEmpty)
}

func TestSetInputMapping(t *testing.T) {
	for _, p := range Pins() {
		route, _ := Lookup(p)
		for _, in := range inputRoutes[route.Group.index()] {
			regs := idleRegisters()
			r := NewResolver(regs, logging.NewTestLogger(t))
			test.That(t, r.SetInputMapping(p, in.mode), test.ShouldBeNil)
			test.That(t, regs.Writes(), test.ShouldResemble, []fake.Write{{Offset: in.reg, Value: route.Code}})
			test.That(t, r.InputMapping(p), test.ShouldEqual, in.mode)
		}
	}
}

func TestSetInputMappingErrors(t *testing.T) {
	regs := fake.NewRegisters()
	r := NewResolver(regs, logging.NewTestLogger(t))

	err := r.SetInputMapping(GPIOPin('D', 2), INT4)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "want group 2")

	err = r.SetInputMapping(GPIOPin('D', 2), U3TX)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "not a peripheral input")

	err = r.SetInputMapping(GPIOPin('J', 1), INT3)
	test.That(t, err, test.ShouldNotBeNil)

	test.That(t, regs.Writes(), test.ShouldBeEmpty)
}

func TestRoute(t *testing.T) {
	regs := idleRegisters()
	r := NewResolver(regs, logging.NewTestLogger(t))
	rb5 := GPIOPin('B', 5)

	test.That(t, r.Route(rb5, SDO1), test.ShouldBeNil)
	test.That(t, regs.Read(RPB5R), test.ShouldEqual, uint32(5))

	test.That(t, r.Route(rb5, U1RX), test.ShouldBeNil)
	test.That(t, regs.Read(U1RXR), test.ShouldEqual, uint32(8))

	test.That(t, r.Route(rb5, NoConnection), test.ShouldBeNil)
	test.That(t, regs.Read(RPB5R), test.ShouldEqual, uint32(0))
	test.That(t, regs.Read(U1RXR), test.ShouldEqual, uint32(0))

	test.That(t, r.Route(GPIOPin('H', 0), NoConnection), test.ShouldNotBeNil)
	test.That(t, r.Route(rb5, Mode(200)), test.ShouldNotBeNil)
}

func TestSupportedModes(t *testing.T) {
	modes := SupportedModes(GPIOPin('D', 2))
	test.That(t, modes, test.ShouldHaveLength, 12+14)
	test.That(t, modes[0], test.ShouldEqual, U3TX)
	test.That(t, modes[12], test.ShouldEqual, INT3)

	// RC13 only has the inputs of group 2.
	modes = SupportedModes(GPIOPin('C', 13))
	test.That(t, modes, test.ShouldHaveLength, 11)
	test.That(t, modes[0], test.ShouldEqual, INT4)

	test.That(t, SupportedModes(GPIOPin('A', 0)), test.ShouldBeNil)
}

func TestTables(t *testing.T) {
	pins := Pins()
	test.That(t, pins, test.ShouldHaveLength, 47)
	test.That(t, outputPins(), test.ShouldHaveLength, 45)
	for i := 1; i < len(pins); i++ {
		test.That(t, pins[i-1], test.ShouldBeLessThan, pins[i])
	}

	// Output registers belong to exactly one pin.
	owners := map[sfr.Offset]Pin{}
	for _, p := range outputPins() {
		route, _ := Lookup(p)
		_, dup := owners[route.Output]
		test.That(t, dup, test.ShouldBeFalse)
		owners[route.Output] = p
		test.That(t, RegisterName(route.Output), test.ShouldEqual, "RP"+p.String()[1:]+"R")
	}

	// Registers with no pin route are still named.
	for reg, name := range map[sfr.Offset]string{
		RPB14R: "RPB14R", RPC13R: "RPC13R", RPC14R: "RPC14R", RPD1R: "RPD1R",
		RPD10R: "RPD10R", RPD15R: "RPD15R", RPF13R: "RPF13R", RPG6R: "RPG6R",
	} {
		_, routed := owners[reg]
		test.That(t, routed, test.ShouldBeFalse)
		test.That(t, RegisterName(reg), test.ShouldEqual, name)
	}

	// Within a group, a code names one pin.
	codes := map[Group]map[uint32]Pin{}
	for _, p := range pins {
		route, _ := Lookup(p)
		test.That(t, route.Code, test.ShouldBeLessThan, uint32(idleCode))
		if codes[route.Group] == nil {
			codes[route.Group] = map[uint32]Pin{}
		}
		_, dup := codes[route.Group][route.Code]
		test.That(t, dup, test.ShouldBeFalse)
		codes[route.Group][route.Code] = p
	}

	// Each peripheral input has one register in one group.
	seen := map[Mode]bool{}
	for _, routes := range inputRoutes {
		for _, in := range routes {
			test.That(t, in.mode.IsInput(), test.ShouldBeTrue)
			test.That(t, seen[in.mode], test.ShouldBeFalse)
			seen[in.mode] = true
		}
	}
	test.That(t, seen, test.ShouldHaveLength, int(numModes-firstInput))
}
