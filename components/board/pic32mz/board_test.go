package pic32mz

import (
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
	"periph.io/x/conn/v3/pin"

	"github.com/majenkotech/gpio-pic32/components/board/pic32mz/pps"
	"github.com/majenkotech/gpio-pic32/components/board/pic32mz/sfr"
	"github.com/majenkotech/gpio-pic32/components/board/pic32mz/sfr/fake"
	"github.com/majenkotech/gpio-pic32/logging"
)

type memMapping struct {
	words  []uint32
	closed bool
}

func (m *memMapping) Uint32() []uint32 {
	return m.words
}

func (m *memMapping) Close() error {
	m.closed = true
	return nil
}

func memMapper(mapping *memMapping) sfr.Option {
	return sfr.WithMapFunc(func(base uint64, size int) (sfr.Mapping, error) {
		return mapping, nil
	})
}

func wordOf(offset sfr.Offset) int {
	return int(offset&0xfff) / 4
}

func TestNewBoard(t *testing.T) {
	mapping := &memMapping{words: make([]uint32, sfr.WindowSize/4)}
	b, err := NewBoard(&Config{}, logging.NewTestLogger(t), memMapper(mapping))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, b.Open(), test.ShouldBeNil)

	test.That(t, b.PPS().SetOutputMapping(pps.GPIOPin('D', 2), pps.U3TX), test.ShouldBeNil)
	test.That(t, mapping.words[wordOf(pps.RPD2R)], test.ShouldEqual, uint32(1))
	test.That(t, b.PPS().OutputMapping(pps.GPIOPin('D', 2)), test.ShouldEqual, pps.U3TX)

	test.That(t, b.Close(), test.ShouldBeNil)
	test.That(t, mapping.closed, test.ShouldBeTrue)
}

func TestNewBoardDryRun(t *testing.T) {
	mapping := &memMapping{words: make([]uint32, sfr.WindowSize/4)}
	mapping.words[wordOf(pps.RPB5R)] = 7
	b, err := NewBoard(&Config{DryRun: true}, logging.NewTestLogger(t), memMapper(mapping))
	test.That(t, err, test.ShouldBeNil)

	test.That(t, b.PPS().OutputMapping(pps.GPIOPin('B', 5)), test.ShouldEqual, pps.SDO3)
	b.PPS().ClearMapping(pps.GPIOPin('B', 5))
	test.That(t, mapping.words[wordOf(pps.RPB5R)], test.ShouldEqual, uint32(7))
	test.That(t, b.Close(), test.ShouldBeNil)
}

func TestNewBoardErrors(t *testing.T) {
	_, err := NewBoard(&Config{BaseAddress: 0x10}, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldNotBeNil)

	b, err := NewBoard(&Config{}, logging.NewTestLogger(t),
		sfr.WithMapFunc(func(base uint64, size int) (sfr.Mapping, error) {
			return nil, errors.New("permission denied")
		}))
	test.That(t, err, test.ShouldBeNil)
	err = b.Open()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "permission denied")
	test.That(t, b.Close(), test.ShouldBeNil)
}

func TestBoardFromRegisters(t *testing.T) {
	regs := fake.NewRegisters()
	b := NewBoardFromRegisters(regs, logging.NewTestLogger(t))
	test.That(t, b.Open(), test.ShouldBeNil)

	line, err := b.LineByName("rg9")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, line.Name(), test.ShouldEqual, "RG9")
	test.That(t, line.SetFunc("UART2_TX"), test.ShouldBeNil)
	test.That(t, regs.Read(pps.RPG9R), test.ShouldEqual, uint32(2))
	test.That(t, line.Func(), test.ShouldEqual, pin.Func("UART2_TX"))

	_, err = b.LineByName("RA0")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "RA0")

	_, err = b.LineByName("bogus")
	test.That(t, err, test.ShouldNotBeNil)

	test.That(t, b.Close(), test.ShouldBeNil)
}
