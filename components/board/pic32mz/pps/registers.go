package pps

import "github.com/majenkotech/gpio-pic32/components/board/pic32mz/sfr"

// Input pin select registers. Each holds the selector code of the pin feeding one peripheral
// input.
const (
	INT1R     sfr.Offset = 0x1404
	INT2R     sfr.Offset = 0x1408
	INT3R     sfr.Offset = 0x140c
	INT4R     sfr.Offset = 0x1410
	T2CKR     sfr.Offset = 0x1418
	T3CKR     sfr.Offset = 0x141c
	T4CKR     sfr.Offset = 0x1420
	T5CKR     sfr.Offset = 0x1424
	T6CKR     sfr.Offset = 0x1428
	T7CKR     sfr.Offset = 0x142c
	T8CKR     sfr.Offset = 0x1430
	T9CKR     sfr.Offset = 0x1434
	IC1R      sfr.Offset = 0x1438
	IC2R      sfr.Offset = 0x143c
	IC3R      sfr.Offset = 0x1440
	IC4R      sfr.Offset = 0x1444
	IC5R      sfr.Offset = 0x1448
	IC6R      sfr.Offset = 0x144c
	IC7R      sfr.Offset = 0x1450
	IC8R      sfr.Offset = 0x1454
	IC9R      sfr.Offset = 0x1458
	OCFAR     sfr.Offset = 0x1460
	U1RXR     sfr.Offset = 0x1468
	U1CTSR    sfr.Offset = 0x146c
	U2RXR     sfr.Offset = 0x1470
	U2CTSR    sfr.Offset = 0x1474
	U3RXR     sfr.Offset = 0x1478
	U3CTSR    sfr.Offset = 0x147c
	U4RXR     sfr.Offset = 0x1480
	U4CTSR    sfr.Offset = 0x1484
	U5RXR     sfr.Offset = 0x1488
	U5CTSR    sfr.Offset = 0x148c
	U6RXR     sfr.Offset = 0x1490
	U6CTSR    sfr.Offset = 0x1494
	SDI1R     sfr.Offset = 0x149c
	SS1R      sfr.Offset = 0x14a0
	SDI2R     sfr.Offset = 0x14a8
	SS2R      sfr.Offset = 0x14ac
	SDI3R     sfr.Offset = 0x14b4
	SS3R      sfr.Offset = 0x14b8
	SDI4R     sfr.Offset = 0x14c0
	SS4R      sfr.Offset = 0x14c4
	SDI5R     sfr.Offset = 0x14cc
	SS5R      sfr.Offset = 0x14d0
	SDI6R     sfr.Offset = 0x14d8
	SS6R      sfr.Offset = 0x14dc
	C1RXR     sfr.Offset = 0x14e0
	C2RXR     sfr.Offset = 0x14e4
	REFCLKI1R sfr.Offset = 0x14e8
	REFCLKI3R sfr.Offset = 0x14f0
	REFCLKI4R sfr.Offset = 0x14f4
)

// Output pin select registers. Each holds the selector code of the peripheral output driving
// one pin. RPB14R, RPC13R, RPC14R, RPD1R, RPD10R, RPD15R, RPF13R and RPG6R have no PPS pin route
// in the routing table and only appear for RegisterName.
const (
	RPA14R sfr.Offset = 0x1538
	RPA15R sfr.Offset = 0x153c
	RPB0R  sfr.Offset = 0x1540
	RPB1R  sfr.Offset = 0x1544
	RPB2R  sfr.Offset = 0x1548
	RPB3R  sfr.Offset = 0x154c
	RPB5R  sfr.Offset = 0x1554
	RPB6R  sfr.Offset = 0x1558
	RPB7R  sfr.Offset = 0x155c
	RPB8R  sfr.Offset = 0x1560
	RPB9R  sfr.Offset = 0x1564
	RPB10R sfr.Offset = 0x1568
	RPB14R sfr.Offset = 0x1578
	RPB15R sfr.Offset = 0x157c
	RPC1R  sfr.Offset = 0x1584
	RPC2R  sfr.Offset = 0x1588
	RPC3R  sfr.Offset = 0x158c
	RPC4R  sfr.Offset = 0x1590
	RPC13R sfr.Offset = 0x15b4
	RPC14R sfr.Offset = 0x15b8
	RPD0R  sfr.Offset = 0x15c0
	RPD1R  sfr.Offset = 0x15c4
	RPD2R  sfr.Offset = 0x15c8
	RPD3R  sfr.Offset = 0x15cc
	RPD4R  sfr.Offset = 0x15d0
	RPD5R  sfr.Offset = 0x15d4
	RPD6R  sfr.Offset = 0x15d8
	RPD7R  sfr.Offset = 0x15dc
	RPD9R  sfr.Offset = 0x15e4
	RPD10R sfr.Offset = 0x15e8
	RPD11R sfr.Offset = 0x15ec
	RPD12R sfr.Offset = 0x15f0
	RPD14R sfr.Offset = 0x15f8
	RPD15R sfr.Offset = 0x15fc
	RPE3R  sfr.Offset = 0x160c
	RPE5R  sfr.Offset = 0x1614
	RPE8R  sfr.Offset = 0x1620
	RPE9R  sfr.Offset = 0x1624
	RPF0R  sfr.Offset = 0x1640
	RPF1R  sfr.Offset = 0x1644
	RPF2R  sfr.Offset = 0x1648
	RPF3R  sfr.Offset = 0x164c
	RPF4R  sfr.Offset = 0x1650
	RPF5R  sfr.Offset = 0x1654
	RPF8R  sfr.Offset = 0x1660
	RPF12R sfr.Offset = 0x1670
	RPF13R sfr.Offset = 0x1674
	RPG0R  sfr.Offset = 0x1680
	RPG1R  sfr.Offset = 0x1684
	RPG6R  sfr.Offset = 0x1698
	RPG7R  sfr.Offset = 0x169c
	RPG8R  sfr.Offset = 0x16a0
	RPG9R  sfr.Offset = 0x16a4
)

var registerNames = map[sfr.Offset]string{
	INT1R:     "INT1R",
	INT2R:     "INT2R",
	INT3R:     "INT3R",
	INT4R:     "INT4R",
	T2CKR:     "T2CKR",
	T3CKR:     "T3CKR",
	T4CKR:     "T4CKR",
	T5CKR:     "T5CKR",
	T6CKR:     "T6CKR",
	T7CKR:     "T7CKR",
	T8CKR:     "T8CKR",
	T9CKR:     "T9CKR",
	IC1R:      "IC1R",
	IC2R:      "IC2R",
	IC3R:      "IC3R",
	IC4R:      "IC4R",
	IC5R:      "IC5R",
	IC6R:      "IC6R",
	IC7R:      "IC7R",
	IC8R:      "IC8R",
	IC9R:      "IC9R",
	OCFAR:     "OCFAR",
	U1RXR:     "U1RXR",
	U1CTSR:    "U1CTSR",
	U2RXR:     "U2RXR",
	U2CTSR:    "U2CTSR",
	U3RXR:     "U3RXR",
	U3CTSR:    "U3CTSR",
	U4RXR:     "U4RXR",
	U4CTSR:    "U4CTSR",
	U5RXR:     "U5RXR",
	U5CTSR:    "U5CTSR",
	U6RXR:     "U6RXR",
	U6CTSR:    "U6CTSR",
	SDI1R:     "SDI1R",
	SS1R:      "SS1R",
	SDI2R:     "SDI2R",
	SS2R:      "SS2R",
	SDI3R:     "SDI3R",
	SS3R:      "SS3R",
	SDI4R:     "SDI4R",
	SS4R:      "SS4R",
	SDI5R:     "SDI5R",
	SS5R:      "SS5R",
	SDI6R:     "SDI6R",
	SS6R:      "SS6R",
	C1RXR:     "C1RXR",
	C2RXR:     "C2RXR",
	REFCLKI1R: "REFCLKI1R",
	REFCLKI3R: "REFCLKI3R",
	REFCLKI4R: "REFCLKI4R",
	RPA14R:    "RPA14R",
	RPA15R:    "RPA15R",
	RPB0R:     "RPB0R",
	RPB1R:     "RPB1R",
	RPB2R:     "RPB2R",
	RPB3R:     "RPB3R",
	RPB5R:     "RPB5R",
	RPB6R:     "RPB6R",
	RPB7R:     "RPB7R",
	RPB8R:     "RPB8R",
	RPB9R:     "RPB9R",
	RPB10R:    "RPB10R",
	RPB14R:    "RPB14R",
	RPB15R:    "RPB15R",
	RPC1R:     "RPC1R",
	RPC2R:     "RPC2R",
	RPC3R:     "RPC3R",
	RPC4R:     "RPC4R",
	RPC13R:    "RPC13R",
	RPC14R:    "RPC14R",
	RPD0R:     "RPD0R",
	RPD1R:     "RPD1R",
	RPD2R:     "RPD2R",
	RPD3R:     "RPD3R",
	RPD4R:     "RPD4R",
	RPD5R:     "RPD5R",
	RPD6R:     "RPD6R",
	RPD7R:     "RPD7R",
	RPD9R:     "RPD9R",
	RPD10R:    "RPD10R",
	RPD11R:    "RPD11R",
	RPD12R:    "RPD12R",
	RPD14R:    "RPD14R",
	RPD15R:    "RPD15R",
	RPE3R:     "RPE3R",
	RPE5R:     "RPE5R",
	RPE8R:     "RPE8R",
	RPE9R:     "RPE9R",
	RPF0R:     "RPF0R",
	RPF1R:     "RPF1R",
	RPF2R:     "RPF2R",
	RPF3R:     "RPF3R",
	RPF4R:     "RPF4R",
	RPF5R:     "RPF5R",
	RPF8R:     "RPF8R",
	RPF12R:    "RPF12R",
	RPF13R:    "RPF13R",
	RPG0R:     "RPG0R",
	RPG1R:     "RPG1R",
	RPG6R:     "RPG6R",
	RPG7R:     "RPG7R",
	RPG8R:     "RPG8R",
	RPG9R:     "RPG9R",
}

// RegisterName returns the datasheet name of a PPS register, e.g. "RPD2R", or its offset in hex
// if it is not one.
func RegisterName(offset sfr.Offset) string {
	if name, ok := registerNames[offset]; ok {
		return name
	}
	return offset.String()
}
