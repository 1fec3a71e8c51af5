package pps

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	firstBank   = 'A'
	lastBank    = 'K'
	bitsPerBank = 16
)

// A Pin identifies a physical port pin. The bank letter is packed into the high bits and the bit
// index into the low four bits, e.g. RD2 is ('D'-'A')<<4 | 2.
type Pin int

// GPIOPin returns the pin for bit on port bank, e.g. GPIOPin('D', 2). Only the low four bits of
// bit are used, so they never spill into the bank.
func GPIOPin(bank byte, bit int) Pin {
	return Pin(int(bank-firstBank)<<4 | bit&(bitsPerBank-1))
}

// Bank returns the port letter of the pin.
func (p Pin) Bank() byte {
	return byte(int(p)>>4) + firstBank
}

// Bit returns the bit index of the pin within its port.
func (p Pin) Bit() int {
	return int(p) & (bitsPerBank - 1)
}

func (p Pin) String() string {
	return fmt.Sprintf("R%c%d", p.Bank(), p.Bit())
}

// ParsePin parses a pin name. "RD2", "rd2", "D2" and "D02" all name the same pin.
func ParsePin(name string) (Pin, error) {
	s := strings.ToUpper(strings.TrimSpace(name))
	if len(s) > 2 && s[0] == 'R' && s[1] >= firstBank && s[1] <= lastBank {
		s = s[1:]
	}
	if len(s) < 2 {
		return 0, errors.Errorf("malformed pin name %q", name)
	}
	bank := s[0]
	if bank < firstBank || bank > lastBank {
		return 0, errors.Errorf("malformed pin name %q: no port %c", name, bank)
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, errors.Errorf("malformed pin name %q: bad bit index %q", name, s[1:])
		}
	}
	bit, err := strconv.Atoi(s[1:])
	if err != nil || bit >= bitsPerBank {
		return 0, errors.Errorf("malformed pin name %q: bad bit index %q", name, s[1:])
	}
	return GPIOPin(bank, bit), nil
}
