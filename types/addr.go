// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import (
	"fmt"
	"net"
)

// Address is an IPv4 address in host byte order. The integer form and the
// canonical dotted-quad string form are always mutually derivable without
// loss, and addresses order naturally by their integer value.
type Address uint32

// ParseAddress parses a dotted-quad IPv4 address. IPv6 addresses and
// hostnames are rejected.
func ParseAddress(s string) (Address, error) {
	ip := net.ParseIP(s)
	if ip == nil {
		return 0, fmt.Errorf("invalid IPv4 address %q", s)
	}
	ip4 := ip.To4()
	if ip4 == nil {
		return 0, fmt.Errorf("%q is not an IPv4 address", s)
	}
	return Address(ip4[0])<<24 | Address(ip4[1])<<16 | Address(ip4[2])<<8 | Address(ip4[3]), nil
}

// String returns the canonical dotted-quad form.
func (a Address) String() string {
	return fmt.Sprintf("%d.%d.%d.%d",
		byte(a>>24), byte(a>>16), byte(a>>8), byte(a))
}

// IP returns the address as a net.IP.
func (a Address) IP() net.IP {
	return net.IPv4(byte(a>>24), byte(a>>16), byte(a>>8), byte(a))
}

// MarshalText makes addresses render as dotted quads in JSON and friends.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a dotted-quad address.
func (a *Address) UnmarshalText(text []byte) error {
	addr, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
