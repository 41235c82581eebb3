package target

import (
	"net"
	"net/netip"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidFormat is returned for any input that is not a literal "ip:port".
var ErrInvalidFormat = errors.New("invalid ip:port format")

// Address is a validated probe destination.
type Address struct {
	IP   netip.Addr
	Port uint16
}

// Parse validates s as "ip:port". The string must contain exactly one colon,
// the left side must be an IPv4 or IPv6 literal and the right side a decimal
// port in 0-65535. Host names are never resolved.
func Parse(s string) (Address, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return Address{}, errors.Wrapf(ErrInvalidFormat, "%q", s)
	}

	ip, err := netip.ParseAddr(parts[0])
	if err != nil {
		return Address{}, errors.Wrapf(ErrInvalidFormat, "%q", s)
	}

	port, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil {
		return Address{}, errors.Wrapf(ErrInvalidFormat, "%q", s)
	}

	return Address{IP: ip, Port: uint16(port)}, nil
}

// Valid reports whether s parses as an Address.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// String renders the address the way it was accepted.
func (a Address) String() string {
	return a.IP.String() + ":" + strconv.Itoa(int(a.Port))
}

// UDPAddr returns the socket address used for sending.
func (a Address) UDPAddr() *net.UDPAddr {
	return net.UDPAddrFromAddrPort(netip.AddrPortFrom(a.IP, a.Port))
}
