package target

import (
	"net/netip"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValid(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		ip    string
		port  uint16
	}{
		{name: "loopback", input: "127.0.0.1:7777", ip: "127.0.0.1", port: 7777},
		{name: "zero port", input: "10.0.0.1:0", ip: "10.0.0.1", port: 0},
		{name: "max port", input: "192.168.1.20:65535", ip: "192.168.1.20", port: 65535},
		{name: "unspecified", input: "0.0.0.0:80", ip: "0.0.0.0", port: 80},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			addr, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, netip.MustParseAddr(tc.ip), addr.IP)
			assert.Equal(t, tc.port, addr.Port)
			assert.True(t, Valid(tc.input))
			assert.Equal(t, tc.input, addr.String())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "no colon", input: "127.0.0.1"},
		{name: "two colons", input: "127.0.0.1:77:77"},
		{name: "ipv6 without brackets", input: "::1:7777"},
		{name: "bracketed ipv6", input: "[::1]:7777"},
		{name: "host name", input: "notanip:7777"},
		{name: "localhost", input: "localhost:7777"},
		{name: "empty ip", input: ":7777"},
		{name: "empty port", input: "127.0.0.1:"},
		{name: "port too large", input: "127.0.0.1:65536"},
		{name: "negative port", input: "127.0.0.1:-1"},
		{name: "port not numeric", input: "127.0.0.1:http"},
		{name: "octet out of range", input: "256.0.0.1:7777"},
		{name: "surrounding whitespace", input: " 127.0.0.1:7777"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidFormat))
			assert.False(t, Valid(tc.input))
		})
	}
}

func TestUDPAddr(t *testing.T) {
	addr, err := Parse("127.0.0.1:7777")
	require.NoError(t, err)

	udp := addr.UDPAddr()
	assert.Equal(t, 7777, udp.Port)
	assert.Equal(t, "127.0.0.1:7777", udp.String())
}
