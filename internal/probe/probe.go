// Package probe sends the Dread Hunger handshake datagram and waits for a reply.
package probe

import (
	"context"
	"io"
	"log"
	"net"
	"time"

	"dhping/internal/target"

	"github.com/pkg/errors"
)

// Handshake is the fixed datagram that opens a Dread Hunger session.
var Handshake = [29]byte{
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x08,
}

const (
	DefaultTimeout    = 3 * time.Second
	DefaultBufferSize = 32
)

// Config controls a single probe.
type Config struct {
	// Timeout bounds the wait for a reply. Defaults to DefaultTimeout.
	Timeout time.Duration
	// BufferSize caps how many reply bytes are kept. Defaults to DefaultBufferSize.
	BufferSize int
	// Logger receives diagnostics. Defaults to a discarding logger.
	Logger *log.Logger
}

func applyDefaults(cfg *Config) Config {
	var out Config
	if cfg != nil {
		out = *cfg
	}
	if out.Timeout <= 0 {
		out.Timeout = DefaultTimeout
	}
	if out.BufferSize <= 0 {
		out.BufferSize = DefaultBufferSize
	}
	if out.Logger == nil {
		out.Logger = log.New(io.Discard, "", 0)
	}
	return out
}

// Result describes what came back from one probe.
type Result struct {
	Target target.Address
	Sent   int
	Data   []byte
	RTT    time.Duration
}

// Received reports whether the target answered with at least one byte.
func (r Result) Received() bool {
	return len(r.Data) > 0
}

// Prober runs probes with a fixed configuration.
type Prober struct {
	config Config
}

// NewProber returns a Prober; a nil cfg selects the defaults.
func NewProber(cfg *Config) *Prober {
	return &Prober{config: applyDefaults(cfg)}
}

// Probe binds an ephemeral UDP socket, sends Handshake to addr and waits for
// one reply. A timeout or receive error is not an error: the returned Result
// simply carries no data. Bind and send failures are returned as *Error.
func (p *Prober) Probe(ctx context.Context, addr target.Address) (Result, error) {
	logger := p.config.Logger
	result := Result{Target: addr}

	var lc net.ListenConfig
	conn, err := lc.ListenPacket(ctx, "udp", ":0")
	if err != nil {
		return result, &Error{Stage: StageBind, Err: err}
	}
	defer conn.Close()
	logger.Printf("bound %s", conn.LocalAddr())

	start := time.Now()
	n, err := conn.WriteTo(Handshake[:], addr.UDPAddr())
	if err != nil {
		return result, &Error{Stage: StageSend, Err: errors.Wrapf(err, "write to %s", addr)}
	}
	result.Sent = n
	logger.Printf("sent %d bytes to %s", n, addr)
	if trace := ContextTrace(ctx); trace != nil && trace.Sent != nil {
		trace.Sent(addr, n)
	}

	if err := conn.SetReadDeadline(start.Add(p.config.Timeout)); err != nil {
		logger.Printf("set read deadline: %v", err)
	}

	// Unblock the read when ctx is cancelled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.SetReadDeadline(time.Now())
		case <-done:
		}
	}()

	buf := make([]byte, p.config.BufferSize)
	n, from, err := conn.ReadFrom(buf)
	if ctx.Err() != nil {
		return result, ctx.Err()
	}
	if err != nil {
		logger.Printf("no reply from %s: %v", addr, err)
		return result, nil
	}

	result.RTT = time.Since(start)
	result.Data = buf[:n]
	logger.Printf("received %d bytes from %s in %s", n, from, result.RTT)
	return result, nil
}
