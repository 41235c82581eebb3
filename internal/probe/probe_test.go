package probe

import (
	"context"
	"net"
	"testing"
	"time"

	"dhping/internal/target"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startResponder listens on loopback and answers every datagram with reply.
// A nil reply makes it swallow datagrams silently.
func startResponder(t *testing.T, reply []byte) (target.Address, <-chan []byte) {
	t.Helper()

	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	received := make(chan []byte, 1)
	go func() {
		buf := make([]byte, 1024)
		for {
			n, from, err := conn.ReadFrom(buf)
			if err != nil {
				return
			}
			got := make([]byte, n)
			copy(got, buf[:n])
			select {
			case received <- got:
			default:
			}
			if reply != nil {
				conn.WriteTo(reply, from)
			}
		}
	}()

	addr, err := target.Parse(conn.LocalAddr().String())
	require.NoError(t, err)
	return addr, received
}

func TestProbeReceivesReply(t *testing.T) {
	reply := []byte{0x02, 0x00, 0x00, 0x00, 0xde, 0xad, 0xbe, 0xef}
	addr, received := startResponder(t, reply)

	prober := NewProber(&Config{Timeout: time.Second})
	result, err := prober.Probe(context.Background(), addr)
	require.NoError(t, err)

	assert.True(t, result.Received())
	assert.Equal(t, reply, result.Data)
	assert.Equal(t, len(Handshake), result.Sent)
	assert.Equal(t, addr, result.Target)
	assert.Greater(t, result.RTT, time.Duration(0))

	select {
	case got := <-received:
		assert.Equal(t, Handshake[:], got)
	case <-time.After(time.Second):
		t.Fatal("responder never saw the handshake")
	}
}

func TestProbeTruncatesToBufferSize(t *testing.T) {
	reply := make([]byte, 100)
	for i := range reply {
		reply[i] = byte(i)
	}
	addr, _ := startResponder(t, reply)

	result, err := NewProber(nil).Probe(context.Background(), addr)
	require.NoError(t, err)
	assert.Len(t, result.Data, DefaultBufferSize)
	assert.Equal(t, reply[:DefaultBufferSize], result.Data)
}

func TestProbeEmptyDatagramIsNoData(t *testing.T) {
	addr, _ := startResponder(t, []byte{})

	result, err := NewProber(&Config{Timeout: time.Second}).Probe(context.Background(), addr)
	require.NoError(t, err)
	assert.False(t, result.Received())
}

func TestProbeTimesOut(t *testing.T) {
	addr, _ := startResponder(t, nil)

	start := time.Now()
	result, err := NewProber(nil).Probe(context.Background(), addr)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.False(t, result.Received())
	assert.GreaterOrEqual(t, elapsed, DefaultTimeout-100*time.Millisecond)
	assert.Less(t, elapsed, DefaultTimeout+2*time.Second)
}

func TestProbeCancelled(t *testing.T) {
	addr, _ := startResponder(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	start := time.Now()
	_, err := NewProber(&Config{Timeout: 10 * time.Second}).Probe(ctx, addr)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestErrorStage(t *testing.T) {
	cause := errors.New("boom")
	var err error = &Error{Stage: StageSend, Err: cause}

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, StageSend, perr.Stage)
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "send: boom", err.Error())
	assert.Equal(t, "bind", StageBind.String())
}

func TestProbeTraceSent(t *testing.T) {
	addr, _ := startResponder(t, []byte{0x01})

	var sentTo target.Address
	var sentBytes int
	ctx := WithTrace(context.Background(), &Trace{
		Sent: func(a target.Address, n int) {
			sentTo = a
			sentBytes = n
		},
	})

	_, err := NewProber(&Config{Timeout: time.Second}).Probe(ctx, addr)
	require.NoError(t, err)
	assert.Equal(t, addr, sentTo)
	assert.Equal(t, len(Handshake), sentBytes)
	assert.Nil(t, ContextTrace(context.Background()))
}
