package probe

// Stage identifies the socket operation that failed.
type Stage int

const (
	StageBind Stage = iota + 1
	StageSend
)

func (s Stage) String() string {
	switch s {
	case StageBind:
		return "bind"
	case StageSend:
		return "send"
	default:
		return "unknown"
	}
}

// Error is a bind or send failure. Receive failures never produce one.
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return e.Stage.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
