// Package session turns lines of user input into probes and reports.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"dhping/internal/analysis"
	"dhping/internal/i18n"
	"dhping/internal/models"
	"dhping/internal/probe"
	"dhping/internal/target"
	"dhping/internal/ui"

	"github.com/pkg/errors"
)

const (
	// ExitKeyword ends an interactive session.
	ExitKeyword = "exit"
	// Prompt is shown before every interactive input line.
	Prompt = "DH-Ping > "
)

// Prober sends one handshake and reports the reply.
type Prober interface {
	Probe(ctx context.Context, addr target.Address) (probe.Result, error)
}

// Action is what a line of input asks for.
type Action int

const (
	ActionProbe Action = iota
	ActionInvalid
	ActionExit
)

// Session renders probes for one user, one at a time.
type Session struct {
	prober Prober
	msgs   *i18n.Messages
	styles *ui.Styles
	stats  *analysis.SessionStats
	logger *log.Logger
}

// New creates a Session. A nil logger discards diagnostics.
func New(prober Prober, msgs *i18n.Messages, styles *ui.Styles, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Session{
		prober: prober,
		msgs:   msgs,
		styles: styles,
		stats:  analysis.NewSessionStats(),
		logger: logger,
	}
}

func (s *Session) Messages() *i18n.Messages { return s.msgs }

func (s *Session) Styles() *ui.Styles { return s.styles }

// Stats returns the running tally of this session's probes.
func (s *Session) Stats() *analysis.SessionStats { return s.stats }

// Classify trims line and decides what to do with it.
func (s *Session) Classify(line string) (Action, target.Address) {
	line = strings.TrimSpace(line)
	if line == ExitKeyword {
		return ActionExit, target.Address{}
	}
	addr, err := target.Parse(line)
	if err != nil {
		s.logger.Printf("rejected input: %v", err)
		return ActionInvalid, target.Address{}
	}
	return ActionProbe, addr
}

// InvalidInput is the inline error shown for a rejected line.
func (s *Session) InvalidInput() string {
	return ui.Paint(s.styles.Error, s.msgs.Get(i18n.InvalidPrompt))
}

// Probe runs one probe against addr and writes its report to w. Bind and send
// failures are reported to w and returned; a missing reply is not an error.
func (s *Session) Probe(ctx context.Context, w io.Writer, addr target.Address) error {
	ctx = probe.WithTrace(ctx, &probe.Trace{
		Sent: func(addr target.Address, _ int) {
			fmt.Fprintln(w, s.msgs.Get(i18n.DataSent, addr.String()))
			flush(w)
		},
	})

	record := models.ProbeRecord{Timestamp: time.Now(), Target: addr.String()}
	result, err := s.prober.Probe(ctx, addr)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		record.Outcome = models.OutcomeFailed
		s.stats.ProcessRecord(record)
		fmt.Fprintln(w, ui.Paint(s.styles.Error, s.failure(err)))
		return err
	}

	if result.Received() {
		record.Outcome = models.OutcomeReplied
		record.Bytes = len(result.Data)
		record.RTT = result.RTT
		fmt.Fprintln(w, s.msgs.Get(i18n.DataReceived, len(result.Data)))
		fmt.Fprintln(w, ui.Paint(s.styles.Success, probe.Dump(result.Data)))
	} else {
		record.Outcome = models.OutcomeSilent
		fmt.Fprintln(w, ui.Paint(s.styles.NoData, s.msgs.Get(i18n.NoData)))
	}
	s.stats.ProcessRecord(record)
	return nil
}

func (s *Session) failure(err error) string {
	var perr *probe.Error
	if errors.As(err, &perr) {
		switch perr.Stage {
		case probe.StageBind:
			return s.msgs.Get(i18n.BindFailed, perr.Err.Error())
		case probe.StageSend:
			return s.msgs.Get(i18n.SendFailed, perr.Err.Error())
		}
	}
	return s.msgs.Get(i18n.SendFailed, err.Error())
}

// Loop reads addresses from in until the exit keyword or end of input.
// Rejected lines and failed probes are reported and the loop continues.
func (s *Session) Loop(ctx context.Context, in io.Reader, out io.Writer) error {
	r := bufio.NewReader(in)
	for {
		fmt.Fprint(out, s.styles.Prompt.Render(Prompt))
		flush(out)

		// A last line without a trailing newline is still handled.
		line, err := r.ReadString('\n')
		if err == io.EOF && line == "" {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil && err != io.EOF {
			fmt.Fprintln(out)
			return errors.Wrap(err, "read input")
		}

		action, addr := s.Classify(line)
		switch action {
		case ActionExit:
			return nil
		case ActionInvalid:
			fmt.Fprintln(out, s.InvalidInput())
			continue
		}

		if err := s.Probe(ctx, out, addr); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Printf("probe %s: %v", addr, err)
		}
		fmt.Fprintln(out)
	}
}

func flush(w io.Writer) {
	if f, ok := w.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}
