package models

import "time"

// Outcome classifies how a probe ended.
type Outcome string

const (
	OutcomeReplied Outcome = "replied"
	OutcomeSilent  Outcome = "silent"
	OutcomeFailed  Outcome = "failed"
)

// ProbeRecord holds what one probe produced.
type ProbeRecord struct {
	Timestamp time.Time
	Target    string
	Outcome   Outcome
	Bytes     int
	RTT       time.Duration
}
