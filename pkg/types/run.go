package types

import (
	"errors"
	"strconv"
	"time"
)

// Operation names accepted in a script.
const (
	OpPush  = "push"
	OpPop   = "pop"
	OpPeek  = "peek"
	OpLen   = "len"
	OpEmpty = "empty"
)

// Op is one step of a script. Arg is only meaningful for push.
type Op struct {
	Name string `json:"op"`
	Arg  int64  `json:"arg,omitempty"`
}

// String renders the op the way it is written on the command line.
func (o Op) String() string {
	if o.Name == OpPush {
		return o.Name + " " + strconv.FormatInt(o.Arg, 10)
	}
	return o.Name
}

// Step records the outcome of one Op against a list.
type Step struct {
	Seq    int    `json:"seq"`
	Op     string `json:"op"`
	Arg    int64  `json:"arg,omitempty"`
	Result string `json:"result,omitempty"` // "none" for absence
	Error  string `json:"error,omitempty"`
}

// Failed reports whether the step returned an error.
func (s Step) Failed() bool { return s.Error != "" }

// Run is one script execution as stored in the journal.
type Run struct {
	RunID     string    `json:"run_id"` // UUID v7, assigned when recorded
	Variant   string    `json:"variant"`
	Script    string    `json:"script"`
	CreatedAt time.Time `json:"created_at"`
	Steps     []Step    `json:"steps,omitempty"`
}

// Failures counts the failed steps.
func (r Run) Failures() int {
	n := 0
	for _, s := range r.Steps {
		if s.Failed() {
			n++
		}
	}
	return n
}

// Journal errors.
var (
	ErrRunNotFound   = errors.New("run not found")
	ErrInvalidID     = errors.New("invalid run ID")
	ErrJournalClosed = errors.New("journal is closed")
)
