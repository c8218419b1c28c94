// Package taxonomy defines the operation and outcome vocabulary,
// result data structures, and stable ID generation shared by the
// arith command and its report writers.
package taxonomy

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Operation names an arithmetic operation.
type Operation string

// Supported operations.
const (
	OpAdd    Operation = "add"
	OpDivide Operation = "divide"
)

// Symbol returns the infix symbol for the operation.
func (o Operation) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpDivide:
		return "/"
	default:
		return "?"
	}
}

// Outcome is the variant of an operation result.
type Outcome string

// Outcome constants. Addition always succeeds; division fails only
// with DivisionByZero.
const (
	Success        Outcome = "Success"
	DivisionByZero Outcome = "DivisionByZero"
)

// Number is the canonical decimal text of an operand or value.
// Finite numbers encode as JSON numbers; NaN and the infinities have
// no JSON number form and encode as the strings "NaN", "+Inf", "-Inf".
type Number string

// IntNumber returns the Number for an integer.
func IntNumber(n int) Number {
	return Number(strconv.Itoa(n))
}

// FloatNumber returns the shortest Number that round-trips f.
func FloatNumber(f float64) Number {
	return Number(strconv.FormatFloat(f, 'g', -1, 64))
}

// Float parses the number as a float64.
func (n Number) Float() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// finite reports whether n is representable as a JSON number.
func (n Number) finite() bool {
	f, err := n.Float()
	if err != nil {
		return false
	}
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	if n.finite() {
		return []byte(n), nil
	}
	return json.Marshal(string(n))
}

// UnmarshalJSON accepts either a JSON number or a quoted string.
func (n *Number) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = Number(num)
	return nil
}

// Result is the complete output for one operation call.
type Result struct {
	// ID is a stable identifier derived from the operation and its
	// operands, so the same call always yields the same ID.
	ID string `json:"id"`

	// Operation is the operation that was invoked.
	Operation Operation `json:"operation"`

	// Operands holds the inputs in call order.
	Operands []Number `json:"operands"`

	// Outcome is Success or the failure kind.
	Outcome Outcome `json:"outcome"`

	// Value is the result on Success, nil otherwise.
	Value *Number `json:"value"`

	// Error is the failure message. Empty on Success.
	Error string `json:"error,omitempty"`
}

// NewSuccess builds a successful Result.
func NewSuccess(op Operation, value Number, operands ...Number) Result {
	return Result{
		ID:        GenerateID(op, operands...),
		Operation: op,
		Operands:  operands,
		Outcome:   Success,
		Value:     &value,
	}
}

// NewFailure builds a failed Result carrying err's message.
func NewFailure(op Operation, outcome Outcome, err error, operands ...Number) Result {
	return Result{
		ID:        GenerateID(op, operands...),
		Operation: op,
		Operands:  operands,
		Outcome:   outcome,
		Error:     err.Error(),
	}
}

// Expression renders the call in infix form, e.g. "15 / 3".
func (r Result) Expression() string {
	parts := make([]string, len(r.Operands))
	for i, o := range r.Operands {
		parts[i] = string(o)
	}
	return strings.Join(parts, " "+r.Operation.Symbol()+" ")
}

// Failed reports whether the result is a failure variant.
func (r Result) Failed() bool {
	return r.Outcome != Success
}

// Metadata holds run metadata for a report.
type Metadata struct {
	ArithVersion string        `json:"arith_version"`
	GoVersion    string        `json:"go_version"`
	Timestamp    time.Time     `json:"-"`
	Duration     time.Duration `json:"-"`
}

// MarshalJSON customizes JSON encoding to use duration_ms and
// ISO 8601 timestamp.
func (m Metadata) MarshalJSON() ([]byte, error) {
	type Alias Metadata
	ts := ""
	if !m.Timestamp.IsZero() {
		ts = m.Timestamp.UTC().Format(time.RFC3339)
	}
	return json.Marshal(&struct {
		Alias
		DurationMS int64  `json:"duration_ms"`
		Timestamp  string `json:"timestamp,omitempty"`
	}{
		Alias:      Alias(m),
		DurationMS: m.Duration.Milliseconds(),
		Timestamp:  ts,
	})
}

// GenerateID produces a stable result ID from the operation and its
// operands. Format: "op-" followed by 8 hex characters.
func GenerateID(op Operation, operands ...Number) string {
	parts := make([]string, 0, len(operands)+1)
	parts = append(parts, string(op))
	for _, o := range operands {
		parts = append(parts, string(o))
	}
	hash := sha256.Sum256([]byte(strings.Join(parts, ":")))
	return fmt.Sprintf("op-%x", hash[:4])
}
