package taxonomy

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

func TestGenerateID_Deterministic(t *testing.T) {
	id1 := GenerateID(OpAdd, "2", "3")
	id2 := GenerateID(OpAdd, "2", "3")

	if id1 != id2 {
		t.Errorf("GenerateID not deterministic: %q != %q", id1, id2)
	}
}

func TestGenerateID_Format(t *testing.T) {
	id := GenerateID(OpDivide, "15", "3")

	if len(id) != 11 { // "op-" + 8 hex chars
		t.Errorf("expected ID length 11, got %d: %q", len(id), id)
	}
	if id[:3] != "op-" {
		t.Errorf("expected ID to start with 'op-', got %q", id)
	}
}

func TestGenerateID_UniqueForDifferentInputs(t *testing.T) {
	id1 := GenerateID(OpAdd, "2", "3")
	id2 := GenerateID(OpDivide, "2", "3")
	id3 := GenerateID(OpAdd, "3", "2")
	id4 := GenerateID(OpAdd, "23")

	if id1 == id2 {
		t.Errorf("different operations should produce different IDs")
	}
	if id1 == id3 {
		t.Errorf("operand order should change the ID")
	}
	if id1 == id4 {
		t.Errorf("operand boundaries should change the ID")
	}
}

func TestNumber_MarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   Number
		want string
	}{
		{"integer", IntNumber(-42), `-42`},
		{"large integer", Number("9223372036854775807"), `9223372036854775807`},
		{"float", FloatNumber(0.25), `0.25`},
		{"exponent", FloatNumber(1e300), `1e+300`},
		{"nan", FloatNumber(math.NaN()), `"NaN"`},
		{"positive infinity", FloatNumber(math.Inf(1)), `"+Inf"`},
		{"negative infinity", FloatNumber(math.Inf(-1)), `"-Inf"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := json.Marshal(tc.in)
			if err != nil {
				t.Fatalf("Marshal(%q) error: %v", tc.in, err)
			}
			if string(got) != tc.want {
				t.Errorf("Marshal(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestNumber_UnmarshalJSON(t *testing.T) {
	var nums []Number
	if err := json.Unmarshal([]byte(`[5, -0.5, "+Inf", "NaN"]`), &nums); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	want := []Number{"5", "-0.5", "+Inf", "NaN"}
	if len(nums) != len(want) {
		t.Fatalf("got %d numbers, want %d", len(nums), len(want))
	}
	for i := range want {
		if nums[i] != want[i] {
			t.Errorf("nums[%d] = %q, want %q", i, nums[i], want[i])
		}
	}
}

func TestFloatNumber_ShortestRoundTrip(t *testing.T) {
	for _, f := range []float64{5, -5, 0.1, 1.0 / 3, math.MaxFloat64} {
		got, err := FloatNumber(f).Float()
		if err != nil {
			t.Fatalf("Float(%q) error: %v", FloatNumber(f), err)
		}
		if got != f {
			t.Errorf("FloatNumber(%g) round-trip = %g", f, got)
		}
	}
}

func TestNewSuccess(t *testing.T) {
	r := NewSuccess(OpAdd, IntNumber(5), IntNumber(2), IntNumber(3))

	if r.Outcome != Success || r.Failed() {
		t.Errorf("expected Success outcome, got %s", r.Outcome)
	}
	if r.Value == nil || *r.Value != "5" {
		t.Errorf("Value = %v, want 5", r.Value)
	}
	if r.Error != "" {
		t.Errorf("Error = %q, want empty", r.Error)
	}
	if r.ID != GenerateID(OpAdd, "2", "3") {
		t.Errorf("ID = %q, want ID derived from operands", r.ID)
	}
	if got := r.Expression(); got != "2 + 3" {
		t.Errorf("Expression() = %q, want %q", got, "2 + 3")
	}
}

func TestNewFailure(t *testing.T) {
	r := NewFailure(OpDivide, DivisionByZero, errors.New("division by zero"),
		FloatNumber(10), FloatNumber(0))

	if !r.Failed() {
		t.Error("expected failed result")
	}
	if r.Value != nil {
		t.Errorf("Value = %v, want nil", *r.Value)
	}
	if got := r.Expression(); got != "10 / 0" {
		t.Errorf("Expression() = %q, want %q", got, "10 / 0")
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if !strings.Contains(string(data), `"value":null`) {
		t.Errorf("failed result should encode null value, got %s", data)
	}
	if !strings.Contains(string(data), `"outcome":"DivisionByZero"`) {
		t.Errorf("missing outcome in %s", data)
	}
}

func TestMetadata_MarshalJSON(t *testing.T) {
	m := Metadata{
		ArithVersion: "test",
		GoVersion:    "go1.24.0",
		Timestamp:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Duration:     1500 * time.Millisecond,
	}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if parsed["duration_ms"] != float64(1500) {
		t.Errorf("duration_ms = %v, want 1500", parsed["duration_ms"])
	}
	if parsed["timestamp"] != "2026-01-02T03:04:05Z" {
		t.Errorf("timestamp = %v", parsed["timestamp"])
	}
	if parsed["arith_version"] != "test" {
		t.Errorf("arith_version = %v", parsed["arith_version"])
	}
}
