package driver_test

import (
	"strings"
	"testing"

	"github.com/lambdawg/lambdawg/internal/driver"
)

func TestCompileSuccess(t *testing.T) {
	result := driver.Compile("let x = 1", driver.Options{Filename: "a.lwg"})
	if !result.Success {
		t.Fatalf("expected success, got errors: %v", result.Errors)
	}
	if !strings.Contains(result.Code, "const x = 1;") {
		t.Fatalf("expected emitted code to contain the binding:\n%s", result.Code)
	}
	if result.InvocationID == "" {
		t.Fatalf("expected a non-empty invocation id")
	}
}

func TestCompileShortCircuitsOnParseError(t *testing.T) {
	result := driver.Compile("let x = (1 +", driver.Options{Filename: "a.lwg"})
	if result.Success {
		t.Fatalf("expected failure on malformed source")
	}
	if result.Code != "" {
		t.Fatalf("expected no emitted code once parsing fails, got:\n%s", result.Code)
	}
}

func TestCompileShortCircuitsOnTypeError(t *testing.T) {
	result := driver.Compile(`let x = 1 + "oops"`, driver.Options{Filename: "a.lwg"})
	if result.Success {
		t.Fatalf("expected failure on a type mismatch")
	}
	if result.Code != "" {
		t.Fatalf("expected no emitted code once type inference fails, got:\n%s", result.Code)
	}
}

func TestCompileSkipTypeCheck(t *testing.T) {
	result := driver.Compile(`let x = 1 + "oops"`, driver.Options{
		Filename:      "a.lwg",
		SkipTypeCheck: true,
	})
	if !result.Success {
		t.Fatalf("expected success with type checking skipped, got: %v", result.Errors)
	}
	if result.Code == "" {
		t.Fatalf("expected emitted code with type checking skipped")
	}
}

func TestCheckDoesNotEmit(t *testing.T) {
	result := driver.Check("let x = 1", driver.Options{Filename: "a.lwg"})
	if !result.Success {
		t.Fatalf("expected success, got errors: %v", result.Errors)
	}
	if result.Code != "" {
		t.Fatalf("expected Check to never emit code, got:\n%s", result.Code)
	}
}

func TestDiagnosticsCarryInvocationID(t *testing.T) {
	result := driver.Check(`let x = 1 + "oops"`, driver.Options{Filename: "a.lwg"})
	if len(result.Errors) == 0 {
		t.Fatalf("expected at least one error")
	}
	for _, d := range result.Errors {
		if d.InvocationID != result.InvocationID {
			t.Fatalf("diagnostic invocation id %q does not match result id %q", d.InvocationID, result.InvocationID)
		}
		if d.Filename != "a.lwg" {
			t.Fatalf("expected diagnostic filename to be attached, got %q", d.Filename)
		}
	}
}
