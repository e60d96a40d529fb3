package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindInvalid, "invalid"},
		{KindIO, "I/O error"},
		{KindNetwork, "network error"},
		{KindService, "service error"},
		{KindDecode, "decode error"},
		{KindConfig, "configuration error"},
		{KindTimeout, "timeout"},
		{Kind(999), "unknown error"}, // Unknown kind
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "test.Op", Context: "some context", Err: errors.New("underlying error")},
			expected: "test.Op: some context: underlying error",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "test.Op", Err: errors.New("underlying error")},
			expected: "test.Op: underlying error",
		},
		{
			name:     "without op",
			err:      &Error{Err: errors.New("underlying error")},
			expected: "underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &Error{Op: "test.Op", Err: underlying}

	if got := err.Unwrap(); got != underlying {
		t.Errorf("Error.Unwrap() = %v, want %v", got, underlying)
	}
}

func TestE(t *testing.T) {
	tests := []struct {
		name       string
		args       []interface{}
		wantOp     Op
		wantKind   Kind
		wantHasErr bool
	}{
		{
			name:       "with all args",
			args:       []interface{}{Op("test.Op"), KindService, "context", errors.New("error")},
			wantOp:     "test.Op",
			wantKind:   KindService,
			wantHasErr: true,
		},
		{
			name:       "with op and kind",
			args:       []interface{}{Op("test.Op"), KindInvalid, "just a message"},
			wantOp:     "test.Op",
			wantKind:   KindInvalid,
			wantHasErr: true, // Context becomes the error when no error is provided
		},
		{
			name:       "with just error",
			args:       []interface{}{errors.New("simple error")},
			wantOp:     "",
			wantKind:   KindUnknown,
			wantHasErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := E(tt.args...)
			e, ok := err.(*Error)
			if !ok {
				t.Fatalf("E() returned %T, want *Error", err)
			}

			if e.Op != tt.wantOp {
				t.Errorf("E().Op = %q, want %q", e.Op, tt.wantOp)
			}
			if e.Kind != tt.wantKind {
				t.Errorf("E().Kind = %v, want %v", e.Kind, tt.wantKind)
			}
			if (e.Err != nil) != tt.wantHasErr {
				t.Errorf("E().Err nil = %v, want nil = %v", e.Err == nil, !tt.wantHasErr)
			}
		})
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     Kind
		expected bool
	}{
		{
			name:     "matching kind",
			err:      E(Op("test"), KindService, "not found"),
			kind:     KindService,
			expected: true,
		},
		{
			name:     "non-matching kind",
			err:      E(Op("test"), KindService, "not found"),
			kind:     KindInvalid,
			expected: false,
		},
		{
			name:     "foreign error",
			err:      errors.New("regular error"),
			kind:     KindService,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			kind:     KindService,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      fmt.Errorf("wrapped: %w", E(Op("test"), KindTimeout, "timeout")),
			kind:     KindTimeout,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.kind); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetKind(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{
			name:     "structured error",
			err:      E(Op("test"), KindService, "not found"),
			expected: KindService,
		},
		{
			name:     "regular error",
			err:      errors.New("regular error"),
			expected: KindUnknown,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetKind(tt.err); got != tt.expected {
				t.Errorf("GetKind() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAnswerRequestFailed(t *testing.T) {
	underlying := errors.New("connection refused")
	err := AnswerRequestFailed("http://127.0.0.1:8000/perguntar", underlying)

	if !Is(err, KindNetwork) {
		t.Error("AnswerRequestFailed should return KindNetwork error")
	}
	if !errors.Is(err, underlying) {
		t.Error("AnswerRequestFailed should wrap the underlying error")
	}
	if e, ok := err.(*Error); !ok || e.Op != "answer.Ask" {
		t.Errorf("expected Op answer.Ask, got %v", err)
	}
}

func TestAnswerTimeout(t *testing.T) {
	err := AnswerTimeout("http://x", errors.New("deadline exceeded"))

	if !Is(err, KindTimeout) {
		t.Error("AnswerTimeout should return KindTimeout error")
	}
}

func TestAnswerStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		detail string
		want   string
	}{
		{"without detail", 500, "", "answer.Ask: answer service returned status 500"},
		{"with detail", 503, "Servidor ocupado", "answer.Ask: answer service returned status 503: Servidor ocupado"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AnswerStatus(tt.status, tt.detail)
			if !Is(err, KindService) {
				t.Error("AnswerStatus should return KindService error")
			}
			if err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestAnswerDecodeFailed(t *testing.T) {
	underlying := errors.New("unexpected EOF")
	err := AnswerDecodeFailed(underlying)

	if !Is(err, KindDecode) {
		t.Error("AnswerDecodeFailed should return KindDecode error")
	}
	if !errors.Is(err, underlying) {
		t.Error("AnswerDecodeFailed should wrap the underlying error")
	}
}

func TestConfigLoadFailed(t *testing.T) {
	err := ConfigLoadFailed("/path/to/config", errors.New("bad yaml"))

	if !Is(err, KindConfig) {
		t.Error("ConfigLoadFailed should return KindConfig error")
	}
}

func TestConfigInvalid(t *testing.T) {
	err := ConfigInvalid("endpoint must be a URL")

	if !Is(err, KindInvalid) {
		t.Error("ConfigInvalid should return KindInvalid error")
	}
}

func TestAttachmentUnreadable(t *testing.T) {
	err := AttachmentUnreadable("/tmp/a.pdf", errors.New("permission denied"))

	if !Is(err, KindIO) {
		t.Error("AttachmentUnreadable should return KindIO error")
	}
}

func TestErrorChaining(t *testing.T) {
	// Test that errors can be properly chained and unwrapped
	innerErr := errors.New("original error")
	middleErr := E(Op("middle.Op"), KindIO, innerErr)
	outerErr := E(Op("outer.Op"), KindConfig, middleErr)

	// Should be able to unwrap to find inner error
	if !errors.Is(outerErr, innerErr) {
		t.Error("Should be able to find inner error through chain")
	}

	// Kind should be from the outer error
	if GetKind(outerErr) != KindConfig {
		t.Error("GetKind should return outer error's kind")
	}
}
