package storage

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/aws/smithy-go"
)

func TestSeekableBody(t *testing.T) {
	rs := strings.NewReader("0123456789")
	if _, err := rs.Seek(2, io.SeekStart); err != nil {
		t.Fatal(err)
	}

	body, size, err := seekableBody(rs)
	if err != nil {
		t.Fatalf("seekableBody() failed: %v", err)
	}
	if size != 8 {
		t.Errorf("size = %d, want 8", size)
	}
	data, _ := io.ReadAll(body)
	if string(data) != "23456789" {
		t.Errorf("body = %q", data)
	}
}

func TestSeekableBody_BuffersPlainReaders(t *testing.T) {
	body, size, err := seekableBody(io.MultiReader(strings.NewReader("ab"), strings.NewReader("cd")))
	if err != nil {
		t.Fatalf("seekableBody() failed: %v", err)
	}
	if size != 4 {
		t.Errorf("size = %d, want 4", size)
	}
	data, _ := io.ReadAll(body)
	if string(data) != "abcd" {
		t.Errorf("body = %q", data)
	}
}

func TestIsPreconditionFailed(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("boom"), false},
		{"precondition", &smithy.GenericAPIError{Code: "PreconditionFailed"}, true},
		{"wrapped conflict", fmt.Errorf("put: %w", &smithy.GenericAPIError{Code: "ConditionalRequestConflict"}), true},
		{"access denied", &smithy.GenericAPIError{Code: "AccessDenied"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isPreconditionFailed(tt.err); got != tt.want {
				t.Errorf("isPreconditionFailed() = %v, want %v", got, tt.want)
			}
		})
	}
}
