package handler

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestValidator_Credentials(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&credentialsRequest{Username: "alice", Password: "pw"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := v.Validate(&credentialsRequest{Username: "alice"})
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if len(ve) != 1 || ve[0].Field() != "Password" || ve[0].Tag() != "required" {
		t.Fatalf("unexpected failures: %v", ve)
	}
}

func TestValidator_TaskTextNotBlank(t *testing.T) {
	v := NewValidator()

	for _, text := range []string{"", "   ", "\t\n"} {
		err := v.Validate(&createTaskRequest{Text: text})
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) || ve[0].Tag() != "notblank" {
			t.Fatalf("%q: expected notblank failure, got %v", text, err)
		}
	}
	if err := v.Validate(&createTaskRequest{Text: " buy milk "}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
