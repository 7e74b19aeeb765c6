package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeNotFound,
				Message: "job not found",
			},
			want: "job not found",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeInternal,
				Message: "database error",
				Cause:   errors.New("connection reset"),
			},
			want: "database error: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("count: %w", Wrapf(cause, ErrCodeInternal, "count %s", "shop_order"))

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should find the wrapped cause")
	}
	if GetCode(err) != ErrCodeInternal {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), ErrCodeInternal)
	}
}

func TestWrapf_NilError(t *testing.T) {
	if got := Wrapf(nil, ErrCodeInternal, "ignored"); got != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", got)
	}
}

func TestCodeHelpers(t *testing.T) {
	if !IsNotFound(NotFoundf("model %q", "x.Y")) {
		t.Error("IsNotFound should match NotFoundf")
	}
	if !IsValidation(Validationf("bad %s", "filter")) {
		t.Error("IsValidation should match Validationf")
	}
	if IsTimeout(errors.New("plain")) {
		t.Error("plain errors carry no code")
	}
	if GetCode(errors.New("plain")) != "" {
		t.Error("GetCode of plain error should be empty")
	}
	if GetField(&AppError{Code: ErrCodeValidation, Field: "age"}) != "age" {
		t.Error("GetField should return the field")
	}
}
