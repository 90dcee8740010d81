package binding

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type request struct {
	Name  string `validate:"required,cipherstring"`
	Notes string `validate:"cipherstring"`
	Key   string `validate:"omitempty,cipherstring=asymmetric"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	if err := RegisterPlayground(v); err != nil {
		t.Fatalf("RegisterPlayground() error: %v", err)
	}
	return v
}

func TestPlayground(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name    string
		req     request
		wantErr bool
		field   string
	}{
		{
			name: "valid",
			req:  request{Name: "2.aXY=|Y3Q=|bWFj", Key: "4.QUFB"},
		},
		{
			name: "optional empty",
			req:  request{Name: "aXY=|Y3Q=|bWFj"},
		},
		{
			name:    "missing required",
			req:     request{},
			wantErr: true,
			field:   "Name",
		},
		{
			name:    "malformed",
			req:     request{Name: "2.aXY=|Y3Q="},
			wantErr: true,
			field:   "Name",
		},
		{
			name:    "malformed optional",
			req:     request{Name: "2.aXY=|Y3Q=|bWFj", Notes: "plaintext"},
			wantErr: true,
			field:   "Notes",
		},
		{
			name:    "family mismatch",
			req:     request{Name: "2.aXY=|Y3Q=|bWFj", Key: "2.aXY=|Y3Q=|bWFj"},
			wantErr: true,
			field:   "Key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Struct() error: %v", err)
				}
				return
			}

			errs, ok := err.(validator.ValidationErrors)
			if !ok || len(errs) != 1 {
				t.Fatalf("Struct() error = %v, want one ValidationError", err)
			}
			if errs[0].Field() != tt.field {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.field)
			}
		})
	}
}

func TestPlayground_UnknownFamily(t *testing.T) {
	v := newValidator(t)

	type bad struct {
		Name string `validate:"cipherstring=aes"`
	}
	if err := v.Struct(bad{Name: "2.aXY=|Y3Q=|bWFj"}); err == nil {
		t.Error("Struct() should fail for an unknown family")
	}
}

func TestPlayground_NonString(t *testing.T) {
	v := newValidator(t)

	if err := v.Var(42, PlaygroundTag); err == nil {
		t.Error("Var(int) should fail")
	}
	if err := v.Var("3.QUFB", PlaygroundTag+"=asymmetric"); err != nil {
		t.Errorf("Var() error: %v", err)
	}
}
