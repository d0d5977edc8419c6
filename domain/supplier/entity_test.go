package supplier

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		args    [5]string // name, email, country, contact person, phone
		wantErr string    // empty means success
	}{
		{
			name: "all fields present",
			args: [5]string{"EcoFarm", "e@f.com", "USA", "A", "123"},
		},
		{
			name:    "missing name",
			args:    [5]string{"", "e@f.com", "USA", "A", "123"},
			wantErr: "name",
		},
		{
			name:    "missing email",
			args:    [5]string{"EcoFarm", "", "USA", "A", "123"},
			wantErr: "email",
		},
		{
			name:    "missing country",
			args:    [5]string{"EcoFarm", "e@f.com", "", "A", "123"},
			wantErr: "country",
		},
		{
			name:    "missing contact person",
			args:    [5]string{"EcoFarm", "e@f.com", "USA", "", "123"},
			wantErr: "contact_person",
		},
		{
			name:    "missing phone",
			args:    [5]string{"EcoFarm", "e@f.com", "USA", "A", ""},
			wantErr: "phone",
		},
		{
			name:    "whitespace-only field",
			args:    [5]string{"   ", "e@f.com", "USA", "A", "123"},
			wantErr: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.args[0], tt.args[1], tt.args[2], tt.args[3], tt.args[4])

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("New() error = %v", err)
				}
				if s.ID == "" {
					t.Error("expected generated ID")
				}
				if s.CreatedAt.IsZero() || s.UpdatedAt.IsZero() {
					t.Error("expected timestamps to be set")
				}
				return
			}

			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if vErr.Field != tt.wantErr {
				t.Errorf("expected failing field %q, got %q", tt.wantErr, vErr.Field)
			}
		})
	}
}

func TestNewTrimsFields(t *testing.T) {
	s, err := New("  EcoFarm  ", " e@f.com ", " USA ", " A ", " 123 ")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if s.Name != "EcoFarm" {
		t.Errorf("expected trimmed name, got %q", s.Name)
	}
	if s.Email != "e@f.com" {
		t.Errorf("expected trimmed email, got %q", s.Email)
	}
}
