package input

import (
	"errors"
	"fortnite-stats/internal/domain"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantType    domain.AccountType
		wantAccount bool
	}{
		{"display name defaults to epic", []string{"Ninja"}, domain.AccountTypeEpic, false},
		{"explicit psn", []string{"Ninja", "psn"}, domain.AccountTypePSN, false},
		{"explicit xbl", []string{"Ninja", "xbl"}, domain.AccountTypeXBL, false},
		{"twenty chars is a name", []string{"abcdefghijklmnopqrst"}, domain.AccountTypeEpic, false},
		{"long identifier is an account id", []string{"4735ce9132924caf8a5b17789b40f79c"}, domain.AccountTypeEpic, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup, err := Resolve(tt.args)
			if err != nil {
				t.Fatalf("Resolve(%v) error: %v", tt.args, err)
			}
			if lookup.Identifier != tt.args[0] {
				t.Errorf("Identifier = %q, want %q", lookup.Identifier, tt.args[0])
			}
			if lookup.AccountType != tt.wantType {
				t.Errorf("AccountType = %q, want %q", lookup.AccountType, tt.wantType)
			}
			if lookup.IsAccountID != tt.wantAccount {
				t.Errorf("IsAccountID = %v, want %v", lookup.IsAccountID, tt.wantAccount)
			}
		})
	}
}

func TestResolve_MissingIdentifier(t *testing.T) {
	for _, args := range [][]string{nil, {}, {""}} {
		_, err := Resolve(args)
		if !errors.Is(err, ErrMissingIdentifier) {
			t.Errorf("Resolve(%v) error = %v, want ErrMissingIdentifier", args, err)
		}
	}
}

func TestResolve_InvalidAccountType(t *testing.T) {
	_, err := Resolve([]string{"Ninja", "steam"})

	var typeErr *InvalidAccountTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("error = %v, want *InvalidAccountTypeError", err)
	}
	if typeErr.AccountType != "steam" {
		t.Errorf("AccountType = %q, want %q", typeErr.AccountType, "steam")
	}
	if got, want := err.Error(), "invalid account type 'steam'"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestSupportedAccountTypes(t *testing.T) {
	if got, want := SupportedAccountTypes(), "epic, psn, xbl"; got != want {
		t.Errorf("SupportedAccountTypes() = %q, want %q", got, want)
	}
}
