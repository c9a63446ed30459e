package input

import (
	"errors"
	"fmt"
	"fortnite-stats/internal/constants"
	"fortnite-stats/internal/domain"
	"strings"
	"unicode/utf8"
)

var ErrMissingIdentifier = errors.New("username or account ID is required")

type InvalidAccountTypeError struct {
	AccountType string
}

func (e *InvalidAccountTypeError) Error() string {
	return fmt.Sprintf("invalid account type '%s'", e.AccountType)
}

// Resolve turns `<identifier> [accountType]` into a lookup.
func Resolve(args []string) (domain.Lookup, error) {
	if len(args) == 0 || args[0] == "" {
		return domain.Lookup{}, ErrMissingIdentifier
	}

	accountType := domain.AccountTypeEpic
	if len(args) > 1 {
		t, err := domain.ParseAccountType(args[1])
		if err != nil {
			return domain.Lookup{}, &InvalidAccountTypeError{AccountType: args[1]}
		}
		accountType = t
	}

	return domain.Lookup{
		Identifier:  args[0],
		AccountType: accountType,
		IsAccountID: IsAccountID(args[0]),
	}, nil
}

func IsAccountID(identifier string) bool {
	return utf8.RuneCountInString(identifier) > constants.AccountIDMinLength
}

func SupportedAccountTypes() string {
	types := make([]string, 0, len(domain.AccountTypes))
	for _, t := range domain.AccountTypes {
		types = append(types, string(t))
	}
	return strings.Join(types, ", ")
}
