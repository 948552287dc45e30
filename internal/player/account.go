package player

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Account is a persisted login identity. The password is stored as a
// bcrypt hash, never in the clear.
type Account struct {
	Name         string `json:"name"`
	PasswordHash string `json:"password_hash"`
}

func (a *Account) Validate() error {
	el := errors.NewErrorList()

	if a.Name == "" {
		el.Add(fmt.Errorf("name must be set"))
	}
	if a.PasswordHash == "" {
		el.Add(fmt.Errorf("password hash must be set"))
	}

	return el.Err()
}
