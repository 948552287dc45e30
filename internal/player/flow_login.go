package player

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/nightgrid/neonmud/internal/storage"
)

const (
	maxPasswordTries = 3
	maxAccountName   = 24
)

type loginFlow struct {
	accounts storage.Storer[*Account]
}

func (f *loginFlow) Run(rw io.ReadWriter) (*Account, error) {
	rw.Write([]byte("Jacking into the Night Grid...\n"))

	for {
		username, err := Prompt(rw, "By what handle do you wish to be known? ",
			WithValidator(func(str string) (bool, string) {
				if len(str) == 0 || len(str) > maxAccountName {
					return false, "Invalid handle, please try another.\n"
				}

				for _, r := range str {
					if !unicode.IsLetter(r) {
						return false, "Invalid handle, please try another.\n"
					}
				}

				return true, ""
			},
			))
		if err != nil {
			return nil, err
		}

		acct := f.accounts.Get(storage.MakeIdentifier(username))

		// Must be a new account
		if acct == nil {
			acct, err = f.newAccount(rw, username)
			if err != nil {
				return nil, err
			}
			if acct == nil {
				continue
			}

			err = f.accounts.Save(storage.MakeIdentifier(acct.Name), acct)
			if err != nil {
				return nil, fmt.Errorf("saving account: %w", err)
			}

			// Existing user
		} else {
			_, err = Prompt(rw, "Password: ", WithMaxTries(maxPasswordTries), WithValidator(
				func(str string) (bool, string) {
					if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(str)) != nil {
						return false, "Wrong password.\n"
					}

					return true, ""
				},
			))
			if err != nil {
				return nil, err
			}
		}

		return acct, nil
	}
}

func (f *loginFlow) newAccount(rw io.ReadWriter, username string) (*Account, error) {
	ok, err := PromptYN(rw, fmt.Sprintf("Did I get that right, %s (Y/N)? ", username))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	for {
		passOne, err := Prompt(rw, fmt.Sprintf("Give me a password for %s: ", username), WithValidator(
			func(str string) (bool, string) {
				if len(str) == 0 || strings.EqualFold(str, username) {
					return false, "Illegal Password.\n"
				}

				return true, ""
			},
		))
		if err != nil {
			return nil, err
		}

		passTwo, err := Prompt(rw, "Please retype password: ")
		if err != nil {
			return nil, err
		}

		if passOne != passTwo {
			rw.Write([]byte("Passwords don't match... start over.\n"))
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(passOne), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}

		return &Account{
			Name:         username,
			PasswordHash: string(hash),
		}, nil
	}
}
