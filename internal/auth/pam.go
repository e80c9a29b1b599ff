//go:build cgo && pam

package auth

import (
	"errors"

	"github.com/msteinert/pam/v2"
)

var _ Authenticator = (*PAMAuthenticator)(nil)

type PAMAuthenticator struct {
	service string
}

func NewPAM(service string) (*PAMAuthenticator, error) {
	if service == "" {
		return nil, errors.New("не указан сервис PAM")
	}
	return &PAMAuthenticator{service: service}, nil
}

func (a *PAMAuthenticator) Authenticate(username, password string) bool {
	tx, err := pam.StartFunc(a.service, username, func(style pam.Style, _ string) (string, error) {
		switch style {
		case pam.PromptEchoOff, pam.PromptEchoOn:
			return password, nil
		default:
			return "", nil
		}
	})
	if err != nil {
		return false
	}
	defer tx.End()

	if err := tx.Authenticate(0); err != nil {
		return false
	}
	return tx.AcctMgmt(0) == nil
}
