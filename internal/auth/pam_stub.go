//go:build !(cgo && pam)

package auth

type PAMAuthenticator struct{}

// NewPAM always fails: PAM support needs a cgo build with the pam tag.
func NewPAM(string) (*PAMAuthenticator, error) {
	return nil, ErrPAMUnsupported
}

func (a *PAMAuthenticator) Authenticate(string, string) bool {
	return false
}
