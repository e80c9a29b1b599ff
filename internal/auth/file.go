package auth

import (
	"bufio"
	"crypto/subtle"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var _ Authenticator = (*FileAuthenticator)(nil)

// FileAuthenticator checks credentials against a file of "user password"
// lines. Lines starting with # are ignored. A password with a bcrypt
// prefix is compared as a hash, anything else as plain text.
type FileAuthenticator struct {
	users map[string]string
}

func NewFile(path string) (*FileAuthenticator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsersFile, err)
	}
	defer f.Close()

	users := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		user, pass, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		users[user] = pass
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsersFile, err)
	}

	return &FileAuthenticator{users: users}, nil
}

func (a *FileAuthenticator) Authenticate(username, password string) bool {
	stored, ok := a.users[username]
	if !ok {
		return false
	}

	if isBcrypt(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}

	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

func isBcrypt(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
