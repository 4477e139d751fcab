package auth

//go:generate $MOCKGEN -source=credentials.go -destination=mocks/credentials_mock.go

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// CredentialSource supplies account credentials on demand. Each call blocks
// until a value is available, so an interactive implementation may wait on
// human input indefinitely.
type CredentialSource interface {
	// Email returns the account email address.
	Email(ctx context.Context) (string, error)
	// Password returns the account password. Implementations must not echo
	// or log the value.
	Password(ctx context.Context) (string, error)
	// VerificationCode returns the one-time verification code.
	VerificationCode(ctx context.Context) (string, error)
}

// PromptCredentialSource reads credentials interactively from the terminal.
// The password prompt does not echo when stdin is a terminal.
type PromptCredentialSource struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptCredentialSource creates an interactive credential source on
// stdin/stdout.
func NewPromptCredentialSource() *PromptCredentialSource {
	return &PromptCredentialSource{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
}

// Email prompts for the account email address.
func (p *PromptCredentialSource) Email(_ context.Context) (string, error) {
	fmt.Fprintln(p.out, "Sign in with your Google account:")

	return p.readLine("Email: ")
}

// Password prompts for the account password without echoing it.
func (p *PromptCredentialSource) Password(_ context.Context) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return p.readLine("Password: ")
	}

	fmt.Fprint(p.out, "Password: ")

	password, err := term.ReadPassword(fd)

	// ReadPassword swallows the user's newline.
	fmt.Fprintln(p.out)

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return string(password), nil
}

// VerificationCode prompts for the one-time verification code.
func (p *PromptCredentialSource) VerificationCode(_ context.Context) (string, error) {
	return p.readLine("Verification code: ")
}

func (p *PromptCredentialSource) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// StaticCredentialSource returns fixed values, for scripted use.
type StaticCredentialSource struct {
	EmailValue            string
	PasswordValue         string
	VerificationCodeValue string
}

// Email returns the fixed email address.
func (s *StaticCredentialSource) Email(_ context.Context) (string, error) {
	return s.EmailValue, nil
}

// Password returns the fixed password.
func (s *StaticCredentialSource) Password(_ context.Context) (string, error) {
	return s.PasswordValue, nil
}

// VerificationCode returns the fixed verification code.
func (s *StaticCredentialSource) VerificationCode(_ context.Context) (string, error) {
	return s.VerificationCodeValue, nil
}
