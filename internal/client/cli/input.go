package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

var errEmptyInput = errors.New("input must not be empty")

// readLine reads one trimmed line. A final line without a newline is
// accepted; plain EOF is returned as is.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetSimpleText writes the prompt followed by "> " on its own line and
// returns the answer.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	return readLine(reader)
}

// GetEmail asks for an account email. Blank answers are rejected locally so
// the server is not asked to validate them.
func GetEmail(reader *bufio.Reader, w io.Writer) (string, error) {
	email, err := GetSimpleText(reader, "Enter email", w)
	if err != nil {
		return "", err
	}
	if email == "" {
		return "", fmt.Errorf("email: %w", errEmptyInput)
	}
	return email, nil
}

// GetPassword reads a password from the terminal without echo. The caller
// owns the returned slice and should wipe it.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	if len(pw) == 0 {
		return nil, fmt.Errorf("password: %w", errEmptyInput)
	}
	return pw, nil
}

// Confirm asks a question and reports whether the answer was exactly want.
func Confirm(reader *bufio.Reader, question, want string, w io.Writer) (bool, error) {
	answer, err := GetSimpleText(reader, fmt.Sprintf("%s (type '%s')", question, want), w)
	if err != nil {
		return false, err
	}
	return answer == want, nil
}
