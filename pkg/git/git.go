// Package git provides the minimal read-only git query the prompt
// needs: the current branch name, shelled out to the same binary
// pycmd's example init script reads for its colored prompt.
package git

import (
	"errors"
	"os/exec"
	"strings"
)

// Client runs git subcommands through an overridable exec hook so
// tests can stub the child process.
type Client struct {
	execCommand func(name string, arg ...string) *exec.Cmd
}

// NewClient returns a Client that shells out through os/exec.Command.
func NewClient() *Client {
	return &Client{
		execCommand: exec.Command,
	}
}

// GetCurrentBranch returns the checked-out branch name, trimmed of
// surrounding whitespace, or an error if the CWD isn't inside a git
// work tree (or HEAD is detached).
func (c *Client) GetCurrentBranch() (string, error) {
	out, err := c.execCommand("git", "rev-parse", "--abbrev-ref", "HEAD").Output()
	if err != nil {
		return "", err
	}
	branch := strings.TrimSpace(string(out))
	if branch == "HEAD" {
		return "", errors.New("HEAD is detached")
	}
	return branch, nil
}
