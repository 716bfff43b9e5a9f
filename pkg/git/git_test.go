package git

import (
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestNewClient(t *testing.T) {
	client := NewClient()
	if client == nil {
		t.Fatal("NewClient() should return a non-nil client")
	}
	if client.execCommand == nil {
		t.Error("NewClient() should set execCommand field")
	}
}

func TestClient_GetCurrentBranch(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		err     error
		want    string
		wantErr bool
	}{
		{name: "success_main_branch", output: "main\n", want: "main"},
		{name: "success_feature_branch", output: "feature/test\n", want: "feature/test"},
		{name: "success_trim_whitespace", output: "  develop  \n\n", want: "develop"},
		{name: "error_not_a_repo", err: errors.New("not a git repository"), wantErr: true},
		{name: "error_detached_head", err: errors.New("fatal: ref HEAD is not a symbolic ref"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Client{
				execCommand: func(name string, arg ...string) *exec.Cmd {
					if name != "git" || !strings.Contains(strings.Join(arg, " "), "rev-parse --abbrev-ref HEAD") {
						t.Errorf("unexpected command: %s %v", name, arg)
					}
					return helperCommand(t, tt.output, tt.err)
				},
			}

			got, err := c.GetCurrentBranch()
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetCurrentBranch() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("GetCurrentBranch() = %q, want %q", got, tt.want)
			}
		})
	}
}

func helperCommand(t *testing.T, output string, err error) *exec.Cmd {
	t.Helper()
	if err != nil {
		return exec.Command("false")
	}
	if output == "" {
		return exec.Command("true")
	}
	return exec.Command("echo", "-n", output)
}
