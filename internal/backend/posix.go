//go:build !windows

package backend

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/gosh-shell/gosh/internal/config"
)

// New spawns the PTY-backed bash bridge, satisfying Backend.
func New(cfg *config.Config) (Backend, error) {
	return StartPOSIX()
}

// sentinel delimits the PS1 markers the bridge watches for in the
// child's output stream: a rare control byte plus a fixed tag, chosen
// (like pty_control.py's \036_MARKER_) to be vanishingly unlikely to
// appear in ordinary program output.
const sentinel = "\036_MARKER_"

// POSIX bridges one typed line through a long-lived bash child
// connected over a PTY, grounded line-for-line on
// original_source/pty_control.py's read_stdin/read_shell/start.
type POSIX struct {
	ptmx *os.File
	cmd  *exec.Cmd

	mu          sync.Mutex
	passThrough bool

	resultCh chan Result // completed-command results
	envDump  string       // path to the PROMPT_COMMAND env dump file
}

// StartPOSIX spawns bash over a PTY and arms the sentinel-scanning
// PS1/PROMPT_COMMAND, ready to accept lines via Run.
func StartPOSIX() (*POSIX, error) {
	envFile, err := os.CreateTemp("", "gosh-env-*.tmp")
	if err != nil {
		return nil, err
	}
	envPath := envFile.Name()
	_ = envFile.Close()

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/bash"
	}
	cmd := exec.Command(shell, "--norc", "--noprofile")
	cmd.Env = append(os.Environ(),
		fmt.Sprintf(`PS1=%s$PWD|$?%s`, sentinel, sentinel),
		fmt.Sprintf(`PROMPT_COMMAND=env > %s`, envPath),
	)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("start pty-backed shell: %w", err)
	}

	p := &POSIX{
		ptmx:     ptmx,
		cmd:      cmd,
		resultCh: make(chan Result),
		envDump:  envPath,
	}
	p.propagateWindowSize()
	go p.shellReadLoop()
	return p, nil
}

// propagateWindowSize copies the controlling terminal's dimensions
// into the PTY, matching pty_control.py's fcntl.ioctl(..., TIOCSWINSZ, ...).
func (p *POSIX) propagateWindowSize() {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		_ = pty.Setsize(p.ptmx, &pty.Winsize{Rows: uint16(h), Cols: uint16(w)})
		_ = unix.IoctlSetWinsize(int(p.ptmx.Fd()), unix.TIOCSWINSZ, &unix.Winsize{Row: uint16(h), Col: uint16(w)})
	}
}

// Run submits one line to the shell and blocks until its sentinel
// pair closes, returning the reconstructed CWD/ERRORLEVEL/env.
func (p *POSIX) Run(line string) (Result, error) {
	p.mu.Lock()
	p.passThrough = true
	p.mu.Unlock()

	if _, err := p.ptmx.Write([]byte(line + "\n")); err != nil {
		return Result{}, fmt.Errorf("write to pty: %w", err)
	}

	res, ok := <-p.resultCh
	if !ok {
		return Result{}, fmt.Errorf("posix backend closed")
	}
	return res, nil
}

// shellReadLoop streams child output to the parent terminal while
// watching for a matched sentinel pair. The PTY is read byte-wise: a
// rolling comparison against the expected next sentinel byte detects
// the opening marker, after which everything read is captured instead
// of forwarded until the closing marker appears.
func (p *POSIX) shellReadLoop() {
	reader := bufio.NewReader(p.ptmx)
	var matchPos int
	var capturing bool
	var captured strings.Builder

	for {
		b, err := reader.ReadByte()
		if err != nil {
			close(p.resultCh)
			return
		}

		if !capturing && b == sentinel[matchPos] {
			matchPos++
			if matchPos == len(sentinel) {
				capturing = true
				captured.Reset()
				matchPos = 0
			}
			continue
		} else if !capturing {
			if matchPos > 0 {
				_, _ = os.Stdout.Write([]byte(sentinel[:matchPos]))
				matchPos = 0
			}
			if b == sentinel[0] {
				matchPos = 1
				continue
			}
			_, _ = os.Stdout.Write([]byte{b})
			continue
		}

		// capturing the "$PWD|$?" payload between the two sentinels
		if b == sentinel[matchPos] {
			matchPos++
			if matchPos == len(sentinel) {
				capturing = false
				matchPos = 0
				p.finishCommand(captured.String())
			}
			continue
		}
		if matchPos > 0 {
			captured.WriteString(sentinel[:matchPos])
			matchPos = 0
		}
		if b == sentinel[0] {
			matchPos = 1
			continue
		}
		captured.WriteByte(b)
	}
}

func (p *POSIX) finishCommand(payload string) {
	p.mu.Lock()
	p.passThrough = false
	p.mu.Unlock()

	parts := strings.SplitN(payload, "|", 2)
	cwd := parts[0]
	errorLevel := ""
	if len(parts) > 1 {
		errorLevel = parts[1]
	}

	env := map[string]string{}
	if data, err := os.ReadFile(p.envDump); err == nil {
		env = parseEnvDump(string(data))
	}
	env["CD"] = cwd
	env["ERRORLEVEL"] = errorLevel
	ApplyEnvDelta(env)
	if cwd != "" {
		_ = os.Chdir(cwd)
	}

	p.resultCh <- Result{Env: env, CWD: cwd, ErrorLevel: errorLevel}
}

// Close terminates the bash child and releases the PTY.
func (p *POSIX) Close() error {
	_ = p.ptmx.Close()
	if p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
	_ = os.Remove(p.envDump)
	return nil
}
