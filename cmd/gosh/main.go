// Package main is the entry point for the gosh interactive shell.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gosh-shell/gosh/internal/config"
	"github.com/gosh-shell/gosh/internal/shell"
)

const usage = `gosh [options]
  -c CMD          run CMD and exit
  -k CMD          run CMD, then start an interactive prompt
  -t TITLE        prepend TITLE to the window title
  -i SCRIPT       load SCRIPT as an additional settings overlay
  -q              quiet mode, no startup banner
  -V:ON|OFF       enable/disable delayed variable expansion
  -h, -?          show this message
`

// flags holds the parsed command-line options, grounded on spec.md's
// CLI flags paragraph: long-dash and slash forms are accepted and
// matching is case-insensitive.
type flags struct {
	runCmd        string
	keepCmd       string
	title         string
	overlay       string
	quiet         bool
	delayedExpSet bool
	delayedExp    bool
	help          bool
}

// parseFlags walks args by hand instead of reaching for the standard
// flag package: gosh's flags accept both "-c"/"--c" and "/c" spellings
// case-insensitively, and -V:ON/-V:OFF packs its value after a colon
// rather than as a separate token, neither of which flag.FlagSet
// expresses cleanly.
func parseFlags(args []string) (flags, error) {
	var f flags
	i := 0
	next := func(name string) (string, error) {
		i++
		if i >= len(args) {
			return "", fmt.Errorf("%s requires an argument", name)
		}
		return args[i], nil
	}

	for ; i < len(args); i++ {
		arg := args[i]
		norm := strings.ToLower(strings.TrimLeft(arg, "-/"))

		switch {
		case norm == "c":
			v, err := next(arg)
			if err != nil {
				return f, err
			}
			f.runCmd = v
		case norm == "k":
			v, err := next(arg)
			if err != nil {
				return f, err
			}
			f.keepCmd = v
		case norm == "t":
			v, err := next(arg)
			if err != nil {
				return f, err
			}
			f.title = v
		case norm == "i":
			v, err := next(arg)
			if err != nil {
				return f, err
			}
			f.overlay = v
		case norm == "q":
			f.quiet = true
		case strings.HasPrefix(norm, "v:"):
			f.delayedExpSet = true
			f.delayedExp = strings.EqualFold(norm[2:], "on")
		case norm == "h" || norm == "?":
			f.help = true
		default:
			return f, fmt.Errorf("unrecognized option %q", arg)
		}
	}
	return f, nil
}

// RunApp contains the application logic, separated from main so it
// can be exercised with an explicit argument list and return code.
func RunApp(args []string) int {
	f, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, usage)
		return 2
	}
	if f.help {
		fmt.Print(usage)
		return 0
	}

	cm := config.NewConfigManager()
	if err := cm.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}
	if f.overlay != "" {
		if err := cm.LoadOverlay(f.overlay); err != nil {
			fmt.Fprintf(os.Stderr, "load overlay %s: %v\n", f.overlay, err)
			return 1
		}
	}
	cfg := cm.GetConfig()
	if f.quiet {
		cfg.Behavior.QuietMode = true
	}
	if f.delayedExpSet {
		cfg.Behavior.DelayedExpansion = f.delayedExp
	}

	if f.title != "" {
		fmt.Printf("\033]0;%s\007", f.title)
	}

	defer handleCrash()

	sh, err := shell.New(cfg, os.Stdin, os.Stdout, os.Stdin.Fd())
	if err != nil {
		fmt.Fprintf(os.Stderr, "gosh: %v\n", err)
		return 1
	}

	switch {
	case f.runCmd != "":
		return sh.RunCommand(f.runCmd)
	case f.keepCmd != "":
		sh.RunCommand(f.keepCmd)
		fallthrough
	default:
		if err := sh.Run(); err != nil {
			if code, ok := shell.ExitCode(err); ok {
				return code
			}
			fmt.Fprintf(os.Stderr, "gosh: %v\n", err)
			return 1
		}
	}
	return 0
}

// handleCrash writes the panic value and stack trace of any panic
// escaping the run loop to crash-YYYYMMDD_HHMMSS.log in the data
// directory, prints where the trace was written to stderr, and exits
// with status 1 instead of letting the panic propagate.
func handleCrash() {
	r := recover()
	if r == nil {
		return
	}
	trace := fmt.Sprintf("%v\n\n%s", r, debug.Stack())
	if dataDir, err := config.DataDir(); err == nil {
		path := filepath.Join(dataDir, fmt.Sprintf("crash-%s.log", time.Now().Format("20060102_150405")))
		if os.WriteFile(path, []byte(trace), 0o600) == nil {
			fmt.Fprintf(os.Stderr, "gosh: crashed: %v (trace written to %s)\n", r, path)
			os.Exit(1)
		}
	}
	fmt.Fprintf(os.Stderr, "gosh: crashed: %s", trace)
	os.Exit(1)
}

func main() {
	os.Exit(RunApp(os.Args[1:]))
}
