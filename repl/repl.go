// Package repl implements Ozen's interactive read-eval-print loop,
// built on chzyer/readline for line editing and history and
// fatih/color for its banner and diagnostics.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/ozen-lang/ozen"
)

const replFilename = "<stdin>"

// Color scheme for REPL output:
// - bannerColor: startup banner
// - errorColor: rendered diagnostics and internal failures
// - valueColor: evaluated expression results
var (
	bannerColor = color.New(color.FgCyan, color.Bold)
	errorColor  = color.New(color.FgRed)
	valueColor  = color.New(color.FgGreen)
)

// Repl represents one interactive session's configuration: the banner
// and identity text shown at startup and the prompt shown before every
// line.
//
// Fields:
//   - banner: ASCII art banner displayed at startup
//   - version: version string of the interpreter
//   - author: author or project attribution
//   - license: software license name
//   - prompt: command prompt shown to the user (e.g. "ozen >>> ")
type Repl struct {
	banner  string // ASCII art banner displayed at startup
	version string // Version string of the interpreter
	author  string // Author or project attribution
	license string // Software license name
	prompt  string // Command prompt shown to the user
}

// New creates and initializes a Repl instance.
//
// Parameters:
//   - banner: ASCII art banner to display at startup
//   - version: version string of the interpreter
//   - author: author or project attribution
//   - license: software license name
//   - prompt: command prompt string
//
// Returns:
//   - *Repl: a REPL ready to Start
func New(banner, version, author, license, prompt string) *Repl {
	return &Repl{banner: banner, version: version, author: author, license: license, prompt: prompt}
}

// Start runs the loop until in is exhausted or the user types "exit",
// printing the welcome banner and then, for every line, either a
// rendered error or the evaluated value. Every line is evaluated
// against the same persistent ozen.Session, so a variable or function
// one line defines is visible to the next.
//
// Parameters:
//   - in: where input lines are read from (a terminal's stdin, or a
//     TCP connection in server mode)
//   - out: where the banner, results, and errors are written
func (r *Repl) Start(in io.Reader, out io.Writer) {
	bannerColor.Fprintln(out, r.banner)
	fmt.Fprintf(out, "Ozen %s (%s) — by %s. Type \"exit\" to quit.\n", r.version, r.license, r.author)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.prompt,
		Stdin:  io.NopCloser(in),
		Stdout: out,
	})
	if err != nil {
		errorColor.Fprintf(out, "Failed to start input reader: %v\n", err)
		return
	}
	defer rl.Close()

	session := ozen.NewSession(out, in)

	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			return
		}

		r.evalAndPrint(session, line, out)
	}
}

// evalAndPrint evaluates one line and prints its value or rendered
// error, turning an unexpected evaluator panic into a reported error
// instead of crashing the session.
func (r *Repl) evalAndPrint(session *ozen.Session, line string, out io.Writer) {
	defer func() {
		if rec := recover(); rec != nil {
			errorColor.Fprintf(out, "internal error: %v\n", rec)
		}
	}()

	value, evalErr := session.Eval(replFilename, line)
	if evalErr != nil {
		errorColor.Fprintln(out, evalErr.Error())
		return
	}
	if value != nil {
		valueColor.Fprintln(out, value.String())
	}
}
