package bootstrap

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"sort"
	"strings"

	"botlauncher/config"
)

// Result records the outcome of a single required-variable check. For
// redacted variables only presence and character length are ever recorded,
// never the value.
type Result struct {
	Var     config.RequiredVar
	Present bool
	Length  int
}

// Decision is the launch verdict after all checks have been reported.
type Decision int

const (
	DecisionLaunch Decision = iota
	DecisionAbort
)

// Validator checks required configuration and reports redacted diagnostics
// before the bot process is launched. Output lines are plain and
// timestamp-free so two runs against the same environment are
// byte-identical.
type Validator struct {
	BotName       string
	Vars          []config.RequiredVar
	Profile       config.Profile
	HaltOnMissing bool
	BotCommand    []string

	Out     io.Writer
	Getenv  func(string) string
	Environ func() []string
}

// Run performs every check in declared order and returns the per-variable
// results and the launch decision. It never stops at the first missing
// variable: a single run surfaces every misconfiguration at once.
func (v *Validator) Run() ([]Result, Decision) {
	fmt.Fprintf(v.Out, "=== %s launcher (%s) ===\n", v.BotName, runtime.Version())
	fmt.Fprintf(v.Out, "Detected profile: %s\n", v.Profile)
	v.reportBotRuntime()

	results := make([]Result, 0, len(v.Vars))
	missing := false

	for _, rv := range v.Vars {
		val := v.Getenv(rv.Name)
		res := Result{Var: rv, Present: val != ""}
		if res.Present {
			res.Length = len(val)
			if rv.Redact {
				fmt.Fprintf(v.Out, "%s is set (length: %d)\n", rv.Name, res.Length)
			} else {
				fmt.Fprintf(v.Out, "%s is set: %s\n", rv.Name, val)
			}
		} else {
			missing = true
			fmt.Fprintf(v.Out, "ERROR: %s is not set!\n", rv.Name)
			if v.Profile == config.ProfileRailway {
				v.reportRelatedNames(domainWord(rv.Name))
			}
		}
		results = append(results, res)
	}

	if missing && v.HaltOnMissing {
		return results, DecisionAbort
	}
	return results, DecisionLaunch
}

// reportBotRuntime probes the bot command's runtime for a version string.
// Purely informational: a probe failure is reported and ignored.
func (v *Validator) reportBotRuntime() {
	if len(v.BotCommand) == 0 {
		return
	}
	out, err := exec.Command(v.BotCommand[0], "--version").CombinedOutput()
	if err != nil {
		fmt.Fprintf(v.Out, "Bot runtime version unavailable: %v\n", err)
		return
	}
	fmt.Fprintf(v.Out, "Bot runtime: %s\n", strings.TrimSpace(string(out)))
}

// reportRelatedNames lists environment variable names containing the given
// word, to catch typos like DISCORD_TOKEN vs DISCORD_BOT_TOKEN on Railway
// where variables are set through the dashboard. Names only, never values.
func (v *Validator) reportRelatedNames(word string) {
	var names []string
	for _, kv := range v.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.Contains(strings.ToLower(name), word) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		fmt.Fprintf(v.Out, "  no environment variables matching %q\n", word)
		return
	}
	sort.Strings(names)
	fmt.Fprintf(v.Out, "  environment variables matching %q: %s\n", word, strings.Join(names, ", "))
}

// domainWord reduces a variable name to its leading vendor segment, e.g.
// DISCORD_BOT_TOKEN -> "discord".
func domainWord(name string) string {
	if i := strings.IndexByte(name, '_'); i > 0 {
		name = name[:i]
	}
	return strings.ToLower(name)
}
