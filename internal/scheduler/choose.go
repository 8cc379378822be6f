package scheduler

import (
	"os"
	"runtime"
	"strings"
)

// Probe carries the environment facts the strategy decision reads. It is
// plain data so Choose stays a pure function.
type Probe struct {
	// Override is the configured strategy name, empty for auto-detect.
	Override string
	// GOOS is the running operating system.
	GOOS string
	// Term is the TERM environment variable.
	Term string
	// InsideEmacs is set when running under an Emacs shell buffer.
	InsideEmacs bool
	// MidnightCmd is set inside a Midnight Commander subshell.
	MidnightCmd bool
	// WorkerAvailable reports whether the embedding loop can host the
	// in-process worker strategy (it needs a dispatch turn to deliver
	// completions on).
	WorkerAvailable bool
	// SignalFree reports whether the user-signal channel is still
	// unclaimed by surrounding configuration.
	SignalFree bool
}

// EnvReader reads environment variables.
type EnvReader interface {
	Get(key string) string
}

// osEnvReader reads the process environment.
type osEnvReader struct{}

func (osEnvReader) Get(key string) string { return os.Getenv(key) }

// NewOSEnvReader returns an EnvReader over the process environment.
func NewOSEnvReader() EnvReader { return osEnvReader{} }

// ProbeEnvironment gathers a Probe from the real environment.
func ProbeEnvironment(override string, env EnvReader) Probe {
	if env == nil {
		env = osEnvReader{}
	}
	return Probe{
		Override:        override,
		GOOS:            runtime.GOOS,
		Term:            env.Get("TERM"),
		InsideEmacs:     env.Get("INSIDE_EMACS") != "",
		MidnightCmd:     env.Get("MC_SID") != "",
		WorkerAvailable: true,
		SignalFree:      env.Get("PROMPTLINE_USR1_TAKEN") == "",
	}
}

// forced lists environment signatures with a known-bad strategy fit.
// This is configuration data carried over from field reports, not logic
// inherent to the strategies; edit the table, not Choose.
var forced = []struct {
	match  func(Probe) bool
	method Method
}{
	{func(p Probe) bool { return p.GOOS == "windows" }, MethodSync},
	{func(p Probe) bool { return p.Term == "dumb" }, MethodSync},
	{func(p Probe) bool { return p.InsideEmacs }, MethodSync},
	{func(p Probe) bool { return p.MidnightCmd }, MethodSync},
	// The worker strategy misses redraws under screen on darwin; the
	// signal path behaves.
	{func(p Probe) bool { return p.GOOS == "darwin" && strings.HasPrefix(p.Term, "screen") }, MethodSignal},
}

// Choose picks the session strategy. Evaluated once at startup:
//
//  1. An explicit override wins unconditionally.
//  2. Known-incompatible environments force their listed strategy.
//  3. Otherwise the in-process worker, when the loop can host one.
//  4. Otherwise the signal strategy, when the signal is unclaimed.
//  5. Otherwise synchronous.
func Choose(p Probe) Method {
	if m, ok := ParseMethod(p.Override); ok {
		return m
	}
	for _, f := range forced {
		if f.match(p) {
			if f.method == MethodSignal && !p.SignalFree {
				return MethodSync
			}
			return f.method
		}
	}
	if p.WorkerAvailable {
		return MethodWorker
	}
	if p.SignalFree {
		return MethodSignal
	}
	return MethodSync
}
