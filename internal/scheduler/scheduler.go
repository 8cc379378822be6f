// Package scheduler refreshes the prompt's git status without blocking
// redraw. One of three strategies is picked per session: an in-process
// worker goroutine, a detached worker process with signal notification, or
// plain synchronous computation.
package scheduler

import (
	"context"
	"os"
	"sync"

	"github.com/Veraticus/promptline/internal/gitstatus"
	"github.com/Veraticus/promptline/internal/prompt"
)

// Method is the async refresh strategy for a session. It is chosen once at
// startup and never changes, except for the permanent degradation to
// synchronous mode when signal ownership is lost.
type Method int

const (
	// MethodWorker computes status on an in-process worker goroutine.
	MethodWorker Method = iota
	// MethodSignal spawns a detached process that signals completion.
	MethodSignal
	// MethodSync computes status inline during the pre-display cycle.
	MethodSync
)

func (m Method) String() string {
	switch m {
	case MethodWorker:
		return "worker"
	case MethodSignal:
		return "signal"
	case MethodSync:
		return "sync"
	}
	return "unknown"
}

// ParseMethod maps a configured override to a Method.
func ParseMethod(s string) (Method, bool) {
	switch s {
	case "worker":
		return MethodWorker, true
	case "signal":
		return MethodSignal, true
	case "sync":
		return MethodSync, true
	}
	return MethodSync, false
}

// Redrawer asks the foreground loop to redisplay the prompt. Every
// asynchronous completion path goes through it.
type Redrawer interface {
	RequestRedraw()
}

// RedrawFunc adapts a function to the Redrawer interface.
type RedrawFunc func()

// RequestRedraw implements Redrawer.
func (f RedrawFunc) RequestRedraw() { f() }

// Launcher spawns and terminates detached status workers. It exists as an
// interface so the signal strategy is testable without real processes.
type Launcher interface {
	// Spawn starts a detached worker that computes status for dir,
	// writes it to handoff and signals notifyPid. It returns the
	// worker's pid.
	Spawn(dir string, notifyPid int, handoff string) (int, error)
	// Terminate requests that a previously spawned worker stop.
	Terminate(pid int) error
}

// Options configures a Scheduler. Zero-value fields get production
// defaults.
type Options struct {
	Method      Method
	Prober      *gitstatus.Prober
	State       *prompt.State
	Redraw      Redrawer
	Launcher    Launcher
	HandoffPath string
	// Debugf receives diagnostics when the debug toggle is on. Nil
	// silences them.
	Debugf func(format string, args ...any)
}

// Scheduler owns the chosen refresh strategy for one session.
type Scheduler struct {
	method   Method
	prober   *gitstatus.Prober
	state    *prompt.State
	redraw   Redrawer
	launcher Launcher
	handoff  string
	debugf   func(format string, args ...any)

	// ownershipOK reports whether this scheduler still owns the
	// notification signal. Replaced in tests.
	ownershipOK func() bool

	mu        sync.Mutex
	inFlight  bool // worker strategy: a goroutine is computing
	workerPid int  // signal strategy: outstanding worker handle
	degraded  bool // signal ownership lost, sync for the session

	signals chan os.Signal
}

// New creates a Scheduler.
func New(opts Options) *Scheduler {
	s := &Scheduler{
		method:      opts.Method,
		prober:      opts.Prober,
		state:       opts.State,
		redraw:      opts.Redraw,
		launcher:    opts.Launcher,
		handoff:     opts.HandoffPath,
		debugf:      opts.Debugf,
		ownershipOK: signalOwned,
	}
	if s.prober == nil {
		s.prober = gitstatus.New(nil)
	}
	if s.state == nil {
		s.state = &prompt.State{}
	}
	if s.redraw == nil {
		s.redraw = RedrawFunc(func() {})
	}
	if s.launcher == nil {
		s.launcher = NewDefaultLauncher()
	}
	if s.handoff == "" {
		s.handoff = HandoffPath(os.Getpid())
	}
	if s.debugf == nil {
		s.debugf = func(string, ...any) {}
	}
	return s
}

// Method returns the strategy in effect, accounting for degradation.
func (s *Scheduler) Method() Method {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.degraded {
		return MethodSync
	}
	return s.method
}

// Start claims the notification signal and runs the dispatch loop until
// ctx is done. Only the signal strategy needs it; for the other strategies
// it returns immediately.
func (s *Scheduler) Start(ctx context.Context) {
	if s.method != MethodSignal {
		return
	}
	s.signals = make(chan os.Signal, 1)
	notifySignal(s.signals)
	go func() {
		defer stopSignal(s.signals)
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.signals:
				s.onNotify()
			}
		}
	}()
}

// Refresh recomputes the branch status for dir using the session strategy.
// It never blocks on git for the async strategies; the result lands in
// PromptState later, followed by a redraw request.
func (s *Scheduler) Refresh(ctx context.Context, dir string) {
	switch s.Method() {
	case MethodSync:
		s.runSync(ctx, dir)
	case MethodWorker:
		s.launchWorker(dir)
	case MethodSignal:
		s.launchSignal(ctx, dir)
	}
}

func (s *Scheduler) runSync(ctx context.Context, dir string) {
	status := s.prober.Status(ctx, dir)
	s.mu.Lock()
	s.state.BranchStatus = status
	s.mu.Unlock()
}

// launchWorker starts at most one in-process worker per refresh cycle. The
// completion writes PromptState and requests a redraw, then the worker is
// gone; there is nothing to tear down.
func (s *Scheduler) launchWorker(dir string) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return
	}
	s.inFlight = true
	s.mu.Unlock()

	go func() {
		status := s.prober.Status(context.Background(), dir)
		s.mu.Lock()
		s.state.BranchStatus = status
		s.inFlight = false
		s.mu.Unlock()
		s.redraw.RequestRedraw()
	}()
}

// launchSignal supersedes any outstanding worker process and spawns a new
// one. Spawn failure is not retried within the cycle.
func (s *Scheduler) launchSignal(ctx context.Context, dir string) {
	if !s.ownershipOK() {
		s.mu.Lock()
		s.degraded = true
		s.mu.Unlock()
		s.debugf("signal handler no longer ours; falling back to synchronous status for this session")
		s.runSync(ctx, dir)
		return
	}

	s.mu.Lock()
	prev := s.workerPid
	s.workerPid = 0
	s.mu.Unlock()

	if prev != 0 {
		// Best-effort: the worker may have already exited.
		_ = s.launcher.Terminate(prev)
	}

	pid, err := s.launcher.Spawn(dir, os.Getpid(), s.handoff)
	if err != nil {
		s.debugf("spawn status worker: %v", err)
		return
	}

	s.mu.Lock()
	s.workerPid = pid
	s.mu.Unlock()
}

// onNotify handles a completion signal: the worker has written the handoff
// file. A read failure (worker raced us, file gone) yields an empty status
// for this redraw, which the next cycle repairs.
func (s *Scheduler) onNotify() {
	status := ReadHandoff(s.handoff)
	s.mu.Lock()
	s.state.BranchStatus = status
	s.workerPid = 0
	s.mu.Unlock()
	s.redraw.RequestRedraw()
}

// OutstandingWorker returns the recorded pid of the in-flight signal
// worker, or 0.
func (s *Scheduler) OutstandingWorker() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.workerPid
}
