package gitstatus

import (
	"context"
	"errors"
	"testing"
)

// Mock implementation of CommandRunner.
type mockCommandRunner struct {
	outputFunc func(_ context.Context, dir, name string, args ...string) ([]byte, error)
}

func (m *mockCommandRunner) OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	if m.outputFunc != nil {
		return m.outputFunc(ctx, dir, name, args...)
	}
	return []byte{}, nil
}

func notARepoError() error {
	return &ExitError{Code: 128}
}

func TestProberStatus(t *testing.T) {
	tests := []struct {
		name       string
		mockRunner *mockCommandRunner
		expected   string
	}{
		{
			name: "not a git repo",
			mockRunner: &mockCommandRunner{
				outputFunc: func(_ context.Context, _, _ string, args ...string) ([]byte, error) {
					if args[0] == "symbolic-ref" {
						return nil, notARepoError()
					}
					return []byte{}, nil
				},
			},
			expected: "",
		},
		{
			name: "clean repo on main",
			mockRunner: &mockCommandRunner{
				outputFunc: func(_ context.Context, _, _ string, args ...string) ([]byte, error) {
					if args[0] == "symbolic-ref" {
						return []byte("refs/heads/main\n"), nil
					}
					if args[0] == "status" {
						return []byte("On branch main\nnothing to commit, working tree clean\n"), nil
					}
					return []byte{}, nil
				},
			},
			expected: "main",
		},
		{
			name: "detached HEAD falls back to short hash",
			mockRunner: &mockCommandRunner{
				outputFunc: func(_ context.Context, _, _ string, args ...string) ([]byte, error) {
					if args[0] == "symbolic-ref" {
						return nil, &ExitError{Code: 1}
					}
					if args[0] == "rev-parse" {
						return []byte("abc1234\n"), nil
					}
					if args[0] == "status" {
						return []byte("HEAD detached at abc1234\nnothing to commit, working tree clean\n"), nil
					}
					return []byte{}, nil
				},
			},
			expected: "abc1234",
		},
		{
			name: "modified and untracked files",
			mockRunner: &mockCommandRunner{
				outputFunc: func(_ context.Context, _, _ string, args ...string) ([]byte, error) {
					if args[0] == "symbolic-ref" {
						return []byte("refs/heads/feature\n"), nil
					}
					if args[0] == "status" {
						return []byte("On branch feature\n" +
							"Changes not staged for commit:\n" +
							"\tmodified:   main.go\n" +
							"Untracked files:\n" +
							"\tnew_thing.go\n"), nil
					}
					return []byte{}, nil
				},
			},
			expected: "feature ✭✹",
		},
		{
			name: "git missing entirely",
			mockRunner: &mockCommandRunner{
				outputFunc: func(_ context.Context, _, _ string, _ ...string) ([]byte, error) {
					return nil, errors.New("executable file not found in $PATH")
				},
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prober := New(&Dependencies{Runner: tt.mockRunner})
			got := prober.Status(context.Background(), "/some/dir")
			if got != tt.expected {
				t.Errorf("Status() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSymbolsOrderingIsDeterministic(t *testing.T) {
	// Status text hitting every category, deliberately out of table order.
	statusText := "Your branch is behind 'origin/main'\n" +
		"and have diverged\n" +
		"Your branch is ahead of 'origin/main' by 2 commits\n" +
		"\tmodified:   a.go\n" +
		"\tdeleted:    b.go\n" +
		"\tnew file:   c.go\n" +
		"\trenamed:    d.go -> e.go\n" +
		"Untracked files:\n"

	runner := &mockCommandRunner{
		outputFunc: func(_ context.Context, _, _ string, args ...string) ([]byte, error) {
			if args[0] == "status" {
				return []byte(statusText), nil
			}
			return []byte("refs/heads/main\n"), nil
		},
	}
	prober := New(&Dependencies{Runner: runner})

	want := "▸⬆✚✭✖✹⬇⬍"
	for i := 0; i < 5; i++ {
		got := prober.Symbols(context.Background(), ".")
		if got != want {
			t.Fatalf("run %d: Symbols() = %q, want %q", i, got, want)
		}
	}
}

func TestBranchStripsRefPrefix(t *testing.T) {
	runner := &mockCommandRunner{
		outputFunc: func(_ context.Context, _, _ string, args ...string) ([]byte, error) {
			if args[0] == "symbolic-ref" {
				return []byte("refs/heads/fix/thing\n"), nil
			}
			return []byte{}, nil
		},
	}
	prober := New(&Dependencies{Runner: runner})

	if got := prober.Branch(context.Background(), "."); got != "fix/thing" {
		t.Errorf("Branch() = %q, want %q", got, "fix/thing")
	}
}

func TestExitCodeExtraction(t *testing.T) {
	if got := exitCode(notARepoError()); got != 128 {
		t.Errorf("exitCode() = %d, want 128", got)
	}
	if got := exitCode(errors.New("plain error")); got != -1 {
		t.Errorf("exitCode() = %d, want -1", got)
	}
}
