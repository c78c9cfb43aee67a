// Package gate implements the admin access gate: a hidden tap sequence
// reveals a prompt, and the shared access code unlocks admin-only actions.
package gate

import (
	"log/slog"
	"sync"
	"time"

	"github.com/ratemyshots/ratemyshots-server/internal/errors"
)

const (
	// tapThreshold taps within tapWindow open the access prompt.
	tapThreshold = 3
	tapWindow    = 2 * time.Second
)

// Gate tracks the admin access state. State is in-memory only: a restart
// always comes back locked.
type Gate struct {
	mu         sync.Mutex
	codeHash   string
	unlocked   bool
	promptOpen bool
	lastError  bool
	tapTimes   []time.Time
	now        func() time.Time
	logger     *slog.Logger
}

// New creates a Gate guarding admin access with the given code.
// The code is hashed immediately and the plaintext is not retained.
func New(accessCode string, logger *slog.Logger) (*Gate, error) {
	hash, err := HashCode(accessCode)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to hash access code")
	}
	return &Gate{
		codeHash: hash,
		now:      time.Now,
		logger:   logger,
	}, nil
}

// RecordTap registers one tap on the hidden trigger. When the third tap
// lands within the rolling window the access prompt opens. Returns whether
// the prompt is now open.
func (g *Gate) RecordTap() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.unlocked {
		return false
	}

	now := g.now()
	cutoff := now.Add(-tapWindow)

	kept := g.tapTimes[:0]
	for _, ts := range g.tapTimes {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	g.tapTimes = append(kept, now)

	if len(g.tapTimes) >= tapThreshold {
		g.promptOpen = true
		g.tapTimes = g.tapTimes[:0]
		g.logger.Debug("admin access prompt opened")
	}

	return g.promptOpen
}

// Unlock verifies the access code and transitions to the unlocked state.
// A wrong code sets the error flag and returns an invalid-credentials error.
func (g *Gate) Unlock(code string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	ok, err := VerifyCode(g.codeHash, code)
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to verify access code")
	}
	if !ok {
		g.lastError = true
		g.logger.Warn("admin unlock failed: wrong access code")
		return errors.InvalidCredentials("wrong access code")
	}

	g.unlocked = true
	g.promptOpen = false
	g.lastError = false
	g.tapTimes = nil
	g.logger.Info("admin access unlocked")
	return nil
}

// Lock returns the gate to the locked state and clears the prompt.
func (g *Gate) Lock() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.unlocked = false
	g.promptOpen = false
	g.lastError = false
	g.tapTimes = nil
	g.logger.Info("admin access locked")
}

// DismissPrompt closes the access prompt without unlocking and clears
// any pending error flag.
func (g *Gate) DismissPrompt() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.promptOpen = false
	g.lastError = false
	g.tapTimes = nil
}

// ClearError clears the wrong-code error flag, e.g. when the user starts
// typing a new attempt.
func (g *Gate) ClearError() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.lastError = false
}

// Status is a snapshot of the gate state.
type Status struct {
	Unlocked   bool `json:"unlocked"`
	PromptOpen bool `json:"prompt_open"`
	LastError  bool `json:"last_error"`
}

// Status returns the current gate state.
func (g *Gate) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()

	return Status{
		Unlocked:   g.unlocked,
		PromptOpen: g.promptOpen,
		LastError:  g.lastError,
	}
}

// Unlocked reports whether admin access is currently granted.
func (g *Gate) Unlocked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.unlocked
}
