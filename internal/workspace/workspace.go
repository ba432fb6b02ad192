// Package workspace opens a ledger repository on disk: its config, chart of
// accounts, journal and reconciliation log.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cleared-dev/ledger/internal/accounts"
	"github.com/cleared-dev/ledger/internal/config"
	"github.com/cleared-dev/ledger/internal/crosslog"
	"github.com/cleared-dev/ledger/internal/gitops"
	"github.com/cleared-dev/ledger/internal/journal"
	"github.com/cleared-dev/ledger/internal/model"
)

// Workspace is an opened ledger repository.
type Workspace struct {
	Root    string
	Config  *config.Config
	Chart   *accounts.Service
	Journal *journal.Store

	// mu orders journal saves and log appends across concurrent toggles.
	mu sync.Mutex
}

// Open loads the config, chart and journal under root. The journal is
// validated against the chart and rejected if any entry is invalid.
func Open(root string) (*Workspace, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	cfg, err := config.LoadRepo(abs)
	if err != nil {
		return nil, err
	}

	w := &Workspace{Root: abs, Config: cfg}
	w.Chart, err = accounts.LoadFile(w.Path(cfg.Paths.Chart))
	if err != nil {
		return nil, err
	}
	w.Journal, err = journal.Load(w.Path(cfg.Paths.Journal), w.Chart)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Init creates a new repository under root with the default chart and the
// demonstration journal, and commits it to a fresh git repository when git
// is installed.
func Init(root, businessName string) (*Workspace, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	for _, d := range []string{"accounts", "journal", "logs", "exports"} {
		if err := os.MkdirAll(filepath.Join(abs, d), 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(businessName)
	if err := config.Save(filepath.Join(abs, config.FileName), cfg); err != nil {
		return nil, fmt.Errorf("writing config: %w", err)
	}

	w := &Workspace{
		Root:    abs,
		Config:  cfg,
		Chart:   accounts.NewService(accounts.DefaultChart()),
		Journal: journal.NewStore(journal.DemoEntries()),
	}
	if err := w.Chart.SaveFile(w.Path(cfg.Paths.Chart)); err != nil {
		return nil, fmt.Errorf("writing chart of accounts: %w", err)
	}
	if err := w.Journal.Save(w.Path(cfg.Paths.Journal)); err != nil {
		return nil, err
	}

	gitignore := "exports/\n.env\n"
	if err := os.WriteFile(filepath.Join(abs, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return nil, fmt.Errorf("writing .gitignore: %w", err)
	}

	// Without git the repository still works; it just is not versioned.
	if !gitops.Available() {
		return w, nil
	}
	if !gitops.IsRepo(abs) {
		if err := gitops.Init(abs); err != nil {
			return nil, err
		}
	}
	if _, err := gitops.CommitAll(abs, "init: "+businessName, w.author()); err != nil {
		return nil, fmt.Errorf("initial commit: %w", err)
	}
	return w, nil
}

// Path resolves a config path against the repository root.
func (w *Workspace) Path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(w.Root, p)
}

// ErrCommit marks a toggle that was saved and logged but could not be
// committed to git. The journal and the log still agree.
var ErrCommit = errors.New("auto-commit failed")

// Cross sets the reconciliation flag of one entry, persists the journal and
// appends the toggle to the reconciliation log. The toggle and its log event
// are kept together: if either write fails the flag is restored in memory and
// on disk. With git.auto_commit set the change is then committed.
func (w *Workspace) Cross(entryID string, crossed bool, actor, source string) (model.JournalEntry, crosslog.Event, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	prev, _ := w.Journal.Get(entryID)
	updated, err := w.Journal.SetCrossed(entryID, crossed)
	if err != nil {
		return model.JournalEntry{}, crosslog.Event{}, err
	}

	if err := w.Journal.Save(w.Path(w.Config.Paths.Journal)); err != nil {
		return model.JournalEntry{}, crosslog.Event{}, w.revert(entryID, prev.IsCrossed, false, err)
	}

	event := crosslog.NewEvent(entryID, crossed, actor, source)
	if err := crosslog.AppendFile(w.Path(w.Config.Paths.Reconciliation), []crosslog.Event{event}); err != nil {
		return model.JournalEntry{}, crosslog.Event{}, w.revert(entryID, prev.IsCrossed, true, fmt.Errorf("recording toggle: %w", err))
	}

	verb := "cross"
	if !crossed {
		verb = "uncross"
	}
	if err := w.commit(fmt.Sprintf("%s: %s by %s", verb, entryID, actor)); err != nil {
		return updated, event, err
	}
	return updated, event, nil
}

// revert puts the flag back after a failed toggle. saved means the journal
// already holds the new flag on disk and must be rewritten.
func (w *Workspace) revert(entryID string, was, saved bool, cause error) error {
	if _, err := w.Journal.SetCrossed(entryID, was); err != nil {
		return fmt.Errorf("%w (restore failed: %v)", cause, err)
	}
	if saved {
		if err := w.Journal.Save(w.Path(w.Config.Paths.Journal)); err != nil {
			return fmt.Errorf("%w (restore failed: %v)", cause, err)
		}
	}
	return cause
}

func (w *Workspace) commit(message string) error {
	if !w.Config.Git.AutoCommit || !gitops.IsRepo(w.Root) || !gitops.Available() {
		return nil
	}
	if _, err := gitops.CommitAll(w.Root, message, w.author()); err != nil {
		return fmt.Errorf("%w: %v", ErrCommit, err)
	}
	return nil
}

func (w *Workspace) author() gitops.Author {
	return gitops.Author{Name: w.Config.Git.AuthorName, Email: w.Config.Git.AuthorEmail}
}

// Events returns the reconciliation log.
func (w *Workspace) Events() ([]crosslog.Event, error) {
	return crosslog.ReadFile(w.Path(w.Config.Paths.Reconciliation))
}
