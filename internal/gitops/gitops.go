// Package gitops versions a ledger repository with the git binary.
package gitops

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Author identifies who commits journal changes.
type Author struct {
	Name  string
	Email string
}

func (a Author) String() string {
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

// Available reports whether a git binary is on PATH.
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// IsRepo reports whether dir has a .git directory.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// Init creates an empty repository in dir.
func Init(dir string) error {
	if _, err := git(dir, Author{}, "init", "--quiet"); err != nil {
		return err
	}
	return nil
}

// CommitAll stages every change under dir and commits it as author. The
// committer is set to the same identity so no global git config is needed.
// It returns the short hash of the new commit.
func CommitAll(dir, message string, author Author) (string, error) {
	if _, err := git(dir, author, "add", "-A"); err != nil {
		return "", err
	}
	if _, err := git(dir, author, "commit", "--quiet", "-m", message, "--author", author.String()); err != nil {
		return "", err
	}
	hash, err := git(dir, author, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	return hash, nil
}

func git(dir string, author Author, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()
	if author.Name != "" {
		cmd.Env = append(cmd.Env,
			"GIT_COMMITTER_NAME="+author.Name,
			"GIT_COMMITTER_EMAIL="+author.Email,
		)
	}
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %s: %w", args[0], strings.TrimSpace(string(out)), err)
	}
	return strings.TrimSpace(string(out)), nil
}
