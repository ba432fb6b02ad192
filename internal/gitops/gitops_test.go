package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if !Available() {
		t.Skip("git not installed")
	}
}

func lastCommit(t *testing.T, dir, format string) string {
	t.Helper()
	cmd := exec.Command("git", "log", "-1", "--format="+format)
	cmd.Dir = dir
	out, err := cmd.Output()
	require.NoError(t, err)
	return string(out)
}

func TestInit_MakesRepo(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	assert.False(t, IsRepo(dir))

	require.NoError(t, Init(dir))
	assert.True(t, IsRepo(dir))
}

func TestCommitAll_RecordsAuthor(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	require.NoError(t, Init(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "entries.csv"), []byte("entry_id\n"), 0o644))

	who := Author{Name: "Ledger Bot", Email: "ledger@example.com"}
	hash, err := CommitAll(dir, "journal: add entries", who)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.Contains(t, lastCommit(t, dir, "%s"), "journal: add entries")
	assert.Contains(t, lastCommit(t, dir, "%an <%ae>"), "Ledger Bot <ledger@example.com>")
	assert.Contains(t, lastCommit(t, dir, "%cn"), "Ledger Bot")
}

func TestCommitAll_NothingToCommit(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	_, err := CommitAll(dir, "empty", Author{Name: "a", Email: "a@example.com"})
	assert.ErrorContains(t, err, "git commit")
}

func TestAuthorString(t *testing.T) {
	assert.Equal(t, "Kari <kari@example.com>", Author{Name: "Kari", Email: "kari@example.com"}.String())
}
