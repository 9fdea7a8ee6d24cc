// Package git provides adapters for interacting with the local Git working
// directory.
package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MyCarrier-DevOps/branchpad/internal/domain"
)

// testLogger is a minimal logger for testing that doesn't output anything.
type testLogger struct{}

func (l *testLogger) Debug(_ context.Context, _ string, _ map[string]interface{}) {}
func (l *testLogger) Warn(_ context.Context, _ string, _ map[string]interface{})  {}

// setupTestRepo creates a temporary git repository with one commit.
func setupTestRepo(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	runGit(t, tmpDir, "init", "--initial-branch", "main")
	runGit(t, tmpDir, "config", "user.email", "test@example.com")
	runGit(t, tmpDir, "config", "user.name", "Test User")

	commitFile(t, tmpDir, "test.txt", "initial content", "Initial commit")

	return tmpDir
}

// commitFile writes the file and commits it with the given message.
func commitFile(t *testing.T, dir, name, content, message string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", message)
}

// runGit executes a git command in the given directory.
func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\nOutput: %s", args, err, output)
	}
}

func TestNewGoGitInspector_NotARepository(t *testing.T) {
	tmpDir := t.TempDir()

	inspector, err := NewGoGitInspector(tmpDir, &testLogger{})

	require.Error(t, err)
	assert.Nil(t, inspector)
	assert.ErrorIs(t, err, domain.ErrRepositoryNotFound)
}

func TestGoGitInspector_CurrentBranch(t *testing.T) {
	repoPath := setupTestRepo(t)

	inspector, err := NewGoGitInspector(repoPath, &testLogger{})
	require.NoError(t, err)
	defer inspector.Close()

	branch, err := inspector.CurrentBranch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "main", branch)
}

func TestGoGitInspector_CurrentBranch_DetachedHead(t *testing.T) {
	repoPath := setupTestRepo(t)
	runGit(t, repoPath, "checkout", "--detach", "HEAD")

	inspector, err := NewGoGitInspector(repoPath, &testLogger{})
	require.NoError(t, err)
	defer inspector.Close()

	_, err = inspector.CurrentBranch(context.Background())

	assert.ErrorIs(t, err, domain.ErrDetachedHead)
}

func TestGoGitInspector_ListBranches(t *testing.T) {
	repoPath := setupTestRepo(t)

	// Second branch with a newer commit so the ordering is observable.
	runGit(t, repoPath, "checkout", "-b", "feature/newer")
	time.Sleep(1100 * time.Millisecond) // commit timestamps have second resolution
	commitFile(t, repoPath, "more.txt", "more", "Add more content")
	runGit(t, repoPath, "checkout", "main")

	inspector, err := NewGoGitInspector(repoPath, &testLogger{})
	require.NoError(t, err)
	defer inspector.Close()

	branches, err := inspector.ListBranches(context.Background())

	require.NoError(t, err)
	require.Len(t, branches, 2)
	assert.Equal(t, "feature/newer", branches[0].Name)
	assert.Equal(t, "Add more content", branches[0].LastCommitSubject)
	assert.Equal(t, "main", branches[1].Name)
	assert.Equal(t, "Initial commit", branches[1].LastCommitSubject)
	assert.True(t, branches[0].LastCommitDate.After(branches[1].LastCommitDate))
}

func TestCLIRunner_CheckoutNewBranchAndBack(t *testing.T) {
	repoPath := setupTestRepo(t)
	runner := NewCLIRunner(repoPath, &testLogger{})
	ctx := context.Background()

	err := runner.CheckoutNewBranch(ctx, "jdoe/SYNTH-1/fix-bug")
	require.NoError(t, err)

	inspector, err := NewGoGitInspector(repoPath, &testLogger{})
	require.NoError(t, err)
	defer inspector.Close()

	branch, err := inspector.CurrentBranch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jdoe/SYNTH-1/fix-bug", branch)

	require.NoError(t, runner.Checkout(ctx, "main"))

	branch, err = inspector.CurrentBranch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "main", branch)
}

func TestCLIRunner_CheckoutMissingBranchSurfacesGitOutput(t *testing.T) {
	repoPath := setupTestRepo(t)
	runner := NewCLIRunner(repoPath, &testLogger{})

	err := runner.Checkout(context.Background(), "does-not-exist")

	require.Error(t, err)
	var vcsErr *domain.VcsError
	require.ErrorAs(t, err, &vcsErr)
	assert.Equal(t, "checkout does-not-exist", vcsErr.Op)
	assert.Contains(t, vcsErr.Output, "does-not-exist")
}

func TestCLIRunner_PullWithoutRemoteFails(t *testing.T) {
	repoPath := setupTestRepo(t)
	runner := NewCLIRunner(repoPath, &testLogger{})

	err := runner.Pull(context.Background())

	require.Error(t, err)
	var vcsErr *domain.VcsError
	require.ErrorAs(t, err, &vcsErr)
	assert.Equal(t, "pull", vcsErr.Op)
	assert.NotEmpty(t, vcsErr.Output)
}
