//go:build integration

package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// setupTestRepo creates a temporary git repository with one commit.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	gitCmd(t, dir, "init")
	gitCmd(t, dir, "config", "user.name", "Test User")
	gitCmd(t, dir, "config", "user.email", "test@example.com")
	gitCmd(t, dir, "config", "commit.gpgsign", "false")
	gitCmd(t, dir, "config", "tag.gpgsign", "false")
	gitCmd(t, dir, "remote", "add", "origin", "https://github.com/octocat/Hello-World.git")

	writeFile(t, dir, "package.json", `{"version": "1.0.0"}`)
	gitCmd(t, dir, "add", "package.json")
	gitCmd(t, dir, "commit", "-m", "Initial commit")

	return dir
}

// setupBareRemote creates a bare repository and registers it as remote "local".
func setupBareRemote(t *testing.T, repoDir string) string {
	t.Helper()
	bare := filepath.Join(t.TempDir(), "remote.git")
	gitCmd(t, repoDir, "init", "--bare", bare)
	gitCmd(t, repoDir, "remote", "add", "local", bare)
	return bare
}

func gitCmd(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v (output: %s)", args, err, output)
	}
	return string(output)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}
