package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoLorent/gat/pkg/object"
)

// gitDirName is the metadata directory at the repository root. The
// tree builder never descends into it.
const gitDirName = ".git"

// Init creates a new repository at path: .git/ with objects/,
// refs/heads/, and a HEAD pointing at refs/heads/main. Returns an
// error if .git/ already exists.
func Init(path string) (*Repo, error) {
	gitDir := filepath.Join(path, gitDirName)

	if _, err := os.Stat(gitDir); err == nil {
		return nil, fmt.Errorf("init: repository already exists at %s", gitDir)
	}

	dirs := []string{
		filepath.Join(gitDir, "objects"),
		filepath.Join(gitDir, "refs", "heads"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("init: mkdir %s: %w", d, err)
		}
	}

	headPath := filepath.Join(gitDir, "HEAD")
	if err := os.WriteFile(headPath, []byte("ref: refs/heads/main\n"), 0o644); err != nil {
		return nil, fmt.Errorf("init: write HEAD: %w", err)
	}

	return &Repo{
		RootDir: path,
		GitDir:  gitDir,
		Store:   object.NewStore(gitDir),
	}, nil
}

// Open searches upward from path for a .git/ directory and opens the
// repository, so the store root is resolved once and threaded as a
// value rather than read from ambient state.
func Open(path string) (*Repo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("open: abs path: %w", err)
	}

	cur := abs
	for {
		gitDir := filepath.Join(cur, gitDirName)
		info, err := os.Stat(gitDir)
		if err == nil && info.IsDir() {
			return &Repo{
				RootDir: cur,
				GitDir:  gitDir,
				Store:   object.NewStore(gitDir),
			}, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return nil, fmt.Errorf("open: not a gat repository (or any parent up to /)")
		}
		cur = parent
	}
}

// Head reads .git/HEAD. If the content starts with "ref: ", it returns
// the ref path (e.g. "refs/heads/main"); otherwise the raw content.
func (r *Repo) Head() (string, error) {
	data, err := os.ReadFile(filepath.Join(r.GitDir, "HEAD"))
	if err != nil {
		return "", fmt.Errorf("head: %w", err)
	}
	content := strings.TrimRight(string(data), "\n")

	if strings.HasPrefix(content, "ref: ") {
		return strings.TrimPrefix(content, "ref: "), nil
	}
	return content, nil
}
