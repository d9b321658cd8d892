package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/HugoLorent/gat/pkg/object"
)

// WriteTree snapshots the working directory into a tree object graph,
// writing blobs for files and trees for directories bottom-up, and
// returns the root tree hash. Given byte-identical directory contents
// the result is the same hash on every run: entry order is canonical
// and framing is fully deterministic.
func (r *Repo) WriteTree() (object.Hash, error) {
	return r.writeTreeDir(r.RootDir)
}

// writeTreeDir builds the tree object for one directory, recursing
// post-order into subdirectories. Empty directories still produce a
// valid (empty-payload) tree object.
func (r *Repo) writeTreeDir(dir string) (object.Hash, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("write tree: read dir %s: %w", dir, err)
	}

	var entries []object.TreeEntry
	for _, de := range dirEntries {
		// Never descend into the metadata directory; a nested
		// repository's store is not working-tree content either.
		if de.Name() == gitDirName {
			continue
		}

		full := filepath.Join(dir, de.Name())
		switch {
		case de.IsDir():
			subHash, err := r.writeTreeDir(full)
			if err != nil {
				return "", err
			}
			entries = append(entries, object.TreeEntry{
				Mode: object.TreeModeDir,
				Name: de.Name(),
				Hash: subHash,
			})
		case de.Type()&os.ModeSymlink != 0:
			// Symlinks become blobs of the link target and are never
			// followed, so the walk cannot loop.
			target, err := os.Readlink(full)
			if err != nil {
				return "", fmt.Errorf("write tree: readlink %s: %w", full, err)
			}
			h, err := r.Store.WriteBlob(&object.Blob{Data: []byte(target)})
			if err != nil {
				return "", fmt.Errorf("write tree: %w", err)
			}
			entries = append(entries, object.TreeEntry{
				Mode: object.TreeModeSymlink,
				Name: de.Name(),
				Hash: h,
			})
		case de.Type().IsRegular():
			info, err := de.Info()
			if err != nil {
				return "", fmt.Errorf("write tree: stat %s: %w", full, err)
			}
			data, err := os.ReadFile(full)
			if err != nil {
				return "", fmt.Errorf("write tree: read %s: %w", full, err)
			}
			h, err := r.Store.WriteBlob(&object.Blob{Data: data})
			if err != nil {
				return "", fmt.Errorf("write tree: %w", err)
			}
			entries = append(entries, object.TreeEntry{
				Mode: modeForEntry(info.Mode()),
				Name: de.Name(),
				Hash: h,
			})
		default:
			// Sockets, devices, fifos have no tree representation.
			continue
		}
	}

	// MarshalTree re-sorts into canonical order, so traversal order
	// does not matter here.
	h, err := r.Store.WriteTree(&object.Tree{Entries: entries})
	if err != nil {
		return "", fmt.Errorf("write tree %s: %w", dir, err)
	}
	return h, nil
}
