package repo

import (
	"github.com/HugoLorent/gat/pkg/object"
)

// Repo represents an opened repository: a working directory with a
// .git metadata directory holding the loose-object store.
type Repo struct {
	RootDir string        // working directory root
	GitDir  string        // .git/ directory
	Store   *object.Store // content-addressed object store
}
