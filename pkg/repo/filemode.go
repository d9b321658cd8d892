package repo

import (
	"io/fs"

	"github.com/HugoLorent/gat/pkg/object"
)

// modeForEntry maps a directory entry's file mode to a tree entry mode
// string. The caller handles directories separately.
func modeForEntry(mode fs.FileMode) string {
	switch {
	case mode&fs.ModeSymlink != 0:
		return object.TreeModeSymlink
	case mode&0o111 != 0:
		return object.TreeModeExecutable
	default:
		return object.TreeModeFile
	}
}
