package organize

import (
	"fmt"
	"io"
	"os"

	"camroll/pkg/types"
)

// Capability supplies the filesystem primitives the executor applies. The
// caller picks copy, move or log-only semantics at the boundary; the engine
// never branches on the mode itself.
type Capability interface {
	Transfer(src, dest string) error
	Mkdir(path string) error
}

// Copy duplicates files, leaving sources in place. Used by import.
type Copy struct{}

// Transfer copies src to dest.
func (Copy) Transfer(src, dest string) error {
	return copyFile(src, dest)
}

// Mkdir creates the directory and any missing parents.
func (Copy) Mkdir(path string) error {
	return os.MkdirAll(path, 0755)
}

// Move renames files into place. Used by organize; falls back to copy and
// remove when the rename crosses devices.
type Move struct{}

// Transfer moves src to dest. An occupied destination is an error: rename
// would silently replace it, and a re-check here catches anything the plan
// could not see, such as an earlier transfer in the same run.
func (Move) Transfer(src, dest string) error {
	if _, err := os.Lstat(dest); err == nil {
		return fmt.Errorf("destination already exists: %s", dest)
	}
	if err := os.Rename(src, dest); err == nil {
		return nil
	}
	if err := copyFile(src, dest); err != nil {
		return err
	}
	return os.Remove(src)
}

// Mkdir creates the directory and any missing parents.
func (Move) Mkdir(path string) error {
	return os.MkdirAll(path, 0755)
}

// LogOnly records what would happen without touching the filesystem. Used
// for dry runs.
type LogOnly struct {
	Reporter types.Reporter
}

// Transfer logs the would-be transfer.
func (l LogOnly) Transfer(src, dest string) error {
	l.Reporter.Report(types.SeverityInfo, "would transfer %s -> %s", src, dest)
	return nil
}

// Mkdir logs the would-be directory creation.
func (l LogOnly) Mkdir(path string) error {
	l.Reporter.Report(types.SeverityInfo, "would create directory %s", path)
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	// Exclusive create, so a copy can never truncate a file already at dest.
	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
