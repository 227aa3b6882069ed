// Package fsutil provides filesystem helpers shared across the codebase.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/condaops/condactl/internal/messages"
)

// WriteFileAtomic writes data to filename by writing a temp file in the same
// directory and renaming it into place. The temp file is synced before the
// rename and the parent directory is synced after, so a crash never leaves a
// partially written file at filename.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.FsutilCreateTempFileFmt, filename, err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilSetPermissionsFmt, filename, err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilWriteTempFileFmt, filename, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilSyncTempFileFmt, filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(messages.FsutilCloseTempFileFmt, filename, err)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		return fmt.Errorf(messages.FsutilRenameTempFileFmt, filename, err)
	}

	dirFile, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf(messages.FsutilOpenDirFmt, dir, err)
	}
	if err := dirFile.Sync(); err != nil {
		_ = dirFile.Close()
		return fmt.Errorf(messages.FsutilSyncDirFmt, dir, err)
	}
	return dirFile.Close()
}
