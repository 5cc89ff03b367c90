// Package fsutil validates output paths supplied on the command line
// before any generation work begins, matching the OS-specific
// filename rules of the original implementation.
package fsutil

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/XenorInspire/worgenx/internal/werrors"
)

// windowsPathMax is the legacy MAX_PATH limit; paths longer than this
// are rejected on Windows.
const windowsPathMax = 260

// invalidFilenameChars returns the bytes that may not appear in a
// filename on the current OS. Unix forbids only '/' and NUL (enforced
// by the OS itself via path separation and C-string termination); this
// adds the control characters the original implementation also
// rejected. Windows additionally forbids the reserved NTFS characters.
func invalidFilenameChars() string {
	const common = "\x00\r\n"

	if runtime.GOOS == "windows" {
		return common + `<>:"\|?*+,;=@`
	}

	return common
}

// ValidateOutputPath checks path for OS-disallowed characters, resolves
// it to an absolute path, enforces the Windows MAX_PATH limit, and
// verifies the parent directory already exists. It returns the
// resolved absolute path on success.
func ValidateOutputPath(path string) (string, error) {
	base := filepath.Base(path)
	if base == "" || base == "." || base == ".." || base == string(filepath.Separator) {
		return "", &werrors.InvalidFilenameError{Name: path}
	}

	if strings.ContainsAny(base, invalidFilenameChars()) {
		return "", &werrors.InvalidPathError{Path: path}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &werrors.InvalidPathError{Path: path}
	}

	if runtime.GOOS == "windows" && len(abs) > windowsPathMax {
		return "", &werrors.PathTooLongError{Path: abs}
	}

	parent := filepath.Dir(abs)
	if !dirExists(parent) {
		return "", &werrors.ParentFolderError{Path: parent}
	}

	return abs, nil
}
