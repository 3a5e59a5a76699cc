package resource

import (
	"os"
	"path/filepath"

	"minky/internal/backtrace"
)

// FilesystemLoader is the default Loader: path components map to OS
// path separators and sources carry a ".mnk" extension.
type FilesystemLoader struct {
	prefix Path
}

func NewFilesystemLoader(prefix Path) *FilesystemLoader {
	return &FilesystemLoader{prefix: prefix}
}

func (l *FilesystemLoader) Prefix() Path        { return l.prefix }
func (l *FilesystemLoader) SetPrefix(path Path) { l.prefix = path }

func (l *FilesystemLoader) GetCode(path Path) (string, *backtrace.Backtrace) {
	resolved, err := Normalize(l.prefix, path)
	if err != nil {
		return "", err
	}
	if len(resolved) == 0 {
		return "", backtrace.Error(backtrace.CodeResourceError, nil, "empty import path")
	}
	segments := append([]string{}, resolved...)
	segments[len(segments)-1] = segments[len(segments)-1] + ".mnk"
	fsPath := filepath.Join(segments...)

	contents, readErr := os.ReadFile(fsPath)
	if readErr != nil {
		return "", backtrace.Error(backtrace.CodeResourceError, nil, "unable to fetch code %q: %s", path.String(), readErr)
	}
	return string(contents), nil
}
