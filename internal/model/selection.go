package model

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileRef identifies one selected CSV export.
type FileRef struct {
	Path string
	Name string
	Size int64
}

// UploadSelection holds the two files required for an upload. Each slot is
// replaced wholesale on re-selection; both are cleared together by reset.
type UploadSelection struct {
	Exchange *FileRef
	PSP      *FileRef
}

// Complete reports whether both files have been selected.
func (s UploadSelection) Complete() bool {
	return s.Exchange != nil && s.PSP != nil
}

// NewFileRef stats path and returns a FileRef for it.
func NewFileRef(path string) (*FileRef, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("selecting file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("selecting file: %s is a directory", path)
	}
	return &FileRef{
		Path: path,
		Name: filepath.Base(path),
		Size: info.Size(),
	}, nil
}
