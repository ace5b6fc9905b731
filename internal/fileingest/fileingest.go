package fileingest

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileMeta describes one discovered category file. Path is the name as found
// on disk and is what readers must open.
type FileMeta struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
	Regular bool
}

// ReadFileContent returns the raw bytes of a category file.
func ReadFileContent(path string) ([]byte, error) {
	return os.ReadFile(path)
}

/*
DiscoverCategoryFiles lists the regular files directly under dir whose
extension is exactly ext. The match is case-sensitive, so "a.TXT" is not a
".txt" category. Sub-directories are not descended.

Results keep the order returned by the directory read.
*/
func DiscoverCategoryFiles(dir, ext string) ([]FileMeta, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []FileMeta
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ext {
			continue
		}
		meta, metaErr := ExtractFileMeta(filepath.Join(dir, e.Name()))
		if metaErr != nil || !meta.Regular {
			// Skip files we can't stat, but continue
			continue
		}
		files = append(files, meta)
	}
	return files, nil
}

// BaseName returns the file name of path with its extension stripped.
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ExtractFileMeta stats path, following symlinks.
func ExtractFileMeta(path string) (FileMeta, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileMeta{}, err
	}
	return FileMeta{
		Path:    path,
		Name:    info.Name(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Regular: info.Mode().IsRegular(),
	}, nil
}
