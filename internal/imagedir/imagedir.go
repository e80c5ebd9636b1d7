package imagedir

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Dir provides access to screenshot images under a fixed root. The root is
// resolved once (absolute, symlinks evaluated) and every path handed back
// out or accepted is kept inside it.
type Dir struct {
	absRoot string
}

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// Open binds a Dir to an existing directory.
func Open(root string) (*Dir, error) {
	if root == "" {
		return nil, errors.New("imagedir: empty root")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errors.New("imagedir: root is not a directory")
	}
	return &Dir{absRoot: abs}, nil
}

// Root returns the absolute root directory.
func (d *Dir) Root() string { return d.absRoot }

// List returns the root-relative paths of all image files under the root,
// recursively, in sorted order.
func (d *Dir) List() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(d.absRoot, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if !imageExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			return nil
		}
		rel, err := filepath.Rel(d.absRoot, path)
		if err != nil {
			return err
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// Read returns the contents of one image file, addressed relative to the
// root. Paths escaping the root are rejected.
func (d *Dir) Read(relPath string) ([]byte, error) {
	p, err := d.resolve(relPath)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(p)
}

func (d *Dir) resolve(relPath string) (string, error) {
	if relPath == "" {
		return "", errors.New("imagedir: empty path")
	}
	clean := filepath.Clean(relPath)
	if filepath.IsAbs(clean) || clean == ".." ||
		strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", errors.New("imagedir: path escapes root")
	}
	joined := filepath.Join(d.absRoot, clean)
	resolved, err := filepath.EvalSymlinks(joined)
	if err != nil {
		return "", err
	}
	root := d.absRoot + string(filepath.Separator)
	if resolved != d.absRoot && !strings.HasPrefix(resolved+string(filepath.Separator), root) {
		return "", errors.New("imagedir: path escapes root")
	}
	return resolved, nil
}
