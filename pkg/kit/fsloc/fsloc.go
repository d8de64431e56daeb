// Package fsloc models filesystem locations as structured values instead
// of raw path strings: a location has a directory, a stem and an optional
// extension, and converts back and forth with path strings.
package fsloc

import (
	"path/filepath"
	"strings"
)

// Loc is a parsed filesystem location. Ext includes the leading dot; an
// empty Ext means the location looks like a directory or an extensionless
// file.
type Loc struct {
	Dir  string
	Stem string
	Ext  string
}

// Parse splits a path into its location parts.
func Parse(path string) Loc {
	clean := filepath.Clean(path)
	file := filepath.Base(clean)
	ext := filepath.Ext(file)
	return Loc{
		Dir:  filepath.Dir(clean),
		Stem: strings.TrimSuffix(file, ext),
		Ext:  ext,
	}
}

// String reassembles the path.
func (l Loc) String() string {
	return filepath.Join(l.Dir, l.Stem+l.Ext)
}

// IsAbs reports whether the location is anchored at a root.
func (l Loc) IsAbs() bool {
	return filepath.IsAbs(l.Dir)
}

// File returns the filename part (stem plus extension).
func (l Loc) File() string {
	return l.Stem + l.Ext
}

// WithExt returns a copy with the extension replaced. The dot is added
// when missing.
func (l Loc) WithExt(ext string) Loc {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	l.Ext = ext
	return l
}

// Join resolves a relative path against the location's directory.
func (l Loc) Join(rel string) Loc {
	return Parse(filepath.Join(l.Dir, rel))
}

// Resolve resolves target against base when target is relative; absolute
// targets pass through.
func Resolve(base, target string) string {
	if filepath.IsAbs(target) {
		return target
	}
	return filepath.Join(base, target)
}

// Stem derives a bare name from a path: the filename with any extension
// removed.
func Stem(path string) string {
	return Parse(path).Stem
}
