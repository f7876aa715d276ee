// File: internal/zipbundle/zipbundle.go
// Brief: Deterministic zip writer for generated project skeletons.

// Package zipbundle writes an ordered file set into a zip container with a
// caller-supplied frozen timestamp on every entry. Equal file sets written
// with an equal stamp produce byte-identical archives, which is what makes a
// download reproducible from a shared wizard URL.
package zipbundle

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"
)

// File is one archive entry. Entries are written in the order given; the
// writer never reorders them because emission order is part of the
// reproducibility contract upstream.
type File struct {
	Name string
	Body []byte
	Mode fs.FileMode
}

// ContentType is the MIME type download handlers should declare.
const ContentType = "application/zip"

// Write streams the file set into w as a zip archive. Every entry carries
// stamp (normalized to UTC) as its modification time.
func Write(w io.Writer, files []File, stamp time.Time) error {
	zw := zip.NewWriter(w)
	for _, f := range files {
		name := strings.TrimLeft(strings.TrimSpace(f.Name), "/")
		if name == "" {
			return fmt.Errorf("empty zip entry name")
		}
		if strings.Contains(name, "..") {
			return fmt.Errorf("zip entry name %q escapes the archive root", f.Name)
		}
		hdr := &zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: stamp.UTC(),
		}
		mode := f.Mode
		if mode == 0 {
			mode = 0o644
		}
		hdr.SetMode(mode)
		entry, err := zw.CreateHeader(hdr)
		if err != nil {
			return fmt.Errorf("create zip entry %s: %w", name, err)
		}
		if _, err := entry.Write(f.Body); err != nil {
			return fmt.Errorf("write zip entry %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize zip: %w", err)
	}
	return nil
}
