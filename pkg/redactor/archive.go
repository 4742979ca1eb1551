package redactor

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// extractEntry reads a single entry out of a ZIP archive. Returns the entry's
// header so a later rewrite can reuse its name, compression method and
// timestamp. A missing archive or entry yields a *NotFoundError.
func extractEntry(archivePath, entryName string) (zip.FileHeader, []byte, error) {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zip.FileHeader{}, nil, NewNotFoundError(archivePath, "")
		}
		return zip.FileHeader{}, nil, NewDocumentError("open", archivePath, err)
	}
	defer reader.Close()

	for _, file := range reader.File {
		if file.Name != entryName {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return zip.FileHeader{}, nil, NewDocumentError("extract", archivePath, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return zip.FileHeader{}, nil, NewDocumentError("extract", archivePath, err)
		}
		return file.FileHeader, data, nil
	}

	return zip.FileHeader{}, nil, NewNotFoundError(archivePath, entryName)
}

// replaceEntry rewrites the archive with newData under the given entry's
// header, leaving every other entry and the archive comment untouched.
//
// ZIP containers cannot update a member in place, so the archive is rebuilt
// into a temporary file in the same directory (keeping the final rename on
// one filesystem, atomic where the platform allows). Untouched entries are
// copied raw, compressed bytes and metadata verbatim; the replacement entry
// is written in its original position under its original name, method and
// timestamp.
func replaceEntry(archivePath string, header zip.FileHeader, newData []byte) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return NewDocumentError("rewrite", archivePath, err)
	}
	defer reader.Close()

	tmp, err := os.CreateTemp(filepath.Dir(archivePath), ".docx-redactor-*")
	if err != nil {
		return NewDocumentError("rewrite", archivePath, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if tmpName != "" {
			os.Remove(tmpName)
		}
	}()

	if err := rebuildArchive(tmp, &reader.Reader, header, newData); err != nil {
		tmp.Close()
		return NewDocumentError("rewrite", archivePath, err)
	}
	if err := tmp.Close(); err != nil {
		return NewDocumentError("rewrite", archivePath, err)
	}

	// The reader holds the original open; release it before the rename for
	// platforms that refuse to replace an open file.
	reader.Close()

	if err := os.Rename(tmpName, archivePath); err != nil {
		return NewDocumentError("rename", archivePath, err)
	}
	tmpName = ""
	return nil
}

func rebuildArchive(dst io.Writer, src *zip.Reader, header zip.FileHeader, newData []byte) error {
	w := zip.NewWriter(dst)

	if err := w.SetComment(src.Comment); err != nil {
		return fmt.Errorf("failed to preserve archive comment: %w", err)
	}

	replaced := false
	for _, file := range src.File {
		if file.Name == header.Name {
			if err := writeEntry(w, header, newData); err != nil {
				return err
			}
			replaced = true
			continue
		}
		if err := w.Copy(file); err != nil {
			return fmt.Errorf("failed to copy entry %s: %w", file.Name, err)
		}
	}
	if !replaced {
		if err := writeEntry(w, header, newData); err != nil {
			return err
		}
	}

	return w.Close()
}

func writeEntry(w *zip.Writer, header zip.FileHeader, data []byte) error {
	// Fresh header: sizes and CRC of the old payload must not carry over.
	fw, err := w.CreateHeader(&zip.FileHeader{
		Name:     header.Name,
		Comment:  header.Comment,
		Method:   header.Method,
		Modified: header.Modified,
	})
	if err != nil {
		return fmt.Errorf("failed to create entry %s: %w", header.Name, err)
	}
	if _, err := fw.Write(data); err != nil {
		return fmt.Errorf("failed to write entry %s: %w", header.Name, err)
	}
	return nil
}
