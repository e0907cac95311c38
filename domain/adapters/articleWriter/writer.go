// Package articleWriter renders accepted articles as a plain text report.
package articleWriter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"newsCrawler/domain/model"
)

// Separator closes every article block.
var Separator = strings.Repeat("=", 100)

// Write renders records in order, numbering them from 1.
func Write(w io.Writer, records []model.ArticleRecord) error {
	bw := bufio.NewWriter(w)
	for i, r := range records {
		if _, err := fmt.Fprintf(bw,
			"ARTICLE #%d\nURL: %s\nTitle: %s\nPublished: %s\nAuthor: %s\n\n%s\n\n%s\n\n",
			i+1, r.URL, r.Title, r.Published, r.Author, r.Content, Separator,
		); err != nil {
			return fmt.Errorf("failed to write article %d: %w", i+1, err)
		}
	}
	return bw.Flush()
}

// WriteFile writes records to path through a temporary file in the same
// directory, so readers see either the old file or the complete new one.
func WriteFile(path string, records []model.ArticleRecord) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, records); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}
