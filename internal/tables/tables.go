package tables

import (
	model "auction-etl/internal/models"
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Output file names
const (
	ItemsFile      = "items.dat"
	BidsFile       = "bids.dat"
	CategoriesFile = "item_categories.dat"
	UsersFile      = "users.dat"
)

// RowSink receives the rows extracted from one input file
type RowSink interface {
	WriteItem(row model.ItemRow) error
	WriteBid(row model.BidRow) error
	WriteCategory(row model.CategoryRow) error
}

// Layout locates the four output tables inside a directory
type Layout struct {
	Dir string
}

// NewLayout returns a layout rooted at dir; an empty dir means the working directory
func NewLayout(dir string) Layout {
	if dir == "" {
		dir = "."
	}
	return Layout{Dir: dir}
}

// Path returns the location of a table file
func (l Layout) Path(name string) string {
	return filepath.Join(l.Dir, name)
}

// UsersPath returns the location of users.dat
func (l Layout) UsersPath() string {
	return l.Path(UsersFile)
}

// Reset deletes every output table. Tables that do not exist are ignored.
func (l Layout) Reset() error {
	for _, name := range []string{BidsFile, CategoriesFile, ItemsFile, UsersFile} {
		if err := os.Remove(l.Path(name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("reset %s: %w", name, err)
		}
	}
	return nil
}

// OpenAppend opens the items, bids and category tables for appending
func (l Layout) OpenAppend() (*Writers, error) {
	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("open tables: %w", err)
	}

	w := &Writers{}
	var err error
	if w.items, err = openTable(l.Path(ItemsFile)); err != nil {
		return nil, err
	}
	if w.bids, err = openTable(l.Path(BidsFile)); err != nil {
		w.items.close()
		return nil, err
	}
	if w.categories, err = openTable(l.Path(CategoriesFile)); err != nil {
		w.items.close()
		w.bids.close()
		return nil, err
	}
	return w, nil
}

// Writers is a RowSink backed by the table files
type Writers struct {
	items      *tableFile
	bids       *tableFile
	categories *tableFile
}

// WriteItem appends a row to items.dat
func (w *Writers) WriteItem(row model.ItemRow) error {
	return w.items.writeRow(row.Fields())
}

// WriteBid appends a row to bids.dat
func (w *Writers) WriteBid(row model.BidRow) error {
	return w.bids.writeRow(row.Fields())
}

// WriteCategory appends a row to item_categories.dat
func (w *Writers) WriteCategory(row model.CategoryRow) error {
	return w.categories.writeRow(row.Fields())
}

// Close flushes buffered rows and closes every table, returning the first error
func (w *Writers) Close() error {
	return errors.Join(w.items.close(), w.bids.close(), w.categories.close())
}

type tableFile struct {
	name string
	f    *os.File
	buf  *bufio.Writer
}

func openTable(path string) (*tableFile, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open table %s: %w", path, err)
	}
	return &tableFile{name: filepath.Base(path), f: f, buf: bufio.NewWriter(f)}, nil
}

func (t *tableFile) writeRow(fields []string) error {
	if _, err := t.buf.WriteString(strings.Join(fields, model.ColumnSeparator) + "\n"); err != nil {
		return fmt.Errorf("write %s: %w", t.name, err)
	}
	return nil
}

func (t *tableFile) close() error {
	flushErr := t.buf.Flush()
	closeErr := t.f.Close()
	if flushErr != nil {
		return fmt.Errorf("flush %s: %w", t.name, flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", t.name, closeErr)
	}
	return nil
}
