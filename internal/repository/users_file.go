package repository

import (
	model "auction-etl/internal/models"
	"auction-etl/utils"
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// FormatUser renders a directory entry as UserID|Rating|Location|Country
func FormatUser(u model.User) string {
	return strings.Join([]string{u.UserID, u.Rating, u.Location, u.Country}, model.ColumnSeparator)
}

// ParseUser reads a users.dat row. Missing trailing fields are empty; extra separators stay in Country.
func ParseUser(line string) model.User {
	fields := strings.SplitN(line, model.ColumnSeparator, 4)
	for len(fields) < 4 {
		fields = append(fields, model.EmptySpot)
	}
	return model.User{UserID: fields[0], Rating: fields[1], Location: fields[2], Country: fields[3]}
}

// ReadDirectory loads every non-blank row of r into a new directory
func ReadDirectory(r io.Reader) (*MemoryDirectory, error) {
	dir := NewMemoryDirectory()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		dir.UpsertBidder(ParseUser(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read user directory: %w", err)
	}
	return dir, nil
}

// LoadDirectory reads a persisted users.dat. A missing or unreadable file yields an empty directory.
func LoadDirectory(path string) *MemoryDirectory {
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			utils.Warn("user directory unreadable, starting empty", map[string]any{"path": path, "error": err.Error()})
		}
		return NewMemoryDirectory()
	}
	defer f.Close()

	dir, err := ReadDirectory(f)
	if err != nil {
		utils.Warn("user directory unreadable, starting empty", map[string]any{"path": path, "error": err.Error()})
		return NewMemoryDirectory()
	}
	return dir
}

// WriteDirectory writes one row per user in directory order
func WriteDirectory(w io.Writer, dir UserDirectory) error {
	bw := bufio.NewWriter(w)
	for _, u := range dir.ListUsers() {
		if _, err := bw.WriteString(FormatUser(u) + "\n"); err != nil {
			return fmt.Errorf("write user %s: %w", u.UserID, err)
		}
	}
	return bw.Flush()
}

// SaveDirectory overwrites path with the full directory
func SaveDirectory(path string, dir UserDirectory) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save user directory: %w", err)
	}

	if err := WriteDirectory(f, dir); err != nil {
		f.Close()
		return fmt.Errorf("save user directory: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save user directory: %w", err)
	}
	return nil
}
