package workspace

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const TextSuffix = ".txt"

var ErrNoTextFiles = errors.New("no .txt files found")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type TextFile struct {
	Name string
	Size int64
}

// Workspace resolves input and output files against a working directory.
type Workspace struct {
	dir string
}

func New(dir string) *Workspace {
	if dir == "" {
		dir = "."
	}
	return &Workspace{dir: dir}
}

func (w *Workspace) Dir() string {
	return w.dir
}

func (w *Workspace) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(w.dir, name)
}

// ListTextFiles returns the regular .txt files in the working directory,
// sorted by name.
func (w *Workspace) ListTextFiles() ([]TextFile, error) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", w.dir, err)
	}

	var files []TextFile
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.HasSuffix(entry.Name(), TextSuffix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			slog.Warn("Failed to stat file, skipping", "file", entry.Name(), "error", err)
			continue
		}
		files = append(files, TextFile{Name: entry.Name(), Size: info.Size()})
	}

	if len(files) == 0 {
		return nil, ErrNoTextFiles
	}

	slices.SortFunc(files, func(a, b TextFile) int {
		return strings.Compare(a.Name, b.Name)
	})

	return files, nil
}

// ReadText reads a whole file as UTF-8 text. A byte order mark selects
// UTF-8 or UTF-16 decoding and is stripped.
func (w *Workspace) ReadText(name string) (string, error) {
	return w.readText(name, false)
}

// ReadRawText is ReadText for content that is written back out: a UTF-8
// byte order mark stays at the start of the text.
func (w *Workspace) ReadRawText(name string) (string, error) {
	return w.readText(name, true)
}

func (w *Workspace) readText(name string, keepBOM bool) (string, error) {
	data, err := os.ReadFile(w.Path(name))
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	if !hasUTF16BOM(data) && !utf8.Valid(data) {
		return "", fmt.Errorf("failed to decode %s: invalid UTF-8", name)
	}

	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", name, err)
	}

	slog.Debug("File read", "file", name, "bytes", len(data))
	if keepBOM && bytes.HasPrefix(data, utf8BOM) {
		return string(utf8BOM) + string(decoded), nil
	}
	return string(decoded), nil
}

// WriteText writes content to name in a single pass, replacing any
// existing file.
func (w *Workspace) WriteText(name, content string) error {
	if err := os.WriteFile(w.Path(name), []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	slog.Debug("File written", "file", name, "bytes", len(content))
	return nil
}

func (w *Workspace) MkdirAll(name string) error {
	if err := os.MkdirAll(w.Path(name), 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", name, err)
	}
	return nil
}

func hasUTF16BOM(data []byte) bool {
	return bytes.HasPrefix(data, []byte{0xFE, 0xFF}) || bytes.HasPrefix(data, []byte{0xFF, 0xFE})
}
