package fs

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/docindex"
)

// Ensure Source implements docindex.Source at compile time.
var _ docindex.Source = (*Source)(nil)

// Source reads documentation files from the local filesystem.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// Exists reports whether a regular file is present at path.
func (s *Source) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// FirstLine returns the first line of the file at path, without the line
// ending or a leading byte order mark. An empty file returns io.EOF.
func (s *Source) FirstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if line == "" {
		return "", io.EOF
	}

	line = strings.TrimPrefix(line, "\ufeff")
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadFile returns the content of the file at path.
func (s *Source) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
