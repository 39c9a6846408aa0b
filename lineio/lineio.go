// Package lineio moves text one line at a time between files, standard
// streams and memory.
package lineio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrClosed is returned by writers used after Close.
var ErrClosed = errors.New("line writer closed")

// Reader produces an ordered sequence of lines. ReadLine returns io.EOF once
// the sequence is exhausted. Lines carry no trailing newline.
type Reader interface {
	ReadLine() (string, error)
}

// Writer accepts one line at a time. A nil error reports success.
type Writer interface {
	WriteLine(line string) error
}

// --- Stream providers ---

type streamReader struct {
	sc *bufio.Scanner
}

// NewReader reads lines from r. Trailing "\r" is dropped.
func NewReader(r io.Reader) Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &streamReader{sc: sc}
}

func (s *streamReader) ReadLine() (string, error) {
	if s.sc.Scan() {
		return strings.TrimSuffix(s.sc.Text(), "\r"), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

type streamWriter struct {
	w io.Writer
}

// NewWriter writes each line to w followed by "\n".
func NewWriter(w io.Writer) Writer {
	return &streamWriter{w: w}
}

func (s *streamWriter) WriteLine(line string) error {
	_, err := io.WriteString(s.w, line+"\n")
	return err
}

// Stdin returns a Reader over os.Stdin.
func Stdin() Reader { return NewReader(os.Stdin) }

// Stdout returns a Writer over os.Stdout.
func Stdout() Writer { return NewWriter(os.Stdout) }

// --- File providers ---

// FileReader holds the lines of a file loaded by [OpenFile].
type FileReader struct {
	path  string
	lines []string
	next  int
}

// OpenFile reads every line of path up front. Trailing whitespace is trimmed
// from each line.
func OpenFile(path string) (*FileReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := &FileReader{path: path}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		r.lines = append(r.lines, strings.TrimRight(sc.Text(), " \t\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return r, nil
}

// Path returns the file path.
func (r *FileReader) Path() string { return r.path }

// Remaining returns the number of unread lines.
func (r *FileReader) Remaining() int { return len(r.lines) - r.next }

func (r *FileReader) ReadLine() (string, error) {
	if r.next >= len(r.lines) {
		return "", io.EOF
	}
	line := r.lines[r.next]
	r.next++
	return line, nil
}

// FileWriter writes lines to a file, flushing after every line.
type FileWriter struct {
	path string
	f    *os.File
	bw   *bufio.Writer
}

// CreateFile creates or truncates path.
func CreateFile(path string) (*FileWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &FileWriter{path: path, f: f, bw: bufio.NewWriter(f)}, nil
}

// Path returns the file path.
func (w *FileWriter) Path() string { return w.path }

func (w *FileWriter) WriteLine(line string) error {
	if w.f == nil {
		return fmt.Errorf("%w: %s", ErrClosed, w.path)
	}
	if _, err := w.bw.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("write %s: %w", w.path, err)
	}
	if err := w.bw.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", w.path, err)
	}
	return nil
}

// Close closes the file. Further writes fail with [ErrClosed].
func (w *FileWriter) Close() error {
	if w.f == nil {
		return nil
	}
	err := w.f.Close()
	w.f = nil
	return err
}

// --- Memory provider ---

// Buffer is an in-memory Reader and Writer. Lines are read in the order they
// were written.
type Buffer struct {
	lines []string
	next  int
}

// NewBuffer returns a Buffer preloaded with lines.
func NewBuffer(lines ...string) *Buffer {
	return &Buffer{lines: append([]string(nil), lines...)}
}

func (b *Buffer) WriteLine(line string) error {
	b.lines = append(b.lines, line)
	return nil
}

func (b *Buffer) ReadLine() (string, error) {
	if b.next >= len(b.lines) {
		return "", io.EOF
	}
	line := b.lines[b.next]
	b.next++
	return line, nil
}

// Lines returns every line written so far, read or not.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// --- Helpers ---

// ReadAll drains r.
func ReadAll(r Reader) ([]string, error) {
	var lines []string
	for {
		line, err := r.ReadLine()
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
		lines = append(lines, line)
	}
}

// WriteAll writes lines to w, stopping at the first error.
func WriteAll(w Writer, lines []string) error {
	for _, line := range lines {
		if err := w.WriteLine(line); err != nil {
			return err
		}
	}
	return nil
}

// ReadInt reads one line and parses it as a base-10 integer.
func ReadInt(r Reader) (int, error) {
	line, err := r.ReadLine()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("read int: %w", err)
	}
	return n, nil
}

// ReadFields reads one line and splits it on runs of whitespace.
func ReadFields(r Reader) ([]string, error) {
	line, err := r.ReadLine()
	if err != nil {
		return nil, err
	}
	return strings.Fields(line), nil
}

// ReadChars reads one line and splits it into single-character strings.
func ReadChars(r Reader) ([]string, error) {
	line, err := r.ReadLine()
	if err != nil {
		return nil, err
	}
	return strings.Split(line, ""), nil
}
