// Package lines reads statement exports and reassembles entries that wrap over
// several physical lines.
package lines

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// maxLineSize is the longest physical line accepted by Read.
const maxLineSize = 1024 * 1024

// StartsWithDate reports whether the line looks like the first line of a
// statement entry: its first token is made of three "/" separated parts.
//
// It does not check that the token is actually a date.
func StartsWithDate(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return false
	}
	return len(strings.Split(tokens[0], "/")) == 3
}

// Reassemble merges continuation lines into the entry they belong to.
//
// A line that starts with a date starts a new entry, any other line is appended
// to the current entry separated by a single space. Leading lines before the
// first date line are merged together into a first entry.
// The returned sequence is single pass.
func Reassemble(physical iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		var current string
		for line := range physical {
			line = strings.TrimRightFunc(line, unicode.IsSpace)
			switch {
			case StartsWithDate(line):
				if current != "" && !yield(strings.TrimRightFunc(current, unicode.IsSpace)) {
					return
				}
				current = line
			case current == "":
				current = line
			default:
				current += " " + line
			}
		}
		if current = strings.TrimRightFunc(current, unicode.IsSpace); current != "" {
			yield(current)
		}
	}
}

// Read reads all of r and returns its physical lines, without line terminators.
func Read(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read lines: %w", err)
	}
	return lines, nil
}

// ReadFile reads the physical lines of a statement export.
//
// Files with a ".pdf" extension are read as PDF documents and their plain text
// is used instead.
func ReadFile(path string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err := pdfText(path)
		if err != nil {
			return nil, err
		}
		return Read(strings.NewReader(text))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", path, err)
	}
	return Read(bytes.NewReader(data))
}

// pdfText extracts the plain text of every page of a PDF document, one page after the other.
func pdfText(path string) (text string, err error) {
	// the pdf library panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cannot read pdf %q: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("cannot open pdf %q: %w", path, err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		fonts := make(map[string]*pdf.Font)
		for _, name := range page.Fonts() {
			font := page.Font(name)
			fonts[name] = &font
		}
		content, err := page.GetPlainText(fonts)
		if err != nil {
			return "", fmt.Errorf("cannot extract text of page %d of %q: %w", i, path, err)
		}
		sb.WriteString(content)
		if !strings.HasSuffix(content, "\n") {
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}
