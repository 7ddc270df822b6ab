package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bastiangx/arrowword/pkg/words"
	"github.com/vmihailenco/msgpack/v5"
)

// FileFormat represents different word list file formats
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // one word per line, optional hint after a separator
	FormatTOML               // [[entry]] tables with word and hint keys
	FormatBinary             // msgpack array of entries
)

// FormatInfo describes a word list format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
}

var supportedFormats = []FormatInfo{
	{FormatText, "Plain text word list", []string{".txt", ".csv", ".lst"}},
	{FormatTOML, "TOML word list", []string{".toml"}},
	{FormatBinary, "Msgpack word list", []string{".bin", ".msgpack"}},
}

// hintSeparators split a text line into word and hint, first match wins
const hintSeparators = "\t;,"

func (f FileFormat) String() string {
	if info, ok := GetFormatInfo(f); ok {
		return info.Description
	}
	return "unknown"
}

// DetectFileFormat picks a format from the file extension.
func DetectFileFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, info := range supportedFormats {
		for _, e := range info.Extensions {
			if e == ext {
				return info.Format, nil
			}
		}
	}
	return FormatUnknown, fmt.Errorf("%w: %s", ErrUnknownFormat, filename)
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	for _, info := range supportedFormats {
		if info.Format == format {
			return info, true
		}
	}
	return FormatInfo{}, false
}

// ListSupportedFormats returns all supported formats
func ListSupportedFormats() []FormatInfo {
	out := make([]FormatInfo, len(supportedFormats))
	copy(out, supportedFormats)
	return out
}

// readText reads "word", "word<TAB>hint", "word;hint" or "word,hint" lines.
// Blank lines and lines starting with # are skipped.
func readText(r io.Reader) ([]words.Entry, error) {
	var entries []words.Entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, SplitHint(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading text word list: %w", err)
	}
	return entries, nil
}

// SplitHint cuts a text line at its first hint separator. A line without
// one is all word.
func SplitHint(line string) words.Entry {
	i := strings.IndexAny(line, hintSeparators)
	if i < 0 {
		return words.Entry{Text: strings.TrimSpace(line)}
	}
	return words.Entry{
		Text: strings.TrimSpace(line[:i]),
		Hint: strings.TrimSpace(line[i+1:]),
	}
}

type tomlList struct {
	Entry []words.Entry `toml:"entry"`
}

func readTOML(r io.Reader) ([]words.Entry, error) {
	var list tomlList
	if _, err := toml.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("decoding TOML word list: %w", err)
	}
	return list.Entry, nil
}

func readBinary(r io.Reader) ([]words.Entry, error) {
	var entries []words.Entry
	if err := msgpack.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding msgpack word list: %w", err)
	}
	return entries, nil
}

// WriteBinary encodes entries in the FormatBinary layout.
func WriteBinary(w io.Writer, entries []words.Entry) error {
	return msgpack.NewEncoder(w).Encode(entries)
}

// WriteText writes entries as tab separated lines.
func WriteText(w io.Writer, entries []words.Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		line := e.Text
		if e.Hint != "" {
			line += "\t" + e.Hint
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
