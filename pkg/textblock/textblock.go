package textblock

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hyprkit/hyprkit/pkg/errors"
	"github.com/hyprkit/hyprkit/pkg/logging"
	"github.com/hyprkit/hyprkit/pkg/types"
)

// Delimiter templates. The name is embedded so the lines stay exact,
// grep-matchable strings.
const (
	beginTemplate = "# >>> hyprkit:%s >>>"
	endTemplate   = "# <<< hyprkit:%s <<<"
)

// BeginLine returns the exact begin delimiter for a block name.
func BeginLine(name string) string {
	return fmt.Sprintf(beginTemplate, name)
}

// EndLine returns the exact end delimiter for a block name.
func EndLine(name string) string {
	return fmt.Sprintf(endTemplate, name)
}

// Editor edits marker blocks in text files through a types.FS.
type Editor struct {
	fs types.FS
}

// New creates an Editor over the given filesystem.
func New(fs types.FS) *Editor {
	return &Editor{fs: fs}
}

var log = logging.GetLogger("textblock")

// Upsert inserts or replaces the block named name in file. An existing
// block is replaced at its current position; a new block is appended at
// end-of-file preceded by a blank line. Re-running with the same body is
// a byte-level no-op.
func (e *Editor) Upsert(file, name, body string) error {
	content, err := e.fs.ReadFile(file)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", file)
	}

	begin := BeginLine(name)
	end := EndLine(name)
	block := append([]string{begin}, bodyLines(body)...)
	block = append(block, end)

	var out []string
	replaced := false
	state := stateOutside
	for _, line := range splitLines(content) {
		switch state {
		case stateOutside:
			if line == begin {
				state = stateInside
				out = append(out, block...)
				replaced = true
				continue
			}
			out = append(out, line)
		case stateInside:
			// body lines are discarded; the end line closes the block
			if line == end {
				state = stateOutside
			}
		}
	}

	if !replaced {
		if len(out) > 0 {
			out = append(out, "")
		}
		out = append(out, block...)
	}

	newContent := joinLines(out)
	if string(content) == newContent {
		log.Debug().Str("file", file).Str("block", name).Msg("block already up to date")
		return nil
	}

	log.Info().Str("file", file).Str("block", name).Bool("replaced", replaced).Msg("upserting block")
	return e.writeAtomic(file, []byte(newContent))
}

// Remove deletes the block named name from file: the begin line, every
// body line, and the end line. A missing file or absent block is a no-op.
func (e *Editor) Remove(file, name string) error {
	content, err := e.fs.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", file)
	}

	begin := BeginLine(name)
	end := EndLine(name)

	var out []string
	removed := false
	state := stateOutside
	for _, line := range splitLines(content) {
		switch state {
		case stateOutside:
			if line == begin {
				state = stateInside
				removed = true
				continue
			}
			out = append(out, line)
		case stateInside:
			if line == end {
				state = stateOutside
			}
		}
	}

	if !removed {
		return nil
	}

	log.Info().Str("file", file).Str("block", name).Msg("removing block")
	return e.writeAtomic(file, []byte(joinLines(out)))
}

// Has reports whether a block named name exists in file.
func (e *Editor) Has(file, name string) (bool, error) {
	content, err := e.fs.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", file)
	}
	begin := BeginLine(name)
	for _, line := range splitLines(content) {
		if line == begin {
			return true, nil
		}
	}
	return false, nil
}

// RemoveLinesContaining deletes every line of file containing the exact
// substring. Legacy mechanism, see the package comment. A missing file
// is a no-op.
func (e *Editor) RemoveLinesContaining(file, substring string) error {
	content, err := e.fs.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", file)
	}

	var out []string
	removed := 0
	for _, line := range splitLines(content) {
		if strings.Contains(line, substring) {
			removed++
			continue
		}
		out = append(out, line)
	}

	if removed == 0 {
		return nil
	}

	log.Info().Str("file", file).Str("substring", substring).Int("lines", removed).Msg("removing matching lines")
	return e.writeAtomic(file, []byte(joinLines(out)))
}

// writeAtomic writes data to a temporary file next to target and renames
// it into place, so the target is never observed truncated.
func (e *Editor) writeAtomic(target string, data []byte) error {
	tmp := filepath.Join(filepath.Dir(target), "."+filepath.Base(target)+".hyprkit-tmp")
	if err := e.fs.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrBlockEdit, "cannot write temporary file for %s", target)
	}
	if err := e.fs.Rename(tmp, target); err != nil {
		// best effort cleanup, the original file is untouched
		_ = e.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrBlockEdit, "cannot replace %s", target)
	}
	return nil
}

// scanner states
const (
	stateOutside = iota
	stateInside
)

// splitLines splits file content into lines without trailing newlines.
// An empty file yields no lines.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	s := strings.TrimSuffix(string(content), "\n")
	return strings.Split(s, "\n")
}

// joinLines joins lines back into file content with a trailing newline.
func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// bodyLines splits a block body into lines, tolerating a trailing newline.
func bodyLines(body string) []string {
	if body == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(body, "\n"), "\n")
}
