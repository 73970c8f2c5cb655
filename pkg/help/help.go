// Package help serves the built-in documentation topics. Topics are
// markdown files compiled into the binary and rendered for the terminal
// with glamour, falling back to plain text when rendering is not
// possible.
package help

import (
	"embed"
	"io/fs"
	"sort"
	"strings"

	"github.com/hyprkit/hyprkit/pkg/errors"
)

//go:embed topics/*.md
var topicsFS embed.FS

// Topic is one documentation page.
type Topic struct {
	Name    string
	Content string
}

// Topics returns all built-in topics sorted by name.
func Topics() ([]Topic, error) {
	entries, err := fs.ReadDir(topicsFS, "topics")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "embedded topics are unreadable")
	}

	var topics []Topic
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".md")
		content, err := fs.ReadFile(topicsFS, "topics/"+entry.Name())
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "cannot read topic %s", name)
		}
		topics = append(topics, Topic{Name: name, Content: string(content)})
	}

	sort.Slice(topics, func(i, j int) bool { return topics[i].Name < topics[j].Name })
	return topics, nil
}

// Lookup returns the topic with the given name.
func Lookup(name string) (Topic, error) {
	topics, err := Topics()
	if err != nil {
		return Topic{}, err
	}
	for _, topic := range topics {
		if topic.Name == name {
			return topic, nil
		}
	}
	return Topic{}, errors.Newf(errors.ErrInvalidInput, "no help topic named %q", name)
}
