package prompt

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter parses the leading "---" YAML block of a prompt file into
// a flat string map. Scalar values are stringified; nested values are
// rendered in YAML flow form. Any read or parse problem yields an empty
// map — frontmatter is advisory, never required.
func Frontmatter(path string) map[string]string {
	fields := make(map[string]string)

	data, err := os.ReadFile(path)
	if err != nil {
		return fields
	}

	text := string(data)
	if !strings.HasPrefix(text, "---") {
		return fields
	}

	// The closing fence must be a line holding exactly "---"; a line
	// that merely starts with "---" does not terminate the block.
	lines := strings.Split(text, "\n")
	var block []string
	closed := false
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "---" {
			closed = true
			break
		}
		block = append(block, line)
	}
	if !closed {
		return fields
	}

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(strings.Join(block, "\n")), &raw); err != nil {
		return fields
	}

	for k, v := range raw {
		switch val := v.(type) {
		case nil:
			fields[k] = ""
		case string:
			fields[k] = val
		default:
			fields[k] = fmt.Sprintf("%v", val)
		}
	}

	return fields
}
