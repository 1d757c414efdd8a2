package estimate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vijayhardaha/estimate-generator-cli/internal/yamlutil"
)

// frontMatterFence delimits the metadata block at the top of a document.
const frontMatterFence = "---"

// splitFrontMatter separates the front-matter block from the Markdown
// body. A document without a front-matter block (or with an unclosed
// fence) yields an empty front-matter string and the full content as
// body.
func splitFrontMatter(content string) (front, body string) {
	lines := strings.Split(content, "\n")

	start := 0
	for start < len(lines) && strings.TrimSpace(strings.TrimPrefix(lines[start], "\uFEFF")) == "" {
		start++
	}
	if start >= len(lines) || strings.TrimSpace(lines[start]) != frontMatterFence {
		return "", content
	}

	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontMatterFence {
			return strings.Join(lines[start+1:i], "\n"), strings.Join(lines[i+1:], "\n")
		}
	}

	return "", content
}

// parseFrontMatter decodes the front-matter block into a flat string
// map. Scalar values of any YAML type are coerced to strings; nested
// structures are ignored. An empty block yields an empty map.
func parseFrontMatter(front string) (map[string]string, error) {
	fields := make(map[string]string)
	if strings.TrimSpace(front) == "" {
		return fields, nil
	}

	var raw map[string]any
	if err := yamlutil.Unmarshal([]byte(front), &raw); err != nil {
		return nil, fmt.Errorf("parsing front-matter: %w", err)
	}

	for key, value := range raw {
		if s, ok := stringify(value); ok {
			fields[key] = s
		}
	}

	return fields, nil
}

// Title returns the document's front-matter title, or an empty string
// when none is set. Used by callers that derive output filenames from
// the document.
func Title(markdown string) string {
	front, _ := splitFrontMatter(strings.ReplaceAll(markdown, "\r\n", "\n"))
	fields, err := parseFrontMatter(front)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(fields["title"])
}

// stringify coerces a scalar YAML value to its string form.
// Returns false for nested maps and sequences.
func stringify(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		return "", false
	}
}
