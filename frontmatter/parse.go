package frontmatter

import (
	"strings"
)

// Marker is the delimiter line that opens and closes a metadata block.
const Marker = "---"

// Document is the result of splitting a source file into its metadata block
// and the remaining body. The body is opaque to this package.
type Document struct {
	Meta *Mapping
	Body []byte
}

// Parse splits source into a metadata mapping and body. The opening marker
// must be the very first line and the block must be closed by a second marker
// line; otherwise the document is rejected before any field line is
// interpreted, so delimiter problems never surface as field syntax errors.
func Parse(source []byte) (*Document, error) {
	lines := splitLines(source)
	if len(lines) == 0 || lines[0] != Marker {
		return nil, &MalformedDocumentError{Reason: "opening marker must be the first line"}
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if lines[i] == Marker {
			closing = i
			break
		}
	}
	if closing < 0 {
		return nil, &MalformedDocumentError{Reason: "closing marker not found"}
	}

	meta, err := parseBlock(lines[1:closing], 1)
	if err != nil {
		return nil, err
	}

	body := strings.Join(lines[closing+1:], "\n")
	return &Document{Meta: meta, Body: []byte(body)}, nil
}

// parseBlock interprets the metadata lines between the markers. offset is the
// number of document lines preceding the block, used for error positions.
func parseBlock(lines []string, offset int) (*Mapping, error) {
	meta := NewMapping()
	pending := ""

	for i, raw := range lines {
		lineNo := offset + i + 1
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}

		if item, ok := strings.CutPrefix(trimmed, "- "); ok {
			if pending == "" {
				return nil, &InvalidFieldSyntaxError{Line: lineNo, Text: trimmed}
			}
			appendItem(meta, pending, strings.TrimSpace(item))
			continue
		}

		key, value, ok := splitField(trimmed)
		if !ok {
			return nil, &InvalidFieldSyntaxError{Line: lineNo, Text: trimmed}
		}

		switch {
		case value == "":
			// A key with no value opens a possible sequence block. It stays
			// an empty scalar unless item lines follow.
			meta.Set(key, Scalar(""))
			pending = key
		case strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]"):
			meta.Set(key, Sequence(splitInline(value)...))
			pending = ""
		default:
			meta.Set(key, Scalar(value))
			pending = ""
		}
	}

	return meta, nil
}

func splitField(line string) (key, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:idx])
	if key == "" || strings.ContainsAny(key, " \t") {
		return "", "", false
	}
	return key, strings.TrimSpace(line[idx+1:]), true
}

func splitInline(value string) []string {
	inner := strings.TrimSpace(value[1 : len(value)-1])
	if inner == "" {
		return nil
	}
	parts := strings.Split(inner, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		items = append(items, strings.TrimSpace(part))
	}
	return items
}

func appendItem(meta *Mapping, key, item string) {
	current, _ := meta.Get(key)
	switch current.Kind() {
	case KindSequence:
		current.sequence = append(current.sequence, item)
		meta.Set(key, current)
	default:
		meta.Set(key, Sequence(item))
	}
}

// splitLines breaks source into lines, tolerating CRLF endings. A trailing
// newline does not produce a phantom empty line beyond what the source holds.
func splitLines(source []byte) []string {
	if len(source) == 0 {
		return nil
	}
	lines := strings.Split(string(source), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
