package frontmatter

import (
	"bytes"
	"fmt"
)

// MarshalBlock renders the mapping back into metadata block syntax. Scalars
// emit as `key: value`, sequences as a `key:` line followed by indented
// `- item` lines. Parsing the output yields a mapping equal to the receiver.
// Nested mappings have no block syntax and are rejected.
func (m *Mapping) MarshalBlock() ([]byte, error) {
	var buf bytes.Buffer

	for _, key := range m.Keys() {
		value, _ := m.Get(key)
		switch value.Kind() {
		case KindScalar:
			if value.Scalar() == "" {
				fmt.Fprintf(&buf, "%s:\n", key)
				continue
			}
			fmt.Fprintf(&buf, "%s: %s\n", key, value.Scalar())
		case KindSequence:
			items := value.Sequence()
			if len(items) == 0 {
				fmt.Fprintf(&buf, "%s: []\n", key)
				continue
			}
			fmt.Fprintf(&buf, "%s:\n", key)
			for _, item := range items {
				fmt.Fprintf(&buf, "  - %s\n", item)
			}
		case KindMapping:
			return nil, fmt.Errorf("%w: key %q", ErrUnsupportedValue, key)
		}
	}

	return buf.Bytes(), nil
}

// Marshal reassembles a complete document: marker, metadata block, marker,
// body.
func (d *Document) Marshal() ([]byte, error) {
	block, err := d.Meta.MarshalBlock()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(Marker)
	buf.WriteByte('\n')
	buf.Write(block)
	buf.WriteString(Marker)
	buf.WriteByte('\n')
	buf.Write(d.Body)
	return buf.Bytes(), nil
}
