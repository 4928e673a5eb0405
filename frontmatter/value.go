package frontmatter

// Kind discriminates the shape of a metadata value. Consumers are expected to
// switch over all three kinds rather than probe values dynamically.
type Kind int

const (
	// KindScalar is a single trimmed string value.
	KindScalar Kind = iota
	// KindSequence is an ordered list of string items.
	KindSequence
	// KindMapping is a nested key/value block.
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is the tagged variant stored under each metadata key. Exactly one of
// the three payloads is populated, selected by Kind.
type Value struct {
	kind     Kind
	scalar   string
	sequence []string
	mapping  *Mapping
}

// Scalar wraps a plain string value.
func Scalar(value string) Value {
	return Value{kind: KindScalar, scalar: value}
}

// Sequence wraps an ordered list of items.
func Sequence(items ...string) Value {
	return Value{kind: KindSequence, sequence: append([]string(nil), items...)}
}

// Nested wraps a child mapping.
func Nested(mapping *Mapping) Value {
	if mapping == nil {
		mapping = NewMapping()
	}
	return Value{kind: KindMapping, mapping: mapping}
}

// Kind reports which payload the value carries.
func (v Value) Kind() Kind { return v.kind }

// Scalar returns the string payload. It is empty for non-scalar values.
func (v Value) Scalar() string { return v.scalar }

// Sequence returns a copy of the item list. It is nil for non-sequence values.
func (v Value) Sequence() []string {
	if v.kind != KindSequence {
		return nil
	}
	return append([]string(nil), v.sequence...)
}

// Mapping returns the nested mapping, or nil for non-mapping values.
func (v Value) Mapping() *Mapping {
	if v.kind != KindMapping {
		return nil
	}
	return v.mapping
}

// Equal reports deep equality across kind and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindScalar:
		return v.scalar == other.scalar
	case KindSequence:
		if len(v.sequence) != len(other.sequence) {
			return false
		}
		for i := range v.sequence {
			if v.sequence[i] != other.sequence[i] {
				return false
			}
		}
		return true
	case KindMapping:
		return v.mapping.Equal(other.mapping)
	default:
		return false
	}
}

// Mapping is an insertion-ordered collection of keyed values. Order is
// significant so a parsed block can be emitted back in its original shape.
type Mapping struct {
	keys   []string
	values map[string]Value
}

// NewMapping returns an empty mapping ready for use.
func NewMapping() *Mapping {
	return &Mapping{values: map[string]Value{}}
}

// Set stores value under key. Setting an existing key replaces its value but
// keeps the key's original position.
func (m *Mapping) Set(key string, value Value) {
	if m.values == nil {
		m.values = map[string]Value{}
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key and whether it exists.
func (m *Mapping) Get(key string) (Value, bool) {
	if m == nil || m.values == nil {
		return Value{}, false
	}
	value, ok := m.values[key]
	return value, ok
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Len returns the number of stored keys.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Equal reports whether both mappings hold the same keys, in the same order,
// with equal values.
func (m *Mapping) Equal(other *Mapping) bool {
	if m == nil || other == nil {
		return m.Len() == 0 && other.Len() == 0
	}
	if len(m.keys) != len(other.keys) {
		return false
	}
	for i, key := range m.keys {
		if other.keys[i] != key {
			return false
		}
		left := m.values[key]
		right, ok := other.values[key]
		if !ok || !left.Equal(right) {
			return false
		}
	}
	return true
}
