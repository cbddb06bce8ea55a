package model

// HeaderKind classifies a CSV column by the shape of its data
type HeaderKind int

const (
	// KindVarying means the column carries at least two distinct values
	KindVarying HeaderKind = iota

	// KindConstant means every row repeats the first value
	KindConstant

	// KindConstantZero means every row parses to exactly zero
	KindConstantZero
)

// String returns the display name for a header kind
func (hk HeaderKind) String() string {
	switch hk {
	case KindVarying:
		return "Varying"
	case KindConstant:
		return "Constant"
	case KindConstantZero:
		return "Zero"
	default:
		return "Unknown"
	}
}

// Header describes a single CSV column. Group and Key are derived from the
// raw name by stripping the configured vendor prefix and splitting on "::";
// headers without a group separator keep an empty Group.
type Header struct {
	Name  string // raw header cell as it appears in the file
	Group string
	Key   string
	Index int
	Kind  HeaderKind
}

// DisplayName returns the short name shown in the header panel
func (h Header) DisplayName() string {
	if h.Key != "" {
		return h.Key
	}
	return h.Name
}

// QualifiedName returns "Group / Key" for grouped headers and the key alone
// for ungrouped ones
func (h Header) QualifiedName() string {
	if h.Group == "" {
		return h.DisplayName()
	}
	return h.Group + " / " + h.DisplayName()
}

// HeaderGroup is an ordered bucket of headers sharing the same group name
type HeaderGroup struct {
	Name    string
	Headers []Header
}
