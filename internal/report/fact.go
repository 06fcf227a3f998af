package report

import "unicode/utf8"

// nestedIndent prefixes the labels of per-device facts
const nestedIndent = "  "

// Fact is one line of the report. A nil Value marks a section header.
type Fact struct {
	Label  string
	Value  *string
	Nested bool
}

// NewFact creates a top-level fact with a value
func NewFact(label, value string) Fact {
	return Fact{Label: label, Value: &value}
}

// NestedFact creates an indented fact with a value
func NestedFact(label, value string) Fact {
	return Fact{Label: label, Value: &value, Nested: true}
}

// Header creates an indented section header without a value
func Header(label string) Fact {
	return Fact{Label: label, Nested: true}
}

// DisplayLabel is the label as printed, including indentation
func (f Fact) DisplayLabel() string {
	if f.Nested {
		return nestedIndent + f.Label
	}
	return f.Label
}

// labelWidth returns the widest display label
func labelWidth(facts []Fact) int {
	width := 0
	for _, f := range facts {
		if n := utf8.RuneCountInString(f.DisplayLabel()); n > width {
			width = n
		}
	}
	return width
}
