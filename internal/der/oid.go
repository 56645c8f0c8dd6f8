package der

import (
	"strconv"
	"strings"
)

// DecodeOID converts the raw content octets of an OBJECT IDENTIFIER
// into its dotted-decimal string, e.g.
// 2a 86 48 86 f7 0d 01 01 01 -> "1.2.840.113549.1.1.1".
//
// The octets are first segmented into components: every octet with its
// high bit clear terminates a component, together with any immediately
// preceding continuation octets (high bit set). The first component X
// encodes the two leading arcs as X/40 and X%40; each later component
// is the base-128 recombination of its 7-bit groups, most significant
// first.
func DecodeOID(content []byte) string {
	var components [][]byte
	var current []byte
	for _, b := range content {
		current = append(current, b)
		if b&0x80 == 0 {
			components = append(components, current)
			current = nil
		}
	}
	// Trailing continuation octets with no terminator form a dangling
	// component; keep its partial value rather than dropping bytes.
	if len(current) > 0 {
		components = append(components, current)
	}

	if len(components) == 0 {
		return ""
	}

	first := componentValue(components[0])
	arcs := []string{
		strconv.FormatUint(first/40, 10),
		strconv.FormatUint(first%40, 10),
	}
	for _, comp := range components[1:] {
		arcs = append(arcs, strconv.FormatUint(componentValue(comp), 10))
	}

	return strings.Join(arcs, ".")
}

// componentValue concatenates the low 7 bits of each octet, most
// significant first.
func componentValue(comp []byte) uint64 {
	var v uint64
	for _, b := range comp {
		v = v<<7 | uint64(b&0x7F)
	}
	return v
}
