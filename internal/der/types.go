package der

import "fmt"

// Tag identifies the ASN.1 type of a TLV unit. The value is the raw tag
// octet as it appears on the wire; octets outside the recognized table
// are carried through unchanged and report Known() == false.
type Tag byte

// Recognized tag octets.
const (
	TagInteger          Tag = 0x02
	TagBitString        Tag = 0x03
	TagOctetString      Tag = 0x04
	TagNull             Tag = 0x05
	TagObjectIdentifier Tag = 0x06
	TagPrintableString  Tag = 0x13
	TagT61String        Tag = 0x14
	TagIA5String        Tag = 0x16
	TagUTCTime          Tag = 0x17
	TagSequence         Tag = 0x30
	TagSet              Tag = 0x31
	TagContext0         Tag = 0xA0
	TagContext1         Tag = 0xA1
)

// Constructed reports whether the tag's content is a nested sequence of
// TLV units rather than a primitive value.
func (t Tag) Constructed() bool {
	switch t {
	case TagSequence, TagSet, TagContext0, TagContext1:
		return true
	}
	return false
}

// Known reports whether the tag octet is in the recognized table.
// Unrecognized octets are decoded as opaque hex blobs, not rejected.
func (t Tag) Known() bool {
	switch t {
	case TagInteger, TagBitString, TagOctetString, TagNull,
		TagObjectIdentifier, TagPrintableString, TagT61String,
		TagIA5String, TagUTCTime, TagSequence, TagSet,
		TagContext0, TagContext1:
		return true
	}
	return false
}

// String returns the conventional ASN.1 name of the tag.
func (t Tag) String() string {
	switch t {
	case TagInteger:
		return "INTEGER"
	case TagBitString:
		return "BIT STRING"
	case TagOctetString:
		return "OCTET STRING"
	case TagNull:
		return "NULL"
	case TagObjectIdentifier:
		return "OBJECT IDENTIFIER"
	case TagPrintableString:
		return "PrintableString"
	case TagT61String:
		return "T61String"
	case TagIA5String:
		return "IA5String"
	case TagUTCTime:
		return "UTCTime"
	case TagSequence:
		return "SEQUENCE"
	case TagSet:
		return "SET"
	case TagContext0:
		return "[0]"
	case TagContext1:
		return "[1]"
	default:
		return fmt.Sprintf("UNKNOWN(0x%02x)", byte(t))
	}
}
