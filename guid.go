package guid

import (
	"database/sql/driver"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// FormatLen is the length of the canonical text form xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
const FormatLen = 36

// Guid is a 128-bit globally unique identifier. High and Low concatenated
// most-significant-first form the whole value, so High holds the first
// three text groups and Low the last two.
type Guid struct {
	High uint64
	Low  uint64
}

// Variant represents the GUID variant
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

var variantNames = [...]string{"NCS", "RFC4122", "Microsoft", "Future"}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return "Unknown"
}

// VersionRandom is the version nibble of randomly generated GUIDs
const VersionRandom = 4

// Nil is the nil GUID (all zeros)
var Nil Guid

// fromBytes packs 16 big-endian bytes into a Guid.
func fromBytes(b *[16]byte) Guid {
	return Guid{
		High: binary.BigEndian.Uint64(b[0:8]),
		Low:  binary.BigEndian.Uint64(b[8:16]),
	}
}

func (g Guid) bytes() (b [16]byte) {
	binary.BigEndian.PutUint64(b[0:8], g.High)
	binary.BigEndian.PutUint64(b[8:16], g.Low)
	return b
}

// Version returns the 4-bit version field of the GUID
func (g Guid) Version() byte {
	return byte(g.High>>12) & 0x0f
}

// Variant returns the variant of the GUID
func (g Guid) Variant() Variant {
	top := byte(g.Low >> 56)
	switch {
	case (top & 0x80) == 0x00:
		return VariantNCS
	case (top & 0xc0) == 0x80:
		return VariantRFC4122
	case (top & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// String returns the canonical string representation of the GUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (g Guid) String() string {
	var buf [FormatLen]byte
	encodeHex(buf[:], g)
	return string(buf[:])
}

// Format renders g into buf and returns buf for chaining. It never writes
// past len(buf): when buf holds fewer than FormatLen bytes the rendering is
// cut short and the returned slice is buf[:len(buf)].
func (g Guid) Format(buf []byte) []byte {
	var full [FormatLen]byte
	encodeHex(full[:], g)
	n := copy(buf, full[:])
	return buf[:n]
}

// AppendFormat appends the canonical text form of g to dst.
func (g Guid) AppendFormat(dst []byte) []byte {
	var buf [FormatLen]byte
	encodeHex(buf[:], g)
	return append(dst, buf[:]...)
}

// encodeHex encodes the GUID to its canonical lowercase hex representation
func encodeHex(dst []byte, g Guid) {
	b := g.bytes()
	hex.Encode(dst[0:8], b[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], b[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], b[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], b[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], b[10:16])
}

// IsNil returns true if the GUID is the nil GUID (all zeros)
func (g Guid) IsNil() bool {
	return g == Nil
}

// Equal returns true if g and other carry the same 128 bits
func (g Guid) Equal(other Guid) bool {
	return g == other
}

// MarshalText implements the encoding.TextMarshaler interface
func (g Guid) MarshalText() ([]byte, error) {
	return g.AppendFormat(make([]byte, 0, FormatLen)), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (g *Guid) UnmarshalText(data []byte) error {
	id, ok := tryParse(data)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, data)
	}
	*g = id
	return nil
}

// Scan implements the sql.Scanner interface. Only the text form is
// accepted; a NULL column leaves g untouched.
func (g *Guid) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		return g.UnmarshalText([]byte(src))
	case []byte:
		if len(src) == 0 {
			return nil
		}
		return g.UnmarshalText(src)
	default:
		return fmt.Errorf("guid: cannot scan type %T into Guid", src)
	}
}

// Value implements the driver.Valuer interface, storing the text form
func (g Guid) Value() (driver.Value, error) {
	return g.String(), nil
}
