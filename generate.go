package guid

import (
	"fmt"
	"io"

	"github.com/krotik/common/errorutil"

	"github.com/Lzww0608/guid/entropy"
)

const (
	versionMask = 0x000000000000f000
	versionBits = VersionRandom << 12
	variantMask = 0xc000000000000000
	variantBits = 0x8000000000000000
)

// Generator produces random (version 4) GUIDs from an explicit entropy source.
type Generator struct {
	randReader io.Reader
}

// NewGenerator creates a generator reading from r. Pass an *entropy.Device
// in production; tests may pass any deterministic reader.
func NewGenerator(r io.Reader) *Generator {
	return &Generator{
		randReader: r,
	}
}

// New fills all 128 bits from the entropy source, then tags the result as
// version 4 with the RFC 4122 variant. Concurrent use is as safe as the
// underlying reader.
func (g *Generator) New() (Guid, error) {
	var b [entropy.BlockSize]byte
	if _, err := io.ReadFull(g.randReader, b[:]); err != nil {
		return Nil, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return fixup(fromBytes(&b)), nil
}

// fixup sets the version nibble (bits 12..15 of High) to 4 and the top two
// bits of Low to the variant pattern 10.
func fixup(g Guid) Guid {
	g.High = g.High&^versionMask | versionBits
	g.Low = g.Low&^variantMask | variantBits
	return g
}

// Must is a helper that wraps a call to a function returning (Guid, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = guid.Must(generator.New())
func Must(g Guid, err error) Guid {
	if err != nil {
		panic(err)
	}
	return g
}

// New generates a GUID from the process-wide entropy device. It panics if
// entropy.Init has not been called (or entropy.Shutdown already has), and if
// the operating system fails to supply random bytes.
func New() Guid {
	errorutil.AssertTrue(entropy.Ready(), errUninitialized)
	g, err := NewGenerator(entropy.Default()).New()
	errorutil.AssertOk(err)
	return g
}
