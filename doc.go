// Package guid provides 128-bit globally unique identifiers in the random
// (version 4) UUID layout, together with their canonical text form.
//
// A Guid is a plain value of two 64-bit halves. It is produced by a Generator
// from an entropy source, or parsed from text, and rendered back to text with
// String or Format. Two Guids are equal iff all 128 bits match.
//
// Basic Usage:
//
//	// Acquire the process-wide entropy source once at startup
//	entropy.Init()
//	defer entropy.Shutdown()
//
//	id := guid.New()
//	fmt.Println(id.String())
//
//	// Parse a GUID from its canonical form
//	id, ok := guid.TryParse("550e8400-e29b-41d4-a716-446655440000")
//	if !ok {
//	    log.Fatal("malformed GUID")
//	}
//
// Explicit Entropy:
//
//	// Bind a generator to a device you own, or to any io.Reader in tests
//	dev, err := entropy.Open()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Close()
//	gen := guid.NewGenerator(dev)
//	id, err := gen.New()
//
// Errors:
//
// Contract violations panic: calling New outside an entropy.Init /
// entropy.Shutdown pair, passing nil to TryParseBytes, or the operating
// system refusing its random source. Malformed text is an ordinary failure,
// reported by the boolean from TryParse or the error from ParseStrict.
//
// Text Format:
//
// The only serialized form is xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx:
// 36 characters, lowercase hex on output, either case on input. High holds
// the first three groups, Low the last two. The version nibble is the first
// digit of the third group and the variant bits are the top two bits of the
// fourth group.
package guid
