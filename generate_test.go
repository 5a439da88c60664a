package guid

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io"
	mrand "math/rand"
	"regexp"
	"testing"
	"testing/iotest"

	"github.com/Lzww0608/guid/entropy"
)

var canonical = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func newSeededReader(seed int64) io.Reader {
	return mrand.New(mrand.NewSource(seed))
}

func TestGenerator_New(t *testing.T) {
	gen := NewGenerator(rand.Reader)

	g, err := gen.New()
	if err != nil {
		t.Fatalf("Generator.New() error = %v", err)
	}

	if g.IsNil() {
		t.Error("Generator.New() returned nil Guid")
	}

	if g.Version() != VersionRandom {
		t.Errorf("Generator.New() version = %v, want %v", g.Version(), VersionRandom)
	}

	if g.Variant() != VariantRFC4122 {
		t.Errorf("Generator.New() variant = %v, want %v", g.Variant(), VariantRFC4122)
	}
}

func TestGenerator_FixedBits(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			name:  "all zero entropy",
			input: make([]byte, 16),
			want:  "00000000-0000-4000-8000-000000000000",
		},
		{
			name:  "all one entropy",
			input: bytes.Repeat([]byte{0xff}, 16),
			want:  "ffffffff-ffff-4fff-bfff-ffffffffffff",
		},
		{
			name:  "counting entropy",
			input: []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f},
			want:  "00010203-0405-4607-8809-0a0b0c0d0e0f",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGenerator(bytes.NewReader(tt.input)).New()
			if err != nil {
				t.Fatalf("Generator.New() error = %v", err)
			}
			if got := g.String(); got != tt.want {
				t.Errorf("Generator.New() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerator_VersionVariantInvariant(t *testing.T) {
	gen := NewGenerator(newSeededReader(42))

	for i := 0; i < 10000; i++ {
		g, err := gen.New()
		if err != nil {
			t.Fatalf("Generator.New() error = %v", err)
		}
		if v := (g.High >> 12) & 0xf; v != 4 {
			t.Fatalf("version field = %d for %v, want 4", v, g)
		}
		if v := g.Low >> 62; v != 0x2 {
			t.Fatalf("variant bits = %02b for %v, want 10", v, g)
		}
		if s := g.String(); !canonical.MatchString(s) {
			t.Fatalf("String() = %q does not match the canonical form", s)
		}
	}
}

func TestGenerator_Uniqueness(t *testing.T) {
	gen := NewGenerator(rand.Reader)
	const count = 10000
	seen := make(map[Guid]struct{}, count)

	for i := 0; i < count; i++ {
		g, err := gen.New()
		if err != nil {
			t.Fatalf("Generator.New() error = %v", err)
		}
		if _, ok := seen[g]; ok {
			t.Fatalf("Generated duplicate Guid %v at index %d", g, i)
		}
		seen[g] = struct{}{}
	}
}

func TestGenerator_EntropyErrors(t *testing.T) {
	tests := []struct {
		name   string
		reader io.Reader
	}{
		{"failing reader", iotest.ErrReader(errors.New("device gone"))},
		{"short reader", bytes.NewReader(make([]byte, 10))},
		{"empty reader", bytes.NewReader(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGenerator(tt.reader).New()
			if !errors.Is(err, ErrEntropy) {
				t.Fatalf("Generator.New() error = %v, want ErrEntropy", err)
			}
			if !g.IsNil() {
				t.Errorf("Generator.New() = %v on error, want Nil", g)
			}
		})
	}
}

func TestMust(t *testing.T) {
	g := Must(NewGenerator(rand.Reader).New())
	if g.IsNil() {
		t.Error("Must() returned nil Guid")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("Must() did not panic on error")
		}
	}()
	Must(NewGenerator(bytes.NewReader(nil)).New())
}

func TestNew_Lifecycle(t *testing.T) {
	if entropy.Ready() {
		entropy.Shutdown()
	}

	assertPanics(t, "New() before Init", func() { New() })

	entropy.Init()
	g := New()
	if g.Version() != VersionRandom || g.Variant() != VariantRFC4122 {
		t.Errorf("New() = %v, want a version 4 RFC 4122 Guid", g)
	}
	if other := New(); other == g {
		t.Errorf("New() returned %v twice", g)
	}
	entropy.Shutdown()

	assertPanics(t, "New() after Shutdown", func() { New() })
}

type failingSource struct{}

func (failingSource) Read(p []byte) (int, error) {
	return 0, errors.New("device gone")
}

func (failingSource) Close() error {
	return nil
}

func TestNew_ReadFailurePanics(t *testing.T) {
	if entropy.Ready() {
		entropy.Shutdown()
	}
	saved := entropy.OpenSource
	entropy.OpenSource = func() (entropy.Source, error) { return failingSource{}, nil }
	defer func() { entropy.OpenSource = saved }()

	entropy.Init()
	defer entropy.Shutdown()

	assertPanics(t, "New() with a failing entropy source", func() { New() })
}

func assertPanics(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	f()
}
