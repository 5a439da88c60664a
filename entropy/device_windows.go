//go:build windows

package entropy

import (
	"encoding/binary"

	"golang.org/x/sys/windows"
)

const sourceName = "CoCreateGuid"

// handle needs no OS resource: every block is a fresh native GUID, already
// tagged as version 4 by the platform.
type handle struct{}

func openHandle() (handle, error) {
	// Probe once so a broken facility fails at Init, not at first use.
	if _, err := windows.GenerateGUID(); err != nil {
		return handle{}, err
	}
	return handle{}, nil
}

func (h handle) Read(p []byte) (int, error) {
	var block [BlockSize]byte
	n := 0
	for n < len(p) {
		g, err := windows.GenerateGUID()
		if err != nil {
			return n, err
		}
		// Data1..Data3 are native integers; lay them out big-endian so the
		// version nibble lands where the text form expects it.
		binary.BigEndian.PutUint32(block[0:4], g.Data1)
		binary.BigEndian.PutUint16(block[4:6], g.Data2)
		binary.BigEndian.PutUint16(block[6:8], g.Data3)
		copy(block[8:], g.Data4[:])
		n += copy(p[n:], block[:])
	}
	return n, nil
}

func (h handle) Close() error {
	return nil
}
