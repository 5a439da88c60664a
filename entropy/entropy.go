// Package entropy supplies the raw random bytes behind generated GUIDs.
//
// A Device wraps the operating system's cryptographic random source. Which
// source is used is fixed per target at build time: /dev/urandom on unix,
// the native GUID facility (CoCreateGuid) on windows, crypto/rand elsewhere.
//
// Besides explicit Devices the package keeps one process-wide device with a
// strict lifecycle. The hosting process calls Init once during startup and
// Shutdown once during teardown; Default panics between the two.
package entropy

import (
	"errors"
	"fmt"

	"github.com/krotik/common/errorutil"
	"github.com/krotik/common/logutil"
)

// BlockSize is the number of random bytes drawn per generated GUID.
const BlockSize = 16

var (
	// ErrClosed is returned when reading from or closing a closed Device
	ErrClosed = errors.New("entropy: device closed")

	// ErrShortRead indicates the platform source returned no more data
	ErrShortRead = errors.New("entropy: short read from random source")
)

// logger reports lifecycle misuse and acquisition failures only; with no
// sink installed logutil falls back to the standard logger.
var logger = logutil.GetLogger("guid.entropy")

// Source is an acquired platform random source. Read fills the whole
// buffer or fails; Close releases the OS resource.
type Source interface {
	Read(p []byte) (int, error)
	Close() error
}

// OpenSource acquires the platform random source used by Open.
// It can be replaced for testing purposes.
var OpenSource = openPlatform

func openPlatform() (Source, error) {
	h, err := openHandle()
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Device is an open handle to the platform random source. It implements
// io.Reader; every successful Read fills the whole buffer. No locking is
// added: concurrent reads are as safe as the platform read itself.
type Device struct {
	src  Source
	open bool
}

// Open acquires the platform random source.
func Open() (*Device, error) {
	src, err := OpenSource()
	if err != nil {
		return nil, fmt.Errorf("entropy: open %s: %w", sourceName, err)
	}
	return &Device{src: src, open: true}, nil
}

// Read fills p with random bytes.
func (d *Device) Read(p []byte) (int, error) {
	if !d.open {
		return 0, ErrClosed
	}
	return d.src.Read(p)
}

// Close releases the platform resource.
func (d *Device) Close() error {
	if !d.open {
		return ErrClosed
	}
	d.open = false
	return d.src.Close()
}

// Ready reports whether the device is open.
func (d *Device) Ready() bool {
	return d != nil && d.open
}

// defaultDevice is the process-wide handle managed by Init and Shutdown
var defaultDevice *Device

// Init opens the process-wide device. Failing to acquire the random source
// is fatal: there is no safe fallback for missing entropy.
func Init() {
	if defaultDevice.Ready() {
		logger.Warning("Init called twice without Shutdown")
		if err := defaultDevice.Close(); err != nil {
			logger.Error(err)
		}
	}
	d, err := Open()
	if err != nil {
		logger.Error(err)
	}
	errorutil.AssertOk(err)
	defaultDevice = d
}

// Shutdown closes the process-wide device.
func Shutdown() {
	if !defaultDevice.Ready() {
		logger.Warning("Shutdown called without Init")
		return
	}
	if err := defaultDevice.Close(); err != nil {
		logger.Error(err)
	}
	defaultDevice = nil
}

// Ready reports whether Init has been called without a matching Shutdown.
func Ready() bool {
	return defaultDevice.Ready()
}

// Default returns the process-wide device. Calling it outside an
// Init/Shutdown pair panics.
func Default() *Device {
	errorutil.AssertTrue(defaultDevice.Ready(), "entropy: library uninitialized")
	return defaultDevice
}
