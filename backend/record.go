package backend

import (
	"github.com/gogpu/glkit/driver"
	"github.com/gogpu/glkit/driver/drivertest"
)

// RecordBackend executes nothing on a GPU. Every call lands in a
// drivertest.Driver, which makes it usable in CI and for dry runs.
type RecordBackend struct {
	drv *drivertest.Driver
}

// init registers the record backend on package import.
func init() {
	Register(BackendRecord, func() Backend {
		return NewRecordBackend()
	})
}

// NewRecordBackend creates an uninitialized record backend.
func NewRecordBackend() *RecordBackend {
	return &RecordBackend{}
}

// Name returns "record".
func (b *RecordBackend) Name() string { return BackendRecord }

// Init creates a fresh recording driver.
func (b *RecordBackend) Init() error {
	b.drv = drivertest.New()
	return nil
}

// Driver returns the driver, or nil before Init.
func (b *RecordBackend) Driver() driver.Driver {
	if b.drv == nil {
		return nil
	}
	return b.drv
}

// Recorder exposes the recording driver for inspection.
func (b *RecordBackend) Recorder() *drivertest.Driver { return b.drv }

// Close drops the driver.
func (b *RecordBackend) Close() {
	b.drv = nil
}
