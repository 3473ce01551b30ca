package backend

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/glkit/driver"
)

var errNoDisplay = errors.New("no display")

type failingBackend struct{}

func (failingBackend) Name() string          { return BackendEGL }
func (failingBackend) Init() error           { return errNoDisplay }
func (failingBackend) Driver() driver.Driver { return nil }
func (failingBackend) Close()                {}

func TestRecordBackendName(t *testing.T) {
	b := NewRecordBackend()
	if b.Name() != "record" {
		t.Errorf("Name() = %q, want %q", b.Name(), "record")
	}
}

func TestRecordBackendLifecycle(t *testing.T) {
	b := NewRecordBackend()
	if b.Driver() != nil {
		t.Error("Driver() before Init should be nil")
	}
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if b.Driver() == nil {
		t.Fatal("Driver() after Init returned nil")
	}

	b.Driver().Clear(driver.COLOR_BUFFER_BIT)
	if got := b.Recorder().Count("Clear"); got != 1 {
		t.Errorf("recorded Clear calls = %d, want 1", got)
	}

	b.Close()
	if b.Driver() != nil {
		t.Error("Driver() after Close should be nil")
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	// Record backend is auto-registered via init()
	if !IsRegistered("record") {
		t.Error("record backend should be auto-registered")
	}

	b := Get("record")
	if b == nil {
		t.Fatal("Get(record) returned nil")
	}
	if b.Name() != "record" {
		t.Errorf("Get(record).Name() = %q, want %q", b.Name(), "record")
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	if b := Get("nonexistent"); b != nil {
		t.Error("Get(nonexistent) should return nil")
	}
}

func TestRegistryAvailable(t *testing.T) {
	Register("zz-test", func() Backend { return NewRecordBackend() })
	defer Unregister("zz-test")

	available := Available()
	if !slices.Contains(available, "record") {
		t.Errorf("Available() = %v, should include 'record'", available)
	}
	if !slices.IsSorted(available) {
		t.Errorf("Available() = %v, want sorted", available)
	}
}

func TestRegistryDefault(t *testing.T) {
	b := Default()
	if b == nil {
		t.Fatal("Default() returned nil")
	}
	if b.Name() != "record" {
		t.Logf("Default() returned %q (may vary based on available backends)", b.Name())
	}
}

func TestRegistryMustDefault(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("MustDefault() panicked: %v", r)
		}
	}()
	if b := MustDefault(); b == nil {
		t.Error("MustDefault() returned nil")
	}
}

func TestRegistryInitDefaultFallsBack(t *testing.T) {
	Register(BackendEGL, func() Backend { return failingBackend{} })
	defer Unregister(BackendEGL)

	b, err := InitDefault()
	if err != nil {
		t.Fatalf("InitDefault() error = %v", err)
	}
	defer b.Close()

	if b.Name() != BackendRecord {
		t.Errorf("InitDefault().Name() = %q, want %q", b.Name(), BackendRecord)
	}
	if b.Driver() == nil {
		t.Error("backend from InitDefault() should be usable")
	}
}

func TestRegistryInitDefaultAllFail(t *testing.T) {
	Unregister(BackendRecord)
	defer Register(BackendRecord, func() Backend { return NewRecordBackend() })

	Register(BackendEGL, func() Backend { return failingBackend{} })
	defer Unregister(BackendEGL)

	_, err := InitDefault()
	if !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("InitDefault() error = %v, want ErrBackendNotAvailable", err)
	}
	if !errors.Is(err, errNoDisplay) {
		t.Errorf("InitDefault() error = %v, want the init failure joined", err)
	}
}

func TestOpen(t *testing.T) {
	b, err := Open(BackendRecord)
	if err != nil {
		t.Fatalf("Open(record) error = %v", err)
	}
	b.Close()

	if _, err := Open("nonexistent"); !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Open(nonexistent) error = %v, want ErrBackendNotAvailable", err)
	}

	Register(BackendEGL, func() Backend { return failingBackend{} })
	defer Unregister(BackendEGL)
	if _, err := Open(BackendEGL); !errors.Is(err, errNoDisplay) {
		t.Errorf("Open(egl) error = %v, want %v", err, errNoDisplay)
	}
}

func TestRegistryUnregister(t *testing.T) {
	Register("test-backend", func() Backend { return NewRecordBackend() })

	if !IsRegistered("test-backend") {
		t.Error("test-backend should be registered")
	}

	Unregister("test-backend")

	if IsRegistered("test-backend") {
		t.Error("test-backend should be unregistered")
	}
}
