package clap

// #include <stdlib.h>
// #include "bridge.h"
import "C"
import "unsafe"

// HostInfo is the identity a Host presents to plugins.
type HostInfo struct {
	Name    string
	Vendor  string
	URL     string
	Version string
}

// Host is a minimal clap_host_t. It offers no host extensions and ignores
// restart, process and callback requests.
type Host struct {
	ptr  *C.clap_host_t
	info HostInfo
}

// NewHost allocates a native host record carrying info.
func NewHost(info HostInfo) *Host {
	cName := C.CString(info.Name)
	defer C.free(unsafe.Pointer(cName))
	cVendor := C.CString(info.Vendor)
	defer C.free(unsafe.Pointer(cVendor))
	cURL := C.CString(info.URL)
	defer C.free(unsafe.Pointer(cURL))
	cVersion := C.CString(info.Version)
	defer C.free(unsafe.Pointer(cVersion))

	return &Host{
		ptr:  C.clapinfo_host_new(cName, cVendor, cURL, cVersion),
		info: info,
	}
}

// Info returns the host identity.
func (h *Host) Info() HostInfo {
	return h.info
}

// Free releases the native record. Plugins created against the host must be
// destroyed first.
func (h *Host) Free() {
	if h.ptr != nil {
		C.clapinfo_host_free(h.ptr)
		h.ptr = nil
	}
}
