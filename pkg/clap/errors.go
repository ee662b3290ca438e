package clap

// Error codes for the native boundary
type Error int

const (
	ErrNotFound            Error = -1
	ErrLoadFailure         Error = -2
	ErrNoEntry             Error = -3
	ErrIncompatibleVersion Error = -4
	ErrEntryInit           Error = -5
	ErrNoFactory           Error = -6
	ErrClosed              Error = -7
	ErrCreateFailed        Error = -8
	ErrInitFailed          Error = -9
	ErrActivateFailed      Error = -10
)

func (e Error) Error() string {
	switch e {
	case ErrNotFound:
		return "bundle not found"
	case ErrLoadFailure:
		return "failed to load module"
	case ErrNoEntry:
		return "module does not export clap_entry"
	case ErrIncompatibleVersion:
		return "incompatible CLAP version"
	case ErrEntryInit:
		return "clap_entry.init failed"
	case ErrNoFactory:
		return "bundle has no plugin factory"
	case ErrClosed:
		return "bundle is closed"
	case ErrCreateFailed:
		return "plugin factory could not create plugin"
	case ErrInitFailed:
		return "plugin init failed"
	case ErrActivateFailed:
		return "plugin activation failed"
	default:
		return "unknown error"
	}
}
