package host

// Error codes for introspection sessions
type Error int

const (
	ErrInvalidIndex        Error = -1
	ErrInstantiationFailed Error = -2
)

func (e Error) Error() string {
	switch e {
	case ErrInvalidIndex:
		return "plugin index out of range"
	case ErrInstantiationFailed:
		return "plugin instantiation failed"
	default:
		return "unknown error"
	}
}
