package model

// ReservedKey enumerates the names with special meaning in an experiment
// document. The set is closed; membership is decided by exact string match,
// never by pattern or reflection.
type ReservedKey int

const (
	// KeyCMD is the root-level command template key.
	KeyCMD ReservedKey = iota
	// KeyProvidedVars is the per-section variable declaration key.
	KeyProvidedVars
	// KeyTaskName is a reserved variable name, not a document key. It names
	// the hidden task-name metadata variable that at most one section may
	// provide.
	KeyTaskName
)

// String returns the exact spelling of the reserved key as it appears in
// script files.
func (k ReservedKey) String() string {
	switch k {
	case KeyCMD:
		return "CMD"
	case KeyProvidedVars:
		return "PROVIDED_VARS"
	case KeyTaskName:
		return "TASK_NAME"
	}
	return "UNKNOWN"
}

// LookupReserved reports whether name spells a reserved key, and which one.
func LookupReserved(name string) (ReservedKey, bool) {
	switch name {
	case "CMD":
		return KeyCMD, true
	case "PROVIDED_VARS":
		return KeyProvidedVars, true
	case "TASK_NAME":
		return KeyTaskName, true
	}
	return 0, false
}
