package achievements

// PrefStore is the slice of the preference store the manager needs.
// This matches storage.Prefs, decoupling the engine from the concrete
// store so tests can observe writes. Implementations must be fail-soft:
// Load returns false instead of erroring, Save and Delete never report
// failure.
type PrefStore interface {
	Load(key string, out any) bool
	Save(key string, v any)
	Delete(key string)
}
