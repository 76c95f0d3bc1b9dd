package context

// Environment is the interface to the process environment.
type Environment interface {
	// Lookup returns the value of the variable named by key, and whether it
	// exists in the environment at all. An existing variable may be empty.
	Lookup(key string) (string, bool)
	// Set stores value under key, replacing any existing value.
	Set(key, value string) error
}
