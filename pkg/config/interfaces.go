package config

// Validator is implemented by configurations that check themselves
// after loading. Validate may also fill in defaults, so it takes a
// pointer receiver on implementations that do.
type Validator interface {
	Validate() error
}
