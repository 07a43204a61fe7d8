package analysis

// Settings carries the server configuration. It is replaced wholesale on
// configuration changes and passed by value into every operation that needs
// it; nothing in this package mutates it.
type Settings struct {
	MaxNumberOfProblems int
	EnableFormatting    bool
	LibraryPaths        []string
	ImplicitImports     bool
	InterpreterPath     string
}

// DefaultSettings returns the configuration used until the client sends one.
func DefaultSettings() Settings {
	return Settings{
		MaxNumberOfProblems: 100,
		EnableFormatting:    true,
		ImplicitImports:     true,
		InterpreterPath:     "interp.csh",
	}
}
