package entities

// CommandSpec is one external tool invocation planned by the generator.
type CommandSpec struct {
	Name string
	Args []string
	Dir  string
	Env  map[string]string
}

// CommandResult holds the outcome of a finished process.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}
