package entities

// TemplateFile is a file an application template asks the generator to write.
type TemplateFile struct {
	Path    string
	Content string
}

// ApplicationTemplate is a declarative recipe applied on top of a freshly
// generated application.
type ApplicationTemplate struct {
	Location string
	Gems     []DependencyEntry
	Files    []TemplateFile
}
