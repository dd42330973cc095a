package oasdoc

// Document is the in-memory representation of a parsed description document.
// It carries only the structure deprecation detection needs: the version
// marker, the info block, and the paths tree.
//
// Treat a Document as read-only after parsing. A nil Paths map means the
// document had no paths object at all, which interpretation treats as a
// structural error; an empty map is a valid document describing no paths.
type Document struct {
	// OpenAPI is the top-level version marker field (e.g. "3.0.3")
	OpenAPI string `yaml:"openapi,omitempty" json:"openapi,omitempty"`
	// Info is the top-level info object
	Info *Info `yaml:"info,omitempty" json:"info,omitempty"`
	// Paths maps path templates to their path items
	Paths map[string]*PathItem `yaml:"paths,omitempty" json:"paths,omitempty"`

	// SourceFormat records which parser produced this document
	SourceFormat SourceFormat `yaml:"-" json:"-"`

	// Extra captures any remaining top-level fields
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Info holds the document's info object. Only identification fields are
// modeled; detection never inspects them beyond presence.
type Info struct {
	Title       string         `yaml:"title,omitempty" json:"title,omitempty"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string         `yaml:"version,omitempty" json:"version,omitempty"`
	Extra       map[string]any `yaml:",inline" json:"-"`
}

// PathItem describes the operations available on a single path.
type PathItem struct {
	Summary     string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	Get     *Operation `yaml:"get,omitempty" json:"get,omitempty"`
	Put     *Operation `yaml:"put,omitempty" json:"put,omitempty"`
	Post    *Operation `yaml:"post,omitempty" json:"post,omitempty"`
	Delete  *Operation `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options *Operation `yaml:"options,omitempty" json:"options,omitempty"`
	Head    *Operation `yaml:"head,omitempty" json:"head,omitempty"`
	Patch   *Operation `yaml:"patch,omitempty" json:"patch,omitempty"`
	Trace   *Operation `yaml:"trace,omitempty" json:"trace,omitempty"`

	// Parameters are path-level parameters shared by all operations.
	// Detection only consults operation-level parameters.
	Parameters []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// Operation is one path/method combination within a description document.
type Operation struct {
	Summary     string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	OperationID string `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	// Deprecated marks the whole operation as deprecated. Absent means false.
	Deprecated bool `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	// Parameters is the operation's declared parameters. A nil slice means
	// the document declared no parameters array, which is distinct from an
	// empty one.
	Parameters []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	In          string `yaml:"in,omitempty" json:"in,omitempty"` // "query", "header", "path", "cookie"
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}
