package inputset

// Parameter defines a configurable generation option for an input set
type Parameter struct {
	Name        string      `yaml:"name"`
	Type        string      `yaml:"type"` // integer, float, string, boolean
	Description string      `yaml:"description"`
	Default     interface{} `yaml:"default"`
	Required    bool        `yaml:"required"`
	Min         interface{} `yaml:"min,omitempty"`
	Max         interface{} `yaml:"max,omitempty"`
	Options     []string    `yaml:"options,omitempty"` // For string enums
}

// GenerateParameters are the options offered when generating an input deck.
var GenerateParameters = []Parameter{
	{
		Name:        "formula",
		Type:        "string",
		Description: "Chemical formula (e.g. LiFePO4)",
		Required:    true,
	},
	{
		Name:        "grid_density",
		Type:        "integer",
		Description: "Override k-point grid density (0 keeps the preset value)",
		Default:     0,
		Min:         0,
	},
	{
		Name:        "write_potcar",
		Type:        "boolean",
		Description: "Assemble a POTCAR from the configured pseudopotential library",
		Default:     false,
	},
}
