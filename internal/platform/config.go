package platform

// Config is one entry in the Registry.
type Config struct {
	Key   Key
	Name  string
	Icon  string
	Color string

	// Fields lists the platform's inputs in declared order.
	// Names are unique within a platform.
	Fields []Field

	Notes string
}

// Field returns the configuration of the named field, if the platform declares it.
func (c *Config) Field(name string) (FieldConfig, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f.Config, true
		}
	}
	return nil, false
}

// FieldNames returns the platform's field names in declared order.
func (c *Config) FieldNames() []string {
	names := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		names[i] = f.Name
	}
	return names
}

// clone returns a deep copy so callers can never mutate registry state.
func (c *Config) clone() *Config {
	out := *c
	out.Fields = make([]Field, len(c.Fields))
	copy(out.Fields, c.Fields)
	return &out
}
