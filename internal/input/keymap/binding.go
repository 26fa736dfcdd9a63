package keymap

// Binding maps one shortcut to a named action.
type Binding struct {
	// Keys is the shortcut that triggers this binding.
	// Formats: "j", "ctrl+s", "Ctrl+Shift+A", "alt+f4"
	Keys string `toml:"keys" yaml:"keys"`

	// Action is the command to execute.
	// Examples: "file.save", "app.quit", "view.toggleSidebar"
	Action string `toml:"action" yaml:"action"`

	// Args are fixed arguments for the action.
	Args map[string]any `toml:"args,omitempty" yaml:"args,omitempty"`

	// Description provides documentation for the binding.
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`

	// Category groups bindings for display purposes.
	Category string `toml:"category,omitempty" yaml:"category,omitempty"`

	// Default registers the binding as a fallback that non-default
	// registrations of the same shortcut override.
	Default bool `toml:"default,omitempty" yaml:"default,omitempty"`
}

// NewBinding creates a new binding with the given keys and action.
func NewBinding(keys, action string) Binding {
	return Binding{
		Keys:   keys,
		Action: action,
	}
}

// WithArgs sets arguments for this binding.
func (b Binding) WithArgs(args map[string]any) Binding {
	b.Args = args
	return b
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// WithCategory sets the category for this binding.
func (b Binding) WithCategory(category string) Binding {
	b.Category = category
	return b
}

// AsDefault marks the binding as a default.
func (b Binding) AsDefault() Binding {
	b.Default = true
	return b
}

// BindingCategory represents a category of bindings for display.
type BindingCategory struct {
	Name     string
	Bindings []Binding
}

// GroupByCategory groups bindings by their category, keeping first-seen order.
func GroupByCategory(bindings []Binding) []BindingCategory {
	categoryMap := make(map[string][]Binding)
	order := make([]string, 0)

	for _, b := range bindings {
		cat := b.Category
		if cat == "" {
			cat = "Other"
		}
		if _, exists := categoryMap[cat]; !exists {
			order = append(order, cat)
		}
		categoryMap[cat] = append(categoryMap[cat], b)
	}

	result := make([]BindingCategory, 0, len(order))
	for _, name := range order {
		result = append(result, BindingCategory{
			Name:     name,
			Bindings: categoryMap[name],
		})
	}
	return result
}
