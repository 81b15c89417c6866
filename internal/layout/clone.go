package layout

// Clone returns a deep copy of the element, including nested metadata
// maps and slices. Cloning is structural rather than a serialize/parse
// round-trip so metadata values that JSON cannot represent survive.
func (e Element) Clone() Element {
	out := Element{ComponentName: e.ComponentName}
	if e.Metadata != nil {
		out.Metadata = cloneMap(e.Metadata)
	}
	return out
}

// Clone returns a deep copy of the list.
func (l List) Clone() List {
	out := List{
		ContainerName: l.ContainerName,
		Width:         l.Width,
	}
	if l.Items != nil {
		out.Items = make([]Element, len(l.Items))
		for i, item := range l.Items {
			out.Items[i] = item.Clone()
		}
	}
	if l.ConnectedTo != nil {
		out.ConnectedTo = append([]string(nil), l.ConnectedTo...)
	}
	return out
}

// Clone returns a deep copy of the layout.
func (l Layout) Clone() Layout {
	if l == nil {
		return nil
	}
	out := make(Layout, len(l))
	for i, list := range l {
		out[i] = list.Clone()
	}
	return out
}

// Clone returns a deep copy of the config.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	return &Config{
		Name:    c.Name,
		Version: c.Version,
		Mobile:  c.Mobile.Clone(),
		Tablet:  c.Tablet.Clone(),
		Desktop: c.Desktop.Clone(),
	}
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		// Scalars and anything else are copied by value.
		return val
	}
}
