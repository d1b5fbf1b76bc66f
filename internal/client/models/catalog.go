package models

// Catalog is the full set of activities in the order the server listed
// them. It is replaced wholesale on every fetch and never patched.
type Catalog struct {
	items []Activity
	index map[string]int
}

// NewCatalog builds a catalog from items, keeping their order. A repeated
// name keeps its first position and takes the last value.
func NewCatalog(items []Activity) Catalog {
	c := Catalog{
		items: make([]Activity, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for _, it := range items {
		if i, ok := c.index[it.Name]; ok {
			c.items[i] = it
			continue
		}
		c.index[it.Name] = len(c.items)
		c.items = append(c.items, it)
	}
	return c
}

func (c Catalog) Len() int { return len(c.items) }

// Activities returns a copy of the entries in server order.
func (c Catalog) Activities() []Activity {
	out := make([]Activity, len(c.items))
	copy(out, c.items)
	return out
}

// Names lists activity names in server order.
func (c Catalog) Names() []string {
	out := make([]string, len(c.items))
	for i, it := range c.items {
		out[i] = it.Name
	}
	return out
}

func (c Catalog) Get(name string) (Activity, bool) {
	i, ok := c.index[name]
	if !ok {
		return Activity{}, false
	}
	return c.items[i], true
}
