package attrs

// Attributes is an ordered attribute set. Single valued kinds are kept at
// most once (later occurrence replaces earlier one in place), Data, Aria and
// Custom accumulate. Zero value is ready to use.
type Attributes struct {
	items []Attribute
	index map[Kind]int
}

// Push adds attribute to the set.
func (a *Attributes) Push(attr Attribute) {
	k := attr.Kind()
	if k.Multi() {
		a.items = append(a.items, attr)
		return
	}
	if pos, ok := a.index[k]; ok {
		a.items[pos] = attr
		return
	}
	if a.index == nil {
		a.index = make(map[Kind]int)
	}
	a.index[k] = len(a.items)
	a.items = append(a.items, attr)
}

// Get returns single valued attribute of requested kind.
func (a *Attributes) Get(k Kind) (Attribute, bool) {
	if pos, ok := a.index[k]; ok {
		return a.items[pos], true
	}
	return nil, false
}

// All returns every attribute of requested kind in insertion order, useful
// for multi valued kinds.
func (a *Attributes) All(k Kind) []Attribute {
	var out []Attribute
	for _, attr := range a.items {
		if attr.Kind() == k {
			out = append(out, attr)
		}
	}
	return out
}

// Items returns attributes in insertion order. Caller must not modify
// returned slice.
func (a *Attributes) Items() []Attribute {
	return a.items
}

// Len returns number of attributes in the set.
func (a *Attributes) Len() int {
	return len(a.items)
}

// Clone returns deep copy of the set which does not reference source text.
func (a *Attributes) Clone() Attributes {
	var out Attributes
	for _, attr := range a.items {
		out.Push(attr.clone())
	}
	return out
}
