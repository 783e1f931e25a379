package testtypes

// Factory creates StructA values tagged with a running count.
type Factory struct {
	count int
}

func (f *Factory) NewStructA() *StructA {
	a := &StructA{
		Tag: f.count,
	}
	f.count++

	return a
}

func (f *Factory) NewInterfaceA() InterfaceA {
	return f.NewStructA()
}

// Count returns the number of values created so far.
func (f *Factory) Count() int {
	return f.count
}

// ExpectInterfaceA returns the values a fresh Factory creates after count calls.
func ExpectInterfaceA(count int) []InterfaceA {
	s := make([]InterfaceA, 0, count)
	for i := range count {
		s = append(s, &StructA{Tag: i})
	}
	return s
}
