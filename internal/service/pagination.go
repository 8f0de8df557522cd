package service

// Page is the 1-based pagination contract shared by list operations.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps the page to the contract (number >= 1, size in [1,100])
// and returns the derived limit and offset.
func (p Page) Normalize() (limit, offset int) {
	number := p.Number
	if number < 1 {
		number = 1
	}
	size := p.Size
	if size < 1 {
		size = 10
	}
	if size > 100 {
		size = 100
	}
	return size, (number - 1) * size
}

// Clamped returns the page as it will actually be served, after the same
// clamping Normalize applies. Handlers echo this back in list envelopes.
func (p Page) Clamped() Page {
	limit, offset := p.Normalize()
	return Page{Number: offset/limit + 1, Size: limit}
}
