package delivery

// Archive keeps deliveries for lookup by number.
//
// Duplicates are stored; Lookup returns the one added first.
type Archive struct {
	deliveries []Delivery
	firstIndex map[int]int
}

// NewArchive creates an empty Archive.
func NewArchive() *Archive {
	return &Archive{
		firstIndex: make(map[int]int),
	}
}

// Add stores d.
func (a *Archive) Add(d Delivery) {
	if a.firstIndex == nil {
		a.firstIndex = make(map[int]int)
	}
	if _, seen := a.firstIndex[d.ID()]; !seen {
		a.firstIndex[d.ID()] = len(a.deliveries)
	}
	a.deliveries = append(a.deliveries, d)
}

// Lookup returns the first delivery stored under id, or (nil, false).
//
// Example:
//
//	if d, ok := archive.Lookup(2); ok {
//	    fmt.Println(d.Describe())
//	}
func (a *Archive) Lookup(id int) (Delivery, bool) {
	i, ok := a.firstIndex[id]
	if !ok {
		return nil, false
	}
	return a.deliveries[i], true
}

// Len returns the number of stored deliveries, duplicates included.
func (a *Archive) Len() int {
	return len(a.deliveries)
}
