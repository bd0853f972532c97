package delivery

// Kind tags a delivery variant.
type Kind int

const (
	KindUnknown Kind = iota
	KindPerson
	KindPickupPoint
	KindSpecializedStore
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:          "unknown",
		KindPerson:           "person",
		KindPickupPoint:      "pickup_point",
		KindSpecializedStore: "specialized_store",
	}
}

// String returns the snake_case name used as a log attribute and metrics label.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}
