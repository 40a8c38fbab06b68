package clinic

// Room is static metadata about where a doctor sees patients.
type Room struct {
	Number string
	Type   string
}
