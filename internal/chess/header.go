package chess

// Well-known PGN header keys.
const (
	EventTag  = "Event"
	ResultTag = "Result"
	SetUpTag  = "SetUp"
	FENTag    = "FEN"
)

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	"Event",
	"Site",
	"Date",
	"Round",
	"White",
	"Black",
	"Result",
}

// IsSevenTagRosterTag returns true if the tag is one of the seven required tags.
func IsSevenTagRosterTag(tag string) bool {
	for _, t := range SevenTagRoster {
		if t == tag {
			return true
		}
	}
	return false
}

// Header is the ordered key/value map of a game's PGN tags. Keys keep their
// first insertion position; setting an existing key updates it in place.
type Header struct {
	keys   []string
	values map[string]string
}

// NewHeader creates a header from alternating key, value pairs. A trailing
// key without a value is ignored.
func NewHeader(pairs ...string) *Header {
	h := &Header{values: make(map[string]string)}
	h.AddAll(pairs...)
	return h
}

// AddAll sets alternating key, value pairs in order.
func (h *Header) AddAll(pairs ...string) {
	for i := 0; i+1 < len(pairs); i += 2 {
		h.Set(pairs[i], pairs[i+1])
	}
}

// Set adds or updates a tag.
func (h *Header) Set(key, value string) {
	if h.values == nil {
		h.values = make(map[string]string)
	}
	if _, ok := h.values[key]; !ok {
		h.keys = append(h.keys, key)
	}
	h.values[key] = value
}

// Get returns the value of a tag and whether it exists.
func (h *Header) Get(key string) (string, bool) {
	v, ok := h.values[key]
	return v, ok
}

// Value returns the value of a tag, or "" when absent.
func (h *Header) Value(key string) string {
	return h.values[key]
}

// Remove deletes a tag, reporting whether it was present.
func (h *Header) Remove(key string) bool {
	if _, ok := h.values[key]; !ok {
		return false
	}
	delete(h.values, key)
	for i, k := range h.keys {
		if k == key {
			h.keys = append(h.keys[:i], h.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of tags.
func (h *Header) Len() int {
	return len(h.keys)
}

// Keys returns the tag names in insertion order.
func (h *Header) Keys() []string {
	out := make([]string, len(h.keys))
	copy(out, h.keys)
	return out
}

// At returns the i'th tag in insertion order.
func (h *Header) At(i int) (key, value string) {
	key = h.keys[i]
	return key, h.values[key]
}

// Clear removes every tag.
func (h *Header) Clear() {
	h.keys = nil
	h.values = make(map[string]string)
}
