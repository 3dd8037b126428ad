package workflow

// Event triggers function runs and cancellations. Data carries the payload;
// values relevant to cancellation matching must be strings.
type Event struct {
	ID   string
	Name string
	Data map[string]any
}

// StringField reads a string value from the event payload, returning "" when
// the key is absent or not a string.
func (e Event) StringField(key string) string {
	if e.Data == nil {
		return ""
	}
	if v, ok := e.Data[key].(string); ok {
		return v
	}
	return ""
}
