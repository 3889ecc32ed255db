package response

// Envelope wraps every successful response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Source  string `json:"source,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func List[T any](items []T, source string) Envelope {
	if items == nil {
		items = []T{}
	}
	n := len(items)
	return Envelope{Success: true, Data: items, Count: &n, Source: source}
}

func Message(msg string, data any) Envelope {
	return Envelope{Success: true, Message: msg, Data: data}
}
