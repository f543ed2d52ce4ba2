package main

// Event is the common shape of every log line the contract emits.
type Event struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

func emitEvent(eventType string, attributes map[string]string, chain Chain) {
	event := Event{
		Type:       eventType,
		Attributes: attributes,
	}
	chain.Log(ToJSON(event, eventType+" event data", chain))
}

// EmitPlayerCreated emits an event when a new player instance is created.
func EmitPlayerCreated(id uint64, createdBy string, width, height, start uint32, chain Chain) {
	emitEvent("playerCreated", map[string]string{
		"id":     UInt64ToString(id),
		"by":     createdBy,
		"width":  UInt64ToString(uint64(width)),
		"height": UInt64ToString(uint64(height)),
		"start":  UInt64ToString(uint64(start)),
	}, chain)
}

// EmitTurnTaken emits the coordinate chosen by a turn and the counter after it.
func EmitTurnTaken(id uint64, x, y, counter uint32, chain Chain) {
	emitEvent("turnTaken", map[string]string{
		"id":      UInt64ToString(id),
		"x":       UInt64ToString(uint64(x)),
		"y":       UInt64ToString(uint64(y)),
		"counter": UInt64ToString(uint64(counter)),
	}, chain)
}
