package main

import (
	"encoding/json"
	"fmt"
	"testing"
)

// FakeChain is an in-memory Chain. Abort panics the way the real host stops
// execution, so expectAbort can recover it.
type FakeChain struct {
	state    map[string]string
	sender   string
	logs     []string
	aborted  bool
	abortMsg string
}

func NewFakeChain(sender string) *FakeChain {
	return &FakeChain{
		state:  make(map[string]string),
		sender: sender,
	}
}

func (f *FakeChain) StateSetObject(key, value string) {
	f.state[key] = value
}

func (f *FakeChain) StateGetObject(key string) *string {
	val, ok := f.state[key]
	if !ok {
		return nil
	}
	return &val
}

func (f *FakeChain) Abort(msg string) {
	f.aborted = true
	f.abortMsg = msg
	panic(fmt.Sprintf("Abort called: %s", msg))
}

func (f *FakeChain) Log(msg string) {
	f.logs = append(f.logs, msg)
}

func (f *FakeChain) Sender() string {
	return f.sender
}

// events decodes every logged line as an Event.
func (f *FakeChain) events(t *testing.T) []Event {
	t.Helper()
	out := make([]Event, 0, len(f.logs))
	for _, l := range f.logs {
		var e Event
		if err := json.Unmarshal([]byte(l), &e); err != nil {
			t.Fatalf("log line is not an event: %q", l)
		}
		out = append(out, e)
	}
	return out
}

// helper for check for aborts in testing mode
func expectAbort(t *testing.T, chain *FakeChain, expectedMsg string) {
	if r := recover(); r == nil {
		t.Errorf("expected Abort panic, but function did not panic")
	} else {
		if !chain.aborted {
			t.Errorf("expected chain.Abort to be called, but it wasn't")
		}
		if chain.abortMsg != expectedMsg {
			t.Errorf("expected abort message %q, got %q", expectedMsg, chain.abortMsg)
		}
	}
}

func str(s string) *string { return &s }
