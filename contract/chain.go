package main

import (
	"okinoko-test_player/player"
	"okinoko-test_player/sdk"
)

// Chain is the slice of the runtime the contract touches. RealChain forwards
// to the sdk; tests use a fake so the logic runs without a wasm host.
type Chain interface {
	StateSetObject(key, value string)
	StateGetObject(key string) *string
	Abort(msg string)
	Log(msg string)
	Sender() string
}

type RealChain struct{}

func (RealChain) StateSetObject(key, value string)  { sdk.StateSetObject(key, value) }
func (RealChain) StateGetObject(key string) *string { return sdk.StateGetObject(key) }
func (RealChain) Abort(msg string)                  { sdk.Abort(msg) }
func (RealChain) Log(msg string)                    { sdk.Log(msg) }
func (RealChain) Sender() string {
	if s := sdk.GetEnvKey(sdk.EnvSender); s != nil {
		return *s
	}
	return ""
}

// chainStore exposes contract state as a player.Store. An empty value is
// treated as missing, the same as a key that was never written.
type chainStore struct {
	chain Chain
}

var _ player.Store = chainStore{}

func (s chainStore) Get(key string) ([]byte, bool, error) {
	ptr := s.chain.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return nil, false, nil
	}
	return []byte(*ptr), true, nil
}

func (s chainStore) Put(key string, value []byte) error {
	s.chain.StateSetObject(key, string(value))
	return nil
}
