//go:build !wasm

package sdk

func StateSetObject(key, value string)  {}
func StateGetObject(key string) *string { return nil }
func Log(msg string)                    {}
func GetEnvKey(key string) *string      { return nil }
func Abort(msg string)                  { panic("abort: " + msg) }
