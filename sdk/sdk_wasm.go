//go:build wasm

package sdk

//go:wasmimport sdk console.log
func log(s *string) *string

//go:wasmimport sdk db.set_object
func stateSetObject(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func stateGetObject(key *string) *string

//go:wasmimport sdk system.get_env_key
func getEnvKey(key *string) *string

//go:wasmimport sdk abort
func abort(msg *string)

func Log(msg string) { log(&msg) }

func StateSetObject(key, value string) { stateSetObject(&key, &value) }

// StateGetObject returns nil when the key has never been written.
func StateGetObject(key string) *string { return stateGetObject(&key) }

func GetEnvKey(key string) *string { return getEnvKey(&key) }

// Abort reverts every state write of the current call and never returns.
func Abort(msg string) {
	abort(&msg)
	panic(msg)
}
