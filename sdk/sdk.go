// Package sdk binds the contract to the VSC chain runtime.
//
// On wasm builds every call crosses into the host; on other builds the
// functions are inert stubs so packages importing sdk still compile and
// unit tests can run against a fake chain instead.
package sdk

// EnvSender is the GetEnvKey key holding the calling account, e.g. "hive:someone".
const EnvSender = "msg.sender"
