package main

// Entry points live in exported.go; the wasm module needs an empty main.
func main() {}
