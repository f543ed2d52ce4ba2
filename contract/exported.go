package main

//go:wasmexport p_create
func CreatePlayer(payload *string) *string {
	return createPlayerImpl(payload, RealChain{})
}

// YourTurn is called every game round and returns the "x|y" pixel to colour.
//
//go:wasmexport p_turn
func YourTurn(payload *string) *string {
	chain := RealChain{}
	return yourTurnImpl(parseID(payload, chain), chain)
}

//go:wasmexport p_get
func GetPlayer(payload *string) *string {
	chain := RealChain{}
	return getPlayerImpl(parseID(payload, chain), chain)
}

// Call routes by numeric selector; selector 0 is the turn.
//
//go:wasmexport p_call
func Call(payload *string) *string {
	return dispatchImpl(payload, RealChain{})
}
