package main

import (
	"okinoko-test_player/player"
)

//
// Player instance operations. Each exported entry point parses its payload
// and forwards to one of these so tests can drive them with a fake chain.
//

// getPlayerCount returns the number of players created so far, which is
// also the next free id.
func getPlayerCount(chain Chain) uint64 {
	ptr := chain.StateGetObject("p_count")
	if ptr == nil || *ptr == "" {
		return 0
	}
	return parseU64(*ptr, "player count", chain)
}

func setPlayerCount(n uint64, chain Chain) {
	chain.StateSetObject("p_count", UInt64ToString(n))
}

// parseCreateArgs reads "width|height|start". The start counter may be left
// empty and then defaults to zero. A zero width is accepted; the first turn
// of such a player aborts.
func parseCreateArgs(payload *string, chain Chain) (dims player.Dimensions, start uint32) {
	in := *payload
	w := nextField(&in)
	h := nextField(&in)
	s := nextField(&in)
	require(in == "", "too many arguments", chain)

	dims.Width = parseU32(w, "width", chain)
	dims.Height = parseU32(h, "height", chain)
	if s != "" {
		start = parseU32(s, "start", chain)
	}
	return
}

// parseID reads a payload that carries nothing but a player id.
func parseID(payload *string, chain Chain) uint64 {
	in := *payload
	id := parseU64(nextField(&in), "player id", chain)
	require(in == "", "too many arguments", chain)
	return id
}

func createPlayerImpl(payload *string, chain Chain) *string {
	dims, start := parseCreateArgs(payload, chain)
	sender := chain.Sender()

	id := getPlayerCount(chain)
	_, err := player.Create(chainStore{chain}, UInt64ToString(id), sender, dims, start)
	abortOnError(err, chain)
	setPlayerCount(id+1, chain)

	EmitPlayerCreated(id, sender, dims.Width, dims.Height, start, chain)
	ret := UInt64ToString(id)
	return &ret
}

// yourTurnImpl plays one turn and returns "x|y", or nil when the player
// passes.
func yourTurnImpl(id uint64, chain Chain) *string {
	c, s, err := player.Turn(chainStore{chain}, UInt64ToString(id))
	abortOnError(err, chain)
	if c == nil {
		return nil
	}

	EmitTurnTaken(id, c.X, c.Y, s.Counter, chain)

	out := make([]byte, 0, 24)
	out = appendU64(out, uint64(c.X))
	out = append(out, '|')
	out = appendU64(out, uint64(c.Y))
	ret := string(out)
	return &ret
}

// getPlayerImpl returns "id|width|height|counter|creator".
func getPlayerImpl(id uint64, chain Chain) *string {
	info, err := player.LoadInfo(chainStore{chain}, UInt64ToString(id))
	abortOnError(err, chain)

	out := make([]byte, 0, 48+len(info.Creator))
	out = appendU64(out, id)
	out = append(out, '|')
	out = appendU64(out, uint64(info.State.Dimensions.Width))
	out = append(out, '|')
	out = appendU64(out, uint64(info.State.Dimensions.Height))
	out = append(out, '|')
	out = appendU64(out, uint64(info.State.Counter))
	out = append(out, '|')
	out = append(out, info.Creator...)
	ret := string(out)
	return &ret
}

// dispatchImpl routes "selector|id" to the matching operation.
func dispatchImpl(payload *string, chain Chain) *string {
	in := *payload
	sel := parseU8(nextField(&in), "selector", chain)
	id := parseU64(nextField(&in), "player id", chain)
	require(in == "", "too many arguments", chain)

	switch player.Selector(sel) {
	case player.SelectorYourTurn:
		return yourTurnImpl(id, chain)
	case player.SelectorState:
		return getPlayerImpl(id, chain)
	default:
		chain.Abort("unknown selector " + UInt64ToString(uint64(sel)))
	}
	return nil
}
