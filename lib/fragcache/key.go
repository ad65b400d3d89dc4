package fragcache

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"

	"github.com/vmihailenco/msgpack/v5"
)

// keyedRequest is the canonical key layout: family plus parameters as
// sorted pairs, so derivation does not depend on map iteration order.
type keyedRequest struct {
	Family string      `msgpack:"f"`
	Params [][2]string `msgpack:"p"`
}

// Key derives a stable cache key for a component family and its request
// parameters. Equal family and params always produce the same key;
// distinct families never collide on shared params.
func Key(family string, params map[string]string) string {
	pairs := make([][2]string, 0, len(params))
	for k, v := range params {
		pairs = append(pairs, [2]string{k, v})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })

	packed, err := msgpack.Marshal(keyedRequest{Family: family, Params: pairs})
	if err != nil {
		// msgpack of plain strings cannot fail
		panic(err)
	}
	sum := sha256.Sum256(packed)
	return hex.EncodeToString(sum[:])
}
