package dbg

import (
	"fmt"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts cell indices into random readable names, which are far easier
// to follow through interleaved debug logs than bare numbers. Names are
// generated lazily and never freed, so only use this while debugging or when
// the logger is enabled.

var (
	mu   sync.Mutex
	memo map[int]string
)

func init() {
	memo = make(map[int]string)
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same cell between runs.
	petname.NonDeterministicMode()
}

func Name(cell int) string {
	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[cell]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[cell] = r
	return r
}

// Number of names handed out since the last Reset.
func Len() int {
	mu.Lock()
	defer mu.Unlock()
	return len(memo)
}

// Forget all names handed out so far.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	memo = make(map[int]string)
}
