package tokens

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	mu    sync.Mutex
	tk    *tiktoken.Tiktoken
	tried bool

	loadEncoding = tiktoken.GetEncoding
)

// encoder returns the cl100k_base encoder, or nil when the encoding data
// could not be loaded. tiktoken-go fetches the BPE table over the network on
// first use, so load failure is a runtime condition to degrade through, not
// a fault. One attempt per process; accounting is not worth re-dialing for.
func encoder() *tiktoken.Tiktoken {
	mu.Lock()
	defer mu.Unlock()
	if !tried {
		tried = true
		if enc, err := loadEncoding("cl100k_base"); err == nil {
			tk = enc
		}
	}
	return tk
}

// Count returns the token count of text under cl100k_base. Without the
// encoder it falls back to a four-bytes-per-token approximation.
func Count(text string) int {
	if text == "" {
		return 0
	}
	if enc := encoder(); enc != nil {
		return len(enc.Encode(text, nil, nil))
	}
	return approxCount(text)
}

func approxCount(text string) int {
	n := len(text) / 4
	if n == 0 {
		n = 1
	}
	return n
}

// Estimate sums the token counts of prompt and completion texts.
func Estimate(texts ...string) int {
	total := 0
	for _, t := range texts {
		total += Count(t)
	}
	return total
}
