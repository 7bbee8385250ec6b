// Package engine provides the random sampling primitives shared by every
// game resolver: a uniform float source, a deterministic seeded stream for
// reproducible replays, and a weighted selection utility.
package engine

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Source yields uniform floats in [0, 1). Implementations are not required
// to be safe for concurrent use; each resolver owns its source.
type Source interface {
	Float() float64
}

// randSource is the default Source backed by math/rand.
type randSource struct {
	r *rand.Rand
}

// NewRandSource returns a Source seeded from the runtime. It is the source
// used in normal gameplay; determinism is not a goal here.
func NewRandSource() Source {
	return &randSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *randSource) Float() float64 {
	return s.r.Float64()
}

// ByteGenerator generates a deterministic byte stream using HMAC-SHA256,
// streaming 32-byte rounds derived from a seed pair and nonce.
type ByteGenerator struct {
	serverSeed   string
	clientSeed   string
	nonce        uint64
	currentRound uint64
	currentPos   int
	buffer       [32]byte
}

// NewByteGenerator creates a new byte generator with the given parameters.
func NewByteGenerator(serverSeed, clientSeed string, nonce uint64) *ByteGenerator {
	bg := &ByteGenerator{
		serverSeed: serverSeed,
		clientSeed: clientSeed,
		nonce:      nonce,
	}
	bg.generateRound()
	return bg
}

// Next returns the next byte from the generator.
func (bg *ByteGenerator) Next() byte {
	if bg.currentPos >= 32 {
		bg.currentRound++
		bg.currentPos = 0
		bg.generateRound()
	}

	b := bg.buffer[bg.currentPos]
	bg.currentPos++
	return b
}

// Float generates the next float using exactly 4 bytes, satisfying Source.
func (bg *ByteGenerator) Float() float64 {
	b0 := bg.Next()
	b1 := bg.Next()
	b2 := bg.Next()
	b3 := bg.Next()

	return bytesToFloat([4]byte{b0, b1, b2, b3})
}

func (bg *ByteGenerator) generateRound() {
	h := hmac.New(sha256.New, []byte(bg.serverSeed))
	message := fmt.Sprintf("%s:%d:%d", bg.clientSeed, bg.nonce, bg.currentRound)
	h.Write([]byte(message))
	copy(bg.buffer[:], h.Sum(nil))
}

// bytesToFloat converts exactly 4 bytes to a float64 in [0, 1).
func bytesToFloat(bytes [4]byte) float64 {
	result := 0.0
	for i, b := range bytes {
		divider := math.Pow(256, float64(i+1))
		result += float64(b) / divider
	}
	return result
}

// IntN returns a uniform integer in [0, n) drawn from src. n must be > 0.
func IntN(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	v := int(src.Float() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// Chance returns true with probability p (clamped to [0, 1]).
func Chance(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return src.Float() < p
}
