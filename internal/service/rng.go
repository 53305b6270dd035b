package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"casino-wagering-engine/internal/core/domain"
)

// drawWidth is the number of bytes consumed per draw.
const drawWidth = 4

// DrawStream yields a reproducible sequence of uniform draws from one
// (serverSeed, clientSeed, nonce) triple. Bytes come from successive
// HMAC-SHA256 blocks keyed by the server seed over "clientSeed:nonce:block",
// so the same triple always replays the same sequence.
type DrawStream struct {
	serverSeed string
	clientSeed string
	nonce      uint64
	block      uint64
	buf        []byte
	off        int
}

// NewDrawStream validates the seed material and opens a stream.
func NewDrawStream(serverSeed, clientSeed string, nonce uint64) (*DrawStream, error) {
	if serverSeed == "" {
		return nil, fmt.Errorf("empty server seed")
	}
	if clientSeed == "" {
		return nil, fmt.Errorf("empty client seed")
	}
	return &DrawStream{
		serverSeed: serverSeed,
		clientSeed: clientSeed,
		nonce:      nonce,
	}, nil
}

// Next returns a uniform index in [0, spaceSize). Out-of-range raw draws
// are rejected and redrawn so no index is favored by modulo bias.
// A non-positive spaceSize is a programming-contract violation.
func (d *DrawStream) Next(spaceSize int) int {
	if spaceSize <= 0 {
		panic(fmt.Sprintf("rng: sample space size must be positive, got %d", spaceSize))
	}
	space := uint64(spaceSize)
	// Largest multiple of space that fits in 32 bits; draws at or above
	// it are discarded.
	limit := (uint64(1) << 32) / space * space
	for {
		v := uint64(d.nextUint32())
		if v < limit {
			return int(v % space)
		}
	}
}

func (d *DrawStream) nextUint32() uint32 {
	if d.off+drawWidth > len(d.buf) {
		d.refill()
	}
	v := binary.BigEndian.Uint32(d.buf[d.off:])
	d.off += drawWidth
	return v
}

func (d *DrawStream) refill() {
	mac := hmac.New(sha256.New, []byte(d.serverSeed))
	fmt.Fprintf(mac, "%s:%d:%d", d.clientSeed, d.nonce, d.block)
	d.buf = mac.Sum(nil)
	d.off = 0
	d.block++
}

// Resolve derives one uniform index in [0, spaceSize) from seed material.
// It is a single-draw convenience over DrawStream.
func Resolve(serverSeed, clientSeed string, nonce uint64, spaceSize int) (int, error) {
	stream, err := NewDrawStream(serverSeed, clientSeed, nonce)
	if err != nil {
		return 0, err
	}
	return stream.Next(spaceSize), nil
}

// RNGResolver is the production ports.OutcomeResolver. All derivation is
// pure and side-effect-free.
type RNGResolver struct{}

// NewRNGResolver creates the deterministic outcome resolver.
func NewRNGResolver() *RNGResolver {
	return &RNGResolver{}
}

// SlotGrid fills a 5x3 grid from one draw stream, reel by reel. A single
// nonce drives the whole grid so one proof covers the full spin.
func (r *RNGResolver) SlotGrid(serverSeed, clientSeed string, nonce uint64) (domain.SlotGrid, error) {
	var grid domain.SlotGrid
	stream, err := NewDrawStream(serverSeed, clientSeed, nonce)
	if err != nil {
		return grid, err
	}
	stripLen := len(domain.ReelStrip)
	for reel := 0; reel < domain.SlotReels; reel++ {
		for row := 0; row < domain.SlotRows; row++ {
			grid[reel][row] = domain.ReelStrip[stream.Next(stripLen)]
		}
	}
	return grid, nil
}

// RoulettePocket draws one European wheel pocket (0-36).
func (r *RNGResolver) RoulettePocket(serverSeed, clientSeed string, nonce uint64) (int, error) {
	return Resolve(serverSeed, clientSeed, nonce, domain.RoulettePockets)
}

// JackpotRoll draws the progressive jackpot trigger for a slot spin: the
// sixteenth draw of the spin's stream, after the fifteen grid draws, so
// an auditor can reproduce it from the same revealed seed material.
// Returns a uniform index in [0, odds); 0 wins the pool.
func (r *RNGResolver) JackpotRoll(serverSeed, clientSeed string, nonce uint64, odds int) (int, error) {
	stream, err := NewDrawStream(serverSeed, clientSeed, nonce)
	if err != nil {
		return 0, err
	}
	stripLen := len(domain.ReelStrip)
	for i := 0; i < domain.SlotReels*domain.SlotRows; i++ {
		stream.Next(stripLen)
	}
	return stream.Next(odds), nil
}
