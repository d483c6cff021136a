// Package hashing provides duplicate detection for chess games.
package hashing

import (
	"github.com/lgbarn/pgn-tree-go/internal/engine"
	"github.com/lgbarn/pgn-tree-go/internal/game"
)

// DuplicateDetector tracks seen final positions for duplicate game detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the main lines to have the same length
	useExactMatch bool
	// maxCapacity bounds the number of signatures kept, 0 for no bound
	maxCapacity int
	size        int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// PlyCount is the number of half-moves in the main line
	PlyCount int
	// WeakHash is a material signature for a second check
	WeakHash uint64
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature computes the signature of the last position of the main line of
// g. Variations and the selected move do not affect it.
func Signature(g *game.Game) GameSignature {
	root := g.Root()
	pos, _ := root.PositionAt(root.Len() - 1)
	return signatureOf(pos, root.Len())
}

func signatureOf(pos *engine.Position, plies int) GameSignature {
	return GameSignature{
		Hash:     GenerateZobristHash(pos),
		PlyCount: plies,
		WeakHash: WeakHash(pos),
	}
}

// CheckAndAdd checks if a game is a duplicate and adds it to the hash table.
// Returns true if the game is a duplicate. Once the detector is full, new
// games are still checked but no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(g *game.Game) bool {
	if g == nil {
		return false
	}
	return d.checkAndAdd(Signature(g))
}

func (d *DuplicateDetector) checkAndAdd(sig GameSignature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.PlyCount != b.PlyCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull reports whether the capacity limit has been reached.
// Always false for unlimited capacity.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.size = 0
	d.duplicateCount = 0
}
