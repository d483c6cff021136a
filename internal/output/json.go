package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/pgn-tree-go/internal/chess"
	"github.com/lgbarn/pgn-tree-go/internal/config"
	"github.com/lgbarn/pgn-tree-go/internal/engine"
	"github.com/lgbarn/pgn-tree-go/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID             string            `json:"id"`
	Tags           map[string]string `json:"tags"`
	InitialFEN     string            `json:"initialFEN"`
	PrefixComments []string          `json:"prefixComments,omitempty"`
	Moves          []JSONMove        `json:"moves,omitempty"`
	Result         string            `json:"result"`
	PlyCount       int               `json:"plyCount"`
	FinalFEN       string            `json:"finalFEN"`
	Status         *JSONStatus       `json:"status,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int             `json:"moveNumber"`
	Color      string          `json:"color"` // "white" or "black"
	SAN        string          `json:"san"`
	From       string          `json:"from"`
	To         string          `json:"to"`
	Piece      string          `json:"piece"`
	Captured   string          `json:"captured,omitempty"`
	Promotion  string          `json:"promotion,omitempty"`
	Wildcard   bool            `json:"wildcard,omitempty"`
	NAGs       []string        `json:"nags,omitempty"`
	Comments   []string        `json:"comments,omitempty"`
	Variations []JSONVariation `json:"variations,omitempty"`
}

// JSONVariation is a line branching from a move. A continuation follows the
// move; any other variation replaces it.
type JSONVariation struct {
	Continuation   bool       `json:"continuation,omitempty"`
	PrefixComments []string   `json:"prefixComments,omitempty"`
	Moves          []JSONMove `json:"moves"`
}

// JSONStatus reports the terminal conditions of the final position.
type JSONStatus struct {
	Check                bool `json:"check"`
	Checkmate            bool `json:"checkmate"`
	Stalemate            bool `json:"stalemate"`
	Draw                 bool `json:"draw"`
	InsufficientMaterial bool `json:"insufficientMaterial"`
	ThreefoldRepetition  bool `json:"threefoldRepetition"`
	FiftyMoveRule        bool `json:"fiftyMoveRule"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGamesJSON outputs multiple games as a JSON array.
func OutputGamesJSON(games []*game.Game, cfg *config.Config, w io.Writer) error {
	jsonGames := make([]*JSONGame, len(games))
	for i, g := range games {
		jsonGames[i] = GameToJSON(g, cfg)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONOutput{Games: jsonGames})
}

// GameToJSON converts a game tree to JSON format. The final position is the
// end of the main line.
func GameToJSON(g *game.Game, cfg *config.Config) *JSONGame {
	root := g.Root()
	jg := &JSONGame{
		ID:       g.ID.String(),
		Tags:     copyTags(g.Header),
		Result:   g.Result(),
		PlyCount: root.Len(),
	}

	if start, ok := root.PositionAt(-1); ok {
		jg.InitialFEN = start.FEN()
	}
	final, _ := root.PositionAt(root.Len() - 1)
	jg.FinalFEN = final.FEN()
	if cfg.Output.ShowStatus {
		jg.Status = statusToJSON(final.Status())
	}

	jg.PrefixComments, _ = splitAnnotations(root.Slot(0))
	jg.Moves = convertMoveList(g, root)
	return jg
}

// copyTags copies the tag pairs into a map.
func copyTags(h *chess.Header) map[string]string {
	result := make(map[string]string, h.Len())
	for i := 0; i < h.Len(); i++ {
		key, value := h.At(i)
		result[key] = value
	}
	return result
}

// convertMoveList converts the moves of one line, with their branches.
func convertMoveList(g *game.Game, v *game.Variation) []JSONMove {
	result := make([]JSONMove, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		entry := v.Entry(i)
		jm := convertSingleMove(entry)
		jm.Comments, jm.NAGs = splitAnnotations(v.Slot(i + 1))

		for _, id := range entry.Children {
			child := g.Node(id)
			jv := JSONVariation{
				Continuation: child.Continuation,
				Moves:        convertMoveList(g, child),
			}
			jv.PrefixComments, _ = splitAnnotations(child.Slot(0))
			jm.Variations = append(jm.Variations, jv)
		}
		result = append(result, jm)
	}
	return result
}

// convertSingleMove converts a single move to JSON format.
func convertSingleMove(entry *game.HistoryEntry) JSONMove {
	move := entry.Move()
	jm := JSONMove{
		MoveNumber: entry.Context.MoveNumber,
		Color:      strings.ToLower(move.Piece.Colour().String()),
		SAN:        move.Text(),
		From:       move.From.String(),
		To:         move.To.String(),
		Piece:      pieceTypeName(move.Piece.Type()),
		Wildcard:   move.Wildcard,
	}
	if move.IsCapture() {
		jm.Captured = pieceTypeName(move.Captured.Type())
	}
	if move.Promotion != chess.Empty {
		jm.Promotion = pieceTypeName(move.Promotion.Type())
	}
	return jm
}

// splitAnnotations separates comments from glyphs.
func splitAnnotations(annotations []chess.Annotation) (comments, nags []string) {
	for _, a := range annotations {
		if a.Kind == chess.GlyphAnnotation {
			nags = append(nags, a.Text)
		} else {
			comments = append(comments, a.Text)
		}
	}
	return comments, nags
}

// statusToJSON copies the status flags.
func statusToJSON(s engine.Status) *JSONStatus {
	return &JSONStatus{
		Check:                s.Check,
		Checkmate:            s.Checkmate,
		Stalemate:            s.Stalemate,
		Draw:                 s.Draw,
		InsufficientMaterial: s.InsufficientMaterial,
		ThreefoldRepetition:  s.ThreefoldRepetition,
		FiftyMoveRule:        s.FiftyMoveRule,
	}
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(p chess.PieceType) string {
	if p == chess.NoPieceType {
		return ""
	}
	return strings.ToLower(p.String())
}
