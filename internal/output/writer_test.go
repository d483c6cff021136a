package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/pgn-tree-go/internal/chess"
	"github.com/lgbarn/pgn-tree-go/internal/config"
	"github.com/lgbarn/pgn-tree-go/internal/engine"
	"github.com/lgbarn/pgn-tree-go/internal/game"
)

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.NewConfigBuilder().
		WithMaxLineLength(40).
		WithNewline("\r\n").
		WithMoveCursor(true).
		WithHeaders(false).
		Build()

	assert.Equal(t, Options{MaxWidth: 40, Newline: "\r\n", ShowMoveCursor: true}, OptionsFromConfig(cfg.Output))
}

// TestPGNWriter_WriteGame verifies PGN writer outputs correct format
func TestPGNWriter_WriteGame(t *testing.T) {
	g := newGame(t, "", "e4", "e5", "Nf3")
	g.Header.AddAll("Event", "Test", "White", "Fischer", "Result", "1-0")

	var buf bytes.Buffer
	writer := NewPGNWriter(&buf, config.NewConfig())
	require.NoError(t, writer.WriteGame(g))
	require.NoError(t, writer.Flush())
	require.NoError(t, writer.Close())

	want := "[Event \"Test\"]\n[White \"Fischer\"]\n[Result \"1-0\"]\n\n1. e4 e5 2. Nf3 1-0\n\n"
	assert.Equal(t, want, buf.String())
}

func TestPGNWriter_Status(t *testing.T) {
	g := newGame(t, "", "f3", "e5", "g4", "Qh4#")
	cfg := config.NewConfigBuilder().WithStatus(true).WithHeaders(false).Build()

	var buf bytes.Buffer
	require.NoError(t, NewPGNWriter(&buf, cfg).WriteGame(g))

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "; rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3 checkmate", lines[0])
	assert.Equal(t, "1. f3 e5 2. g4 Qh4#", lines[1])
}

// TestJSONWriter_WriteGame verifies JSON writer outputs correct format
func TestJSONWriter_WriteGame(t *testing.T) {
	g := newGame(t, "", "e4", "e5", "Nf3")
	g.Header.AddAll("White", "Fischer", "Result", "1-0")
	require.True(t, g.CreateVariationFromSAN("Nc3"))

	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithStatus(true).Build()
	writer := NewJSONWriter(&buf, cfg)
	require.NoError(t, writer.WriteGame(g))
	assert.Zero(t, buf.Len(), "batch writer should not write before Flush")
	require.NoError(t, writer.Flush())

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.Games, 1)

	jg := out.Games[0]
	assert.Equal(t, g.ID.String(), jg.ID)
	assert.Equal(t, "Fischer", jg.Tags["White"])
	assert.Equal(t, "1-0", jg.Result)
	assert.Equal(t, 3, jg.PlyCount)
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", jg.InitialFEN)
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2", jg.FinalFEN)
	require.NotNil(t, jg.Status)
	assert.False(t, jg.Status.Check)

	require.Len(t, jg.Moves, 3)
	nf3 := jg.Moves[2]
	assert.Equal(t, "Nf3", nf3.SAN)
	assert.Equal(t, "white", nf3.Color)
	assert.Equal(t, "knight", nf3.Piece)
	assert.Equal(t, "g1", nf3.From)
	assert.Equal(t, "f3", nf3.To)
	assert.Equal(t, 2, nf3.MoveNumber)
	require.Len(t, nf3.Variations, 1)
	assert.False(t, nf3.Variations[0].Continuation)
	require.Len(t, nf3.Variations[0].Moves, 1)
	assert.Equal(t, "Nc3", nf3.Variations[0].Moves[0].SAN)
}

func TestJSONWriterSingle(t *testing.T) {
	g := newGame(t, "", "e4", "d5", "exd5")
	g.Annotate(chess.Comment("{open}"))

	var buf bytes.Buffer
	writer := NewJSONWriterSingle(&buf, config.NewConfig())
	require.NoError(t, writer.WriteGame(g))

	var jg JSONGame
	require.NoError(t, json.Unmarshal(buf.Bytes(), &jg))
	assert.Equal(t, "*", jg.Result)
	assert.Nil(t, jg.Status)
	require.Len(t, jg.Moves, 3)
	assert.Equal(t, "pawn", jg.Moves[2].Captured)
	assert.Equal(t, []string{"{open}"}, jg.Moves[2].Comments)
	assert.NoError(t, writer.Close())
}

// TestGameWriter_Interface verifies that writers implement the interface
func TestGameWriter_Interface(t *testing.T) {
	cfg := config.NewConfig()
	var buf bytes.Buffer

	var _ GameWriter = NewPGNWriter(&buf, cfg)
	var _ GameWriter = NewJSONWriter(&buf, cfg)

	assert.IsType(t, &PGNWriter{}, NewGameWriter(&buf, cfg))
	cfg.Output.JSONFormat = true
	assert.IsType(t, &JSONWriter{}, NewGameWriter(&buf, cfg))
}

// TestJSONWriter_Close verifies Close flushes pending games
func TestJSONWriter_Close(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf, config.NewConfig())
	require.NoError(t, writer.WriteGame(newGame(t, "", "e4")))
	require.NoError(t, writer.Close())
	assert.NotZero(t, buf.Len(), "expected output after Close")
}

func TestOutputGamesJSON(t *testing.T) {
	var buf bytes.Buffer
	games := []*game.Game{newGame(t, "", "e4"), newGame(t, "", "d4")}
	require.NoError(t, OutputGamesJSON(games, config.NewConfig(), &buf))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.Games, 2)
	assert.Equal(t, "d4", out.Games[1].Moves[0].SAN)
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "ongoing", StatusText(engine.Status{}))
	assert.Equal(t, "check", StatusText(engine.Status{Check: true}))
	assert.Equal(t, "checkmate", StatusText(engine.Status{Check: true, Checkmate: true}))
	assert.Equal(t, "stalemate,insufficient-material", StatusText(engine.Status{Stalemate: true, InsufficientMaterial: true}))
}
