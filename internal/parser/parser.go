package parser

import (
	"fmt"
	"io"

	"github.com/lgbarn/pgn-tree-go/internal/chess"
	"github.com/lgbarn/pgn-tree-go/internal/config"
	"github.com/lgbarn/pgn-tree-go/internal/errors"
	"github.com/lgbarn/pgn-tree-go/internal/game"
)

// Parser parses PGN input into game trees.
type Parser struct {
	games   []GameText
	next    int
	readErr error
	cfg     *config.Config

	// State of the game being parsed
	lexer        *Lexer
	currentToken *Token
	game         *game.Game
}

// NewParser creates a new parser for the given reader.
// If cfg is nil, a default config is created.
func NewParser(r io.Reader, cfg *config.Config) *Parser {
	data, err := io.ReadAll(r)
	p := NewStringParser(string(data), cfg)
	p.readErr = err
	return p
}

// NewStringParser creates a new parser over PGN text.
// If cfg is nil, a default config is created.
func NewStringParser(text string, cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Parser{
		games: SplitGames(Normalize(text)),
		cfg:   cfg,
	}
}

// Games returns the texts of the games not parsed yet.
func (p *Parser) Games() []GameText {
	return p.games[p.next:]
}

// ParseGame parses the next game from the input.
// Returns nil if no more games are available.
func (p *Parser) ParseGame() (*game.Game, error) {
	if p.readErr != nil {
		err := p.readErr
		p.readErr = nil
		p.next = len(p.games)
		return nil, fmt.Errorf("reading PGN: %w", err)
	}
	if p.next >= len(p.games) {
		return nil, nil
	}
	gt := p.games[p.next]
	p.next++
	return p.parseGameText(gt)
}

// ParseAllGames parses all games from the input. A game that fails to parse
// aborts the whole parse and no game is returned.
func (p *Parser) ParseAllGames() ([]*game.Game, error) {
	games := make([]*game.Game, 0, len(p.games))

	for {
		g, err := p.ParseGame()
		if err != nil {
			return nil, err
		}
		if g == nil {
			break
		}
		games = append(games, g)
	}

	return games, nil
}

// Parse parses every game in text.
func Parse(text string, cfg *config.Config) ([]*game.Game, error) {
	return NewStringParser(text, cfg).ParseAllGames()
}

// ParseGameText parses a single game produced by SplitGames.
func ParseGameText(gt GameText, cfg *config.Config) (*game.Game, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	p := &Parser{cfg: cfg}
	return p.parseGameText(gt)
}

// parseGameText builds a game from its tag pairs and movetext.
func (p *Parser) parseGameText(gt GameText) (*game.Game, error) {
	pairs, fen := ParseHeader(gt.HeaderText)
	g, err := game.New(fen, game.WithHeader(pairs...))
	if err != nil {
		return nil, &errors.ParseError{
			Err:      err,
			File:     p.cfg.CurrentInputFile,
			Line:     gt.Line,
			Expected: "a valid FEN tag",
			Got:      fmt.Sprintf("%q", fen),
		}
	}

	p.game = g
	p.lexer = newLexerAt(gt.MoveText, gt.Line)
	p.nextToken()
	defer func() {
		p.game = nil
		p.lexer = nil
		p.currentToken = nil
	}()

	if err := p.parseMoveList(); err != nil {
		return nil, err
	}
	if p.currentToken.Type == RAVEnd {
		return nil, p.newError(errors.ErrParseFailure, "", "\")\" outside a variation")
	}

	// Variations left open at the end of the text are closed
	for g.CloseBranch() {
	}
	return g, nil
}

// nextToken gets the next token from the lexer.
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// parseMoveList parses movetext until the end of the input, a closing
// parenthesis, or a result ending the main line.
func (p *Parser) parseMoveList() error {
	for {
		switch p.currentToken.Type {
		case EOFToken, RAVEnd:
			return nil
		case TerminatingResult:
			if p.game.Depth() == 0 {
				return nil
			}
			p.nextToken()
		case MoveNumber:
			p.nextToken()
		case CommentToken:
			p.game.Annotate(chess.Comment(p.currentToken.Text))
			p.nextToken()
		case NAGToken:
			p.game.Annotate(chess.Glyph(p.currentToken.Text))
			p.nextToken()
		case RAVStart, ContinuationStart:
			if err := p.parseVariant(); err != nil {
				return err
			}
		case MoveToken, NullMoveToken:
			if err := p.parseMove(); err != nil {
				return err
			}
		case ErrorToken:
			return p.newError(errors.ErrParseFailure, "\"}\"", "end of input inside a comment")
		default:
			return p.newError(errors.ErrParseFailure, "", p.currentToken.Type.String())
		}
	}
}

// parseMove applies one SAN or null move token.
func (p *Parser) parseMove() error {
	san := p.currentToken.Text
	if p.currentToken.Type == NullMoveToken {
		san = chess.NullMoveString
	}

	if _, err := p.game.AppendSAN(san); err != nil {
		return p.newError(&errors.MoveError{
			SAN: p.currentToken.Text,
			Ply: p.game.Position().PlyCount() + 1,
		}, "", "")
	}
	p.nextToken()
	return nil
}

// parseVariant parses a ( ... ) variation or a (* ... ) continuation hanging
// from the last move played.
func (p *Parser) parseVariant() error {
	if p.game.Depth() >= p.cfg.Parse.MaxVariationDepth {
		return p.newError(errors.ErrNestingTooDeep, "", fmt.Sprintf("depth %d", p.game.Depth()+1))
	}
	if err := p.game.OpenBranch(p.currentToken.Type == ContinuationStart); err != nil {
		return p.newError(err, "a move before the variation", p.currentToken.Text)
	}
	p.nextToken()

	if err := p.parseMoveList(); err != nil {
		return err
	}
	if p.currentToken.Type == RAVEnd {
		p.nextToken()
	}
	p.game.CloseBranch()
	return nil
}

// newError reports err at the current token.
func (p *Parser) newError(err error, expected, got string) error {
	return &errors.ParseError{
		Err:      err,
		File:     p.cfg.CurrentInputFile,
		Line:     p.currentToken.Line,
		Column:   p.currentToken.Column,
		Expected: expected,
		Got:      got,
	}
}
