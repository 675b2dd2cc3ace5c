package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/render"
)

const helpText = `Enter a source square (e2), then a target square (e4),
or a whole move on one line (e2-e4, e2 e4, e2e4).
Commands: fen, help, quit
`

// session drives one match from player input until checkmate or end of input.
type session struct {
	cfg      *config.Config
	match    *engine.Match
	renderer *render.BoardRenderer
	in       lineReader
	out      io.Writer
	logger   *log.Logger

	// notice is shown under the board on the next redraw.
	notice string
}

func newSession(cfg *config.Config, match *engine.Match, in lineReader, logger *log.Logger) *session {
	return &session{
		cfg:      cfg,
		match:    match,
		renderer: render.NewBoardRenderer(cfg.OutputFile, cfg.Display),
		in:       in,
		out:      cfg.OutputFile,
		logger:   logger,
	}
}

// newMatch creates the match described by the configuration.
func newMatch(cfg *config.Config, logger *log.Logger) (*engine.Match, error) {
	if cfg.Input.FEN != "" {
		return engine.NewMatchFromFEN(cfg.Input.FEN, engine.WithLogger(logger))
	}
	return engine.NewMatch(engine.WithLogger(logger)), nil
}

// run plays until checkmate, quit or end of input. Only output failures are
// returned; player mistakes are reported and the player is asked again.
func (s *session) run() error {
	for !s.match.IsCheckMate() {
		if err := s.redraw(nil); err != nil {
			return err
		}

		line, err := s.in.ReadLine("Source" + s.cfg.Input.Prompt)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		done, err := s.handle(strings.TrimSpace(line))
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	return s.redraw(nil)
}

// handle processes one line read at the source prompt.
func (s *session) handle(line string) (done bool, err error) {
	switch strings.ToLower(line) {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "help":
		s.notice = helpText
		return false, nil
	case "fen":
		s.notice = s.match.FEN()
		return false, nil
	}

	if len(line) > 2 {
		mv, err := chess.ParseMove(line)
		if err != nil {
			s.report(err)
			return false, nil
		}
		s.move(mv.From, mv.To)
		return false, nil
	}

	source, err := chess.ParseChessPosition(line)
	if err != nil {
		s.report(err)
		return false, nil
	}
	moves, err := s.match.PossibleMoves(source)
	if err != nil {
		s.report(err)
		return false, nil
	}

	if s.cfg.Display.HighlightMoves {
		if err := s.redraw(&moves); err != nil {
			return false, err
		}
	}

	line, err = s.in.ReadLine("Target" + s.cfg.Input.Prompt)
	if err == io.EOF {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	target, err := chess.ParseChessPosition(line)
	if err != nil {
		s.report(err)
		return false, nil
	}
	s.move(source, target)
	return false, nil
}

// move performs a move and queues a notice describing the result.
func (s *session) move(source, target chess.ChessPosition) {
	captured, err := s.match.PerformMove(source, target)
	if err != nil {
		s.report(err)
		return
	}
	if captured != nil {
		s.notice = fmt.Sprintf("Captured %v %v", captured.Colour(), captured.Kind())
	}
	if s.cfg.Verbosity >= config.Verbose {
		s.logger.Printf("match %s: position %s", s.match.ID(), s.match.FEN())
	}
}

func (s *session) report(err error) {
	s.notice = "Error: " + err.Error()
}

// redraw clears the screen and prints the match, then any pending notice.
// With moves the board alone is drawn with those squares highlighted.
func (s *session) redraw(moves *chess.MoveMatrix) error {
	if err := s.renderer.ClearScreen(); err != nil {
		return err
	}

	var err error
	if moves != nil {
		err = s.renderer.RenderBoard(s.match.Pieces(), moves)
	} else {
		err = s.renderer.RenderMatch(s.match, nil)
	}
	if err != nil {
		return err
	}

	if s.notice != "" {
		_, err = fmt.Fprintln(s.out, s.notice)
		s.notice = ""
	}
	return err
}
