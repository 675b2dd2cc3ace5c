package chess

// PieceID is the stable identity of a piece within one match.
// IDs are assigned in placement order starting at 0.
type PieceID int

// Piece is a chess piece. Its square is tracked by the Board, not the piece.
type Piece struct {
	id        PieceID
	kind      PieceKind
	colour    Colour
	moveCount int
}

// NewPiece creates an unmoved piece.
func NewPiece(id PieceID, kind PieceKind, colour Colour) *Piece {
	return &Piece{id: id, kind: kind, colour: colour}
}

// ID returns the stable identity of the piece.
func (p *Piece) ID() PieceID {
	return p.id
}

// Kind returns the piece variant.
func (p *Piece) Kind() PieceKind {
	return p.kind
}

// Colour returns the owning colour.
func (p *Piece) Colour() Colour {
	return p.colour
}

// MoveCount returns how many times the piece has moved.
func (p *Piece) MoveCount() int {
	return p.moveCount
}

// IncreaseMoveCount records a move of the piece.
func (p *Piece) IncreaseMoveCount() {
	p.moveCount++
}

// DecreaseMoveCount takes back a recorded move.
func (p *Piece) DecreaseMoveCount() {
	p.moveCount--
}

// String returns the single character display tag.
func (p *Piece) String() string {
	return string(p.kind.Letter())
}
