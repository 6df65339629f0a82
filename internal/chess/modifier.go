package chess

// Modifier is the only way to change a Position. It writes to a staged copy
// of the state that the owning Position commits when the scope ends without
// error. A Modifier must not be retained past the call it was handed to.
type Modifier struct {
	state  *State
	closed bool
}

func (m *Modifier) close() {
	m.closed = true
}

func (m *Modifier) staged() *State {
	if m.closed {
		panic("chess: modifier used after its scope ended")
	}
	return m.state
}

// SetPieceAt places piece on sq. NoPiece clears the square.
func (m *Modifier) SetPieceAt(piece Piece, sq Square) {
	if !sq.IsValid() {
		return
	}
	m.staged().Squares[sq] = piece
}

// SetCurrentPlayer sets the side to move.
func (m *Modifier) SetCurrentPlayer(player Player) {
	m.staged().ToMove = player
}

// SetCastling replaces all castling rights.
func (m *Modifier) SetCastling(rights CastlingRights) {
	m.staged().Castling = rights
}

// RevokeCastling removes one castling right.
func (m *Modifier) RevokeCastling(player Player, wing Wing) {
	st := m.staged()
	st.Castling = st.Castling.Without(player, wing)
}

// SetEnPassantFile records the file of a double-stepped pawn, or NoFile.
func (m *Modifier) SetEnPassantFile(file int) {
	if file < 0 || file >= BoardSize {
		file = NoFile
	}
	m.staged().EnPassantFile = file
}

// SetHalfmoveClock sets the half-move clock.
func (m *Modifier) SetHalfmoveClock(n uint) {
	m.staged().HalfmoveClock = n
}

// SetMoveNumber sets the full move number.
func (m *Modifier) SetMoveNumber(n uint) {
	m.staged().MoveNumber = n
}

// Clear empties the board and resets auxiliary state.
func (m *Modifier) Clear() {
	*m.staged() = EmptyState()
}

// PieceAt reads the staged placement.
func (m *Modifier) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return m.staged().Squares[sq]
}

// CurrentPlayer reads the staged side to move.
func (m *Modifier) CurrentPlayer() Player {
	return m.staged().ToMove
}

// Castling reads the staged castling rights.
func (m *Modifier) Castling() CastlingRights {
	return m.staged().Castling
}

// HalfmoveClock reads the staged half-move clock.
func (m *Modifier) HalfmoveClock() uint {
	return m.staged().HalfmoveClock
}

// MoveNumber reads the staged full move number.
func (m *Modifier) MoveNumber() uint {
	return m.staged().MoveNumber
}

// FindKing returns the staged square of player's king, or NoSquare.
func (m *Modifier) FindKing(player Player) Square {
	return findPiece(m.staged(), NewPiece(player, King))
}

// EndTurn hands the move to the opponent, advancing the move number after Black.
func (m *Modifier) EndTurn() {
	st := m.staged()
	if st.ToMove == Black {
		st.MoveNumber++
	}
	st.ToMove = st.ToMove.Opponent()
}
