package engine

// Kind is an opaque piece category. Two pieces match when their kinds are equal.
type Kind string

const (
	// NoKind marks an unset kind (e.g. a lane that has not generated anything yet).
	NoKind Kind = ""

	// Wildcard is a pool entry meaning "repeat the previously generated kind".
	Wildcard Kind = "*"
)

// Concrete reports whether k is a real kind rather than a sentinel.
func (k Kind) Concrete() bool {
	return k != NoKind && k != Wildcard
}

// Piece is a single token sitting in a lane.
type Piece struct {
	ID   int
	Kind Kind
}

// Player is the token the player controls. Its kind changes as it attacks.
type Player struct {
	Piece
}

// Attack compares the player against a piece. Equal kinds match and nothing
// changes; otherwise the two kinds are exchanged and false is returned.
func (p *Player) Attack(piece *Piece) bool {
	if p.Kind == piece.Kind {
		return true
	}
	p.Kind, piece.Kind = piece.Kind, p.Kind
	return false
}

// sequence hands out piece IDs that are unique within one board.
type sequence struct {
	next int
}

func (s *sequence) id() int {
	s.next++
	return s.next
}
