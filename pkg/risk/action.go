package risk

// Action is the closed set of moves a player can submit on their turn. The
// engine and its callers switch over the concrete types exhaustively; adding
// a sixth action means touching those switches, which is the point.
type Action interface {
	isAction()
}

// Reinforce places count troops on an owned territory during the reinforce
// phase.
type Reinforce struct {
	Territory string
	Count     int
}

// Attack rolls the given number of dice from an owned territory against an
// adjacent enemy territory.
type Attack struct {
	From string
	To   string
	Dice int
}

// EndAttack leaves the attack phase and enters fortify.
type EndAttack struct{}

// Fortify moves troops between two owned adjacent territories, once per turn.
type Fortify struct {
	From  string
	To    string
	Count int
}

// EndTurn finishes the turn from the attack or fortify phase.
type EndTurn struct{}

func (Reinforce) isAction() {}
func (Attack) isAction()    {}
func (EndAttack) isAction() {}
func (Fortify) isAction()   {}
func (EndTurn) isAction()   {}
