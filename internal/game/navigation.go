package game

// Next selects the following ply of the selected variation.
func (g *Game) Next() bool {
	g.log.Add("next()")
	return g.Current().Next()
}

// Prev selects the preceding ply. From the first ply of a branch it returns
// to the parent line at the position the branch started from.
func (g *Game) Prev() bool {
	g.log.Add("prev()")
	return g.prev()
}

func (g *Game) prev() bool {
	v := g.Current()
	if v.cursor == 0 && v.Parent != NoNode {
		return g.ascendToBranchStart()
	}
	return v.SelectMove(v.cursor - 1)
}

// RewindToBeginning steps back until the start of the main line.
func (g *Game) RewindToBeginning() {
	g.log.Add("rewindToBeginning()")
	for g.prev() {
	}
}

// SelectMove selects ply i of the selected variation.
func (g *Game) SelectMove(i int) bool {
	g.log.Addf("selectMove(%d)", i)
	return g.Current().SelectMove(i)
}

// ReplayToPly puts the first n plies of the selected variation on the board.
func (g *Game) ReplayToPly(n int) bool {
	return g.Current().ReplayToPly(n)
}

// AscendFromCurrentVariation returns to the parent line, selecting the move
// the branch hangs from.
func (g *Game) AscendFromCurrentVariation() bool {
	g.log.Add("ascendFromCurrentVariation()")
	v := g.Current()
	if v.Parent == NoNode {
		return false
	}
	parent := g.nodes[v.Parent]
	g.current = parent.ID
	return parent.SelectMove(v.BranchPly)
}

// AscendFromCurrentContinuation returns to the parent line, selecting the
// position the branch started from.
func (g *Game) AscendFromCurrentContinuation() bool {
	g.log.Add("ascendFromCurrentContinuation()")
	return g.ascendToBranchStart()
}

func (g *Game) ascendToBranchStart() bool {
	v := g.Current()
	if v.Parent == NoNode {
		return false
	}
	ply := v.BranchPly
	if !v.Continuation {
		ply--
	}
	parent := g.nodes[v.Parent]
	g.current = parent.ID
	return parent.SelectMove(ply)
}

// DescendIntoVariation enters the i-th variation of the selected move.
func (g *Game) DescendIntoVariation(i int) bool {
	g.log.Addf("descendIntoVariation(%d)", i)
	return g.descend(i, false)
}

// DescendIntoContinuation enters the i-th continuation of the selected move.
func (g *Game) DescendIntoContinuation(i int) bool {
	g.log.Addf("descendIntoContinuation(%d)", i)
	return g.descend(i, true)
}

// descend enters child i of the selected move when it is of the wanted kind.
func (g *Game) descend(i int, continuation bool) bool {
	v := g.Current()
	if v.cursor < 0 {
		return false
	}
	children := v.Entry(v.cursor).Children
	if i < 0 || i >= len(children) {
		return false
	}
	child := g.nodes[children[i]]
	if child.Continuation != continuation {
		return false
	}
	return g.enter(child)
}

// Undo takes back the selected move and forgets it along with every move
// recorded after it in the selected variation. Branches hanging from those
// moves become unreachable.
func (g *Game) Undo() bool {
	g.log.Add("undo()")
	return g.Current().undoCurrentMove()
}
