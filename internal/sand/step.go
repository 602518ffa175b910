package sand

// Coin is a fair random bit source. *core.RNG satisfies it; tests substitute
// scripted sources.
type Coin interface {
	Bool() bool
}

// Step reads cur and writes the following frame into next. next is cleared
// first; cur is not modified. Cells are visited column by column, top to
// bottom, and the coin is drawn once for every particle that is blocked
// directly below.
func Step(cur, next *Grid, coin Coin) {
	next.Clear()
	rows := cur.rows
	for col := 0; col < cur.cols; col++ {
		for row := 0; row < rows; row++ {
			c := cur.cells[cur.index(col, row)]
			if !c.Enabled {
				continue
			}
			below, ok := cur.At(col, row+1)
			switch {
			case !ok:
				place(next, col, row, c)
			case below.Enabled:
				settle(cur, next, col, row, c, coin)
			default:
				fall(cur, next, col, row, c)
			}
		}
	}
}

// place marks the destination occupied without touching its velocity.
func place(next *Grid, col, row int, c Cell) {
	next.Update(col, row, func(n *Cell) {
		n.Enabled = true
		n.Kind = c.Kind
		n.Tint = c.Tint
	})
}

func settle(cur, next *Grid, col, row int, c Cell, coin Coin) {
	leftEmpty := cur.Vacant(col-1, row+1)
	rightEmpty := cur.Vacant(col+1, row+1)

	direction := -1
	if coin.Bool() {
		direction = 1
	}

	switch {
	case leftEmpty && rightEmpty:
		place(next, col+direction, row+1, c)
	case leftEmpty:
		place(next, col-1, row+1, c)
	case rightEmpty:
		place(next, col+1, row+1, c)
	default:
		place(next, col, row, c)
	}
}

func fall(cur, next *Grid, col, row int, c Cell) {
	velocity := c.Velocity
	newRow := row + velocity
	if newRow >= cur.rows {
		newRow = cur.rows - 1
		velocity = 0
	}

	for i := row + 1; i <= newRow; i++ {
		if cur.Occupied(col, i) {
			newRow = i - 1
			velocity = 0
			break
		}
	}
	if newRow < row {
		newRow = row + 1
	}

	next.Update(col, newRow, func(n *Cell) {
		n.Enabled = true
		n.Velocity = velocity + 1
		n.Kind = c.Kind
		n.Tint = c.Tint
	})
}
