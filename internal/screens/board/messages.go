package board

import "github.com/quizgrid/quizgrid/internal/catalog"

// taskDueMsg is sent when a scheduled game task's delay has elapsed.
type taskDueMsg struct {
	id    uint64
	owner string
}

// focusTarget is the prompt control holding keyboard focus.
type focusTarget int

const (
	focusNone focusTarget = iota
	focusInput
	focusSubmit
	focusClose
)

// hitbox is a clickable screen region in content coordinates.
type hitbox struct {
	x, y, w, h int
	target     hitTarget
}

func (h hitbox) contains(x, y int) bool {
	return x >= h.x && x < h.x+h.w && y >= h.y && y < h.y+h.h
}

type hitKind int

const (
	hitTile hitKind = iota
	hitInput
	hitSubmit
	hitClose
)

// hitTarget is what a click on a hitbox activates.
type hitTarget struct {
	kind hitKind
	tile catalog.TileID
}
