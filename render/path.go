package render

import (
	"strings"

	"github.com/yourloops/basalviz/util"
)

// Op is a drawing command verb.
type Op byte

const (
	MoveTo Op = 'M'
	LineTo Op = 'L'
)

// Command is one drawing instruction.
type Command struct {
	Op Op
	X  float64
	Y  float64
}

// Path is an ordered list of drawing commands.
type Path []Command

func (p *Path) moveTo(x, y float64) { *p = append(*p, Command{Op: MoveTo, X: x, Y: y}) }
func (p *Path) lineTo(x, y float64) { *p = append(*p, Command{Op: LineTo, X: x, Y: y}) }

// MoveCount returns the number of disjoint runs in the path.
func (p Path) MoveCount() int {
	n := 0
	for _, c := range p {
		if c.Op == MoveTo {
			n++
		}
	}
	return n
}

// PointsAtY counts commands landing on drawing coordinate y.
func (p Path) PointsAtY(y float64) int {
	n := 0
	for _, c := range p {
		if c.Y == y {
			n++
		}
	}
	return n
}

// String serializes the path as "M x,y L x,y ...".
func (p Path) String() string {
	var sb strings.Builder
	for i, c := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte(c.Op))
		sb.WriteByte(' ')
		sb.WriteString(util.FormatCoord(c.X))
		sb.WriteByte(',')
		sb.WriteString(util.FormatCoord(c.Y))
	}
	return sb.String()
}
