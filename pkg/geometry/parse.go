package geometry

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/matzehuels/buttonstrip/pkg/errors"
)

var (
	pathLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Command", Pattern: `[MLAZ]`},
		{Name: "Number", Pattern: `[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`},
		{Name: "Whitespace", Pattern: `[\s,]+`},
	})

	pathParser = participle.MustBuild[pathDoc](
		participle.Lexer(pathLexer),
		participle.Elide("Whitespace"),
	)
)

type pathDoc struct {
	Segments []*segment `parser:"@@*"`
}

type segment struct {
	Move  *pointArgs `parser:"  'M' @@"`
	Line  *pointArgs `parser:"| 'L' @@"`
	Arc   *arcArgs   `parser:"| 'A' @@"`
	Close bool       `parser:"| @'Z'"`
}

type pointArgs struct {
	X float64 `parser:"@Number"`
	Y float64 `parser:"@Number"`
}

type arcArgs struct {
	RX       float64 `parser:"@Number"`
	RY       float64 `parser:"@Number"`
	Rotation float64 `parser:"@Number"`
	LargeArc float64 `parser:"@Number"`
	Sweep    float64 `parser:"@Number"`
	X        float64 `parser:"@Number"`
	Y        float64 `parser:"@Number"`
}

// ParsePath parses absolute SVG path data made of M, L, A and Z commands,
// the grammar produced by [Path.String].
func ParsePath(s string) (Path, error) {
	doc, err := pathParser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid path data")
	}

	if len(doc.Segments) == 0 {
		return nil, nil
	}
	p := make(Path, 0, len(doc.Segments))
	for _, seg := range doc.Segments {
		switch {
		case seg.Move != nil:
			p.MoveTo(seg.Move.X, seg.Move.Y)
		case seg.Line != nil:
			p.LineTo(seg.Line.X, seg.Line.Y)
		case seg.Arc != nil:
			a := seg.Arc
			p.ArcTo(a.RX, a.RY, a.Rotation, a.LargeArc != 0, a.Sweep != 0, a.X, a.Y)
		case seg.Close:
			p.Close()
		}
	}
	return p, nil
}

// MarshalText implements encoding.TextMarshaler using SVG path syntax.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Path) UnmarshalText(b []byte) error {
	parsed, err := ParsePath(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
