package script

import (
	"fmt"
	"strings"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/tkrell/hitbox/pkg/input"
	"github.com/tkrell/hitbox/pkg/shape"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms shape script source before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with script-defined variables of the same name.
//
//  2. Kebab-case to underscore: convex-hull -> convex_hull
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when the hyphen sits between identifier characters, so minus
		// expressions like (- x 1) survive.
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types
// ---------------------------------------------------------------------------

// sexpShape wraps a shape.Shape so it can be passed between builtins.
type sexpShape struct {
	s shape.Shape
}

func (s *sexpShape) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("%v", s.s)
}
func (s *sexpShape) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string. Returns the
// keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments. Keywords
// are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toInt extracts an int from a Sexp, truncating floats.
func toInt(s zygo.Sexp) (int, error) {
	f, err := toFloat64(s)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// toBool extracts a bool from a Sexp.
func toBool(s zygo.Sexp) (bool, error) {
	if b, ok := s.(*zygo.SexpBool); ok {
		return b.Val, nil
	}
	return false, fmt.Errorf("expected bool, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_right) and plain strings ("right").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

// toShape extracts a shape.Shape from a sexpShape.
func toShape(s zygo.Sexp) (shape.Shape, error) {
	if ss, ok := s.(*sexpShape); ok {
		return ss.s, nil
	}
	return nil, fmt.Errorf("expected shape, got %T (%s)", s, s.SexpString(nil))
}

// toButton converts a keyword or string to an input.Button.
func toButton(s zygo.Sexp) (input.Button, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, fmt.Errorf("expected button keyword (:left, :right, :middle): %w", err)
	}
	switch name {
	case "left":
		return input.ButtonLeft, nil
	case "right":
		return input.ButtonRight, nil
	case "middle":
		return input.ButtonMiddle, nil
	}
	return 0, fmt.Errorf("invalid button %q, expected left, right, or middle", name)
}

// toPoints converts a flat list of 2n numbers into n points.
func toPoints(args []zygo.Sexp) ([]shape.Point, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("expected an even number of coordinates, got %d", len(args))
	}
	pts := make([]shape.Point, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		x, err := toInt(args[i])
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, err)
		}
		y, err := toInt(args[i+1])
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i+1, err)
		}
		pts = append(pts, shape.Pt(x, y))
	}
	return pts, nil
}

func wrapShape(s shape.Shape) zygo.Sexp {
	return &sexpShape{s: s}
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the shape DSL builtins into a zygomys
// environment. Interactive builtins (click, hover, right-click) drive inj.
//
// Source code must be preprocessed with preprocessSource() before evaluation
// so that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, inj input.Injector) {

	// -----------------------------------------------------------------------
	// Constructors
	// -----------------------------------------------------------------------

	// (point 10 20)
	env.AddFunction("point", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pts, err := toPoints(args)
		if err != nil || len(pts) != 1 {
			return zygo.SexpNull, fmt.Errorf("point requires exactly 2 coordinates")
		}
		return wrapShape(pts[0]), nil
	})

	// (rect 0 0 100 50)
	env.AddFunction("rect", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pts, err := toPoints(args)
		if err != nil || len(pts) != 2 {
			return zygo.SexpNull, fmt.Errorf("rect requires exactly 4 coordinates")
		}
		return wrapShape(shape.NewRect(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)), nil
	})

	// (circle 200 200 40)
	env.AddFunction("circle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("circle requires center x, center y, and radius")
		}
		x, err := toInt(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle: x: %w", err)
		}
		y, err := toInt(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle: y: %w", err)
		}
		r, err := toFloat64(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle: radius: %w", err)
		}
		return wrapShape(shape.NewCircle(x, y, r)), nil
	})

	// (triangle 0 0 100 0 50 80)
	env.AddFunction("triangle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pts, err := toPoints(args)
		if err != nil || len(pts) != 3 {
			return zygo.SexpNull, fmt.Errorf("triangle requires exactly 6 coordinates")
		}
		return wrapShape(shape.NewTriangle(pts[0], pts[1], pts[2])), nil
	})

	// (quad 0 0 100 10 90 100 10 90)
	env.AddFunction("quad", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pts, err := toPoints(args)
		if err != nil || len(pts) != 4 {
			return zygo.SexpNull, fmt.Errorf("quad requires exactly 8 coordinates")
		}
		return wrapShape(shape.NewQuad(pts[0], pts[1], pts[2], pts[3])), nil
	})

	// (polygon 0 0 100 0 100 100 0 100)
	env.AddFunction("polygon", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pts, err := toPoints(args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("polygon: %w", err)
		}
		p, err := shape.NewPolygon(pts)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("polygon: %w", err)
		}
		return wrapShape(p), nil
	})

	// (null-shape)
	env.AddFunction("null_shape", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return wrapShape(shape.Null{}), nil
	})

	// -----------------------------------------------------------------------
	// Set operations
	// -----------------------------------------------------------------------

	setOps := map[string]func(a, b shape.Shape) (shape.Shape, error){
		"union":          shape.Union,
		"intersection":   shape.Intersection,
		"difference":     shape.Difference,
		"sym_difference": shape.SymmetricDifference,
	}
	for opName, opFn := range setOps {
		fn := opFn
		env.AddFunction(opName, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 2 {
				return zygo.SexpNull, fmt.Errorf("%s requires exactly 2 shapes", name)
			}
			a, err := toShape(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
			}
			b, err := toShape(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
			}
			res, err := fn(a, b)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
			}
			return wrapShape(res), nil
		})
	}

	// -----------------------------------------------------------------------
	// Constructive transforms
	// -----------------------------------------------------------------------

	// (buffer s 10 :resolution 32)
	env.AddFunction("buffer", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 2 {
			return zygo.SexpNull, fmt.Errorf("buffer requires a shape and a distance")
		}
		s, err := toShape(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("buffer: %w", err)
		}
		d, err := toFloat64(pa.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("buffer: distance: %w", err)
		}
		resolution := 16
		if v, ok := pa.kw["resolution"]; ok {
			resolution, err = toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("buffer: resolution: %w", err)
			}
		}
		res, err := shape.Buffer(s, d, resolution)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("buffer: %w", err)
		}
		return wrapShape(res), nil
	})

	// (convex-hull s)
	env.AddFunction("convex_hull", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		s, err := oneShape(name, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		res, err := shape.ConvexHull(s)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("convex-hull: %w", err)
		}
		return wrapShape(res), nil
	})

	// (envelope s)
	env.AddFunction("envelope", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		s, err := oneShape(name, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return wrapShape(shape.Envelope(s)), nil
	})

	// (simplify s 5 :preserve-topology false)
	env.AddFunction("simplify", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 2 {
			return zygo.SexpNull, fmt.Errorf("simplify requires a shape and a tolerance")
		}
		s, err := toShape(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("simplify: %w", err)
		}
		tol, err := toFloat64(pa.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("simplify: tolerance: %w", err)
		}
		preserve := true
		if v, ok := pa.kw["preserve-topology"]; ok {
			preserve, err = toBool(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("simplify: preserve-topology: %w", err)
			}
		}
		res, err := shape.Simplify(s, tol, preserve)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("simplify: %w", err)
		}
		return wrapShape(res), nil
	})

	// (min-rotated-rect s)
	env.AddFunction("min_rotated_rect", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		s, err := oneShape(name, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		res, err := shape.MinimumRotatedRectangle(s)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("min-rotated-rect: %w", err)
		}
		return wrapShape(res), nil
	})

	// -----------------------------------------------------------------------
	// Queries
	// -----------------------------------------------------------------------

	// (area s)
	env.AddFunction("area", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		s, err := oneShape(name, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &zygo.SexpFloat{Val: s.Area()}, nil
	})

	// (perimeter s)
	env.AddFunction("perimeter", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		s, err := oneShape(name, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &zygo.SexpFloat{Val: s.Length()}, nil
	})

	// (bounds s) -> [minx miny maxx maxy]
	env.AddFunction("bounds", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		s, err := oneShape(name, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		minX, minY, maxX, maxY := s.Bounds()
		return &zygo.SexpArray{Val: []zygo.Sexp{
			&zygo.SexpFloat{Val: minX},
			&zygo.SexpFloat{Val: minY},
			&zygo.SexpFloat{Val: maxX},
			&zygo.SexpFloat{Val: maxY},
		}}, nil
	})

	// (center s)
	env.AddFunction("center", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		s, err := oneShape(name, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return wrapShape(s.Center()), nil
	})

	// (contains s 10 20) or (contains s (point 10 20))
	env.AddFunction("contains", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 && len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("contains requires a shape and a point")
		}
		s, err := toShape(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("contains: %w", err)
		}
		var p shape.Point
		if len(args) == 3 {
			x, err := toInt(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("contains: x: %w", err)
			}
			y, err := toInt(args[2])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("contains: y: %w", err)
			}
			p = shape.Pt(x, y)
		} else {
			inner, err := toShape(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("contains: %w", err)
			}
			pt, ok := inner.(shape.Point)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("contains: expected a point, got %v", inner)
			}
			p = pt
		}
		return &zygo.SexpBool{Val: s.Contains(p)}, nil
	})

	// (random-point s :distribution "uniform")
	env.AddFunction("random_point", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("random-point requires exactly 1 shape")
		}
		s, err := toShape(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("random-point: %w", err)
		}
		dist := shape.Uniform
		if v, ok := pa.kw["distribution"]; ok {
			d, err := toKeywordString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("random-point: distribution: %w", err)
			}
			dist = shape.Distribution(d)
		}
		p, err := s.RandomPoint(dist)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("random-point: %w", err)
		}
		return wrapShape(p), nil
	})

	// -----------------------------------------------------------------------
	// Grid builder
	// -----------------------------------------------------------------------

	// (grid :origin-x 0 :origin-y 0 :cell-width 10 :cell-height 10
	//       :columns 2 :rows 2 :spacing-x 0 :spacing-y 0 :padding 0)
	env.AddFunction("grid", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		spec := shape.GridSpec{}

		fields := []struct {
			key string
			dst *int
		}{
			{"origin-x", &spec.OriginX},
			{"origin-y", &spec.OriginY},
			{"cell-width", &spec.CellWidth},
			{"cell-height", &spec.CellHeight},
			{"columns", &spec.Columns},
			{"rows", &spec.Rows},
			{"spacing-x", &spec.SpacingX},
			{"spacing-y", &spec.SpacingY},
			{"padding", &spec.Padding},
		}
		for _, f := range fields {
			if v, ok := pa.kw[f.key]; ok {
				n, err := toInt(v)
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("grid: %s: %w", f.key, err)
				}
				*f.dst = n
			}
		}

		cells := shape.Grid(spec)
		out := make([]zygo.Sexp, len(cells))
		for i, c := range cells {
			out[i] = wrapShape(c)
		}
		return &zygo.SexpArray{Val: out}, nil
	})

	// -----------------------------------------------------------------------
	// Interaction
	// -----------------------------------------------------------------------

	// (click s :button "right" :center true :duration-ms 100)
	env.AddFunction("click", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		s, opts, err := clickArgs(name, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		shape.Click(s, inj, opts)
		return zygo.SexpNull, nil
	})

	// (right-click s :center true)
	env.AddFunction("right_click", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		s, opts, err := clickArgs(name, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		shape.RightClick(s, inj, opts)
		return zygo.SexpNull, nil
	})

	// (hover s :center true :duration-ms 100)
	env.AddFunction("hover", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("hover requires exactly 1 shape")
		}
		s, err := toShape(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("hover: %w", err)
		}
		opts := shape.HoverOptions{}
		if v, ok := pa.kw["center"]; ok {
			opts.AtCenter, err = toBool(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("hover: center: %w", err)
			}
		}
		if v, ok := pa.kw["duration-ms"]; ok {
			ms, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("hover: duration-ms: %w", err)
			}
			opts.Duration = time.Duration(ms) * time.Millisecond
		}
		shape.Hover(s, inj, opts)
		return zygo.SexpNull, nil
	})
}

// oneShape extracts the single shape argument of a query builtin.
func oneShape(name string, args []zygo.Sexp) (shape.Shape, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%s requires exactly 1 shape", name)
	}
	s, err := toShape(args[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

// clickArgs parses the shared argument shape of click and right-click.
func clickArgs(name string, args []zygo.Sexp) (shape.Shape, shape.ClickOptions, error) {
	pa := parseArgs(args)
	opts := shape.ClickOptions{}
	if len(pa.positional) != 1 {
		return nil, opts, fmt.Errorf("%s requires exactly 1 shape", name)
	}
	s, err := toShape(pa.positional[0])
	if err != nil {
		return nil, opts, fmt.Errorf("%s: %w", name, err)
	}
	if v, ok := pa.kw["button"]; ok {
		opts.Button, err = toButton(v)
		if err != nil {
			return nil, opts, fmt.Errorf("%s: button: %w", name, err)
		}
	}
	if v, ok := pa.kw["center"]; ok {
		opts.AtCenter, err = toBool(v)
		if err != nil {
			return nil, opts, fmt.Errorf("%s: center: %w", name, err)
		}
	}
	if v, ok := pa.kw["duration-ms"]; ok {
		ms, err := toInt(v)
		if err != nil {
			return nil, opts, fmt.Errorf("%s: duration-ms: %w", name, err)
		}
		opts.Duration = time.Duration(ms) * time.Millisecond
	}
	return s, opts, nil
}
