package columnar

import (
	"sort"

	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/dispatch"
	"github.com/hupe1980/hepvec/numeric"
)

// Field is a named column.
type Field = coords.Field[numeric.Array]

// F returns the column name=values.
func F(name string, values ...float64) Field { return coords.Named(name, numeric.Array(values)) }

// FromFields builds a column of vectors from named columns. Coordinate
// names must form one of the allowed combinations; every other column
// becomes a payload column. Length-one columns broadcast.
func FromFields(fields ...Field) (dispatch.Vector, error) {
	g, err := coords.Gather(fields...)
	if err != nil {
		return nil, err
	}
	flavor := coords.Generic
	if g.Momentum {
		flavor = coords.Momentum
	}
	c := dispatch.Class{Backend: dispatch.Columnar, Dimension: g.Groups.Dimension(), Flavor: flavor}
	return assemble(c, g.Groups, g.Extras)
}

// FromColumns is FromFields over a map, with payload columns in name order.
func FromColumns(cols map[string][]float64) (dispatch.Vector, error) {
	names := make([]string, 0, len(cols))
	for name := range cols {
		names = append(names, name)
	}
	sort.Strings(names)
	fields := make([]Field, len(names))
	for i, name := range names {
		fields[i] = coords.Named(name, numeric.Array(cols[name]))
	}
	return FromFields(fields...)
}

// New builds a vector of the given dimension and flavor from groups and
// payload columns.
func New(flavor coords.Flavor, g coords.Groups[numeric.Array], extras ...Field) (dispatch.Vector, error) {
	if !g.System().Valid() {
		return nil, coords.Unrecognizedf("incomplete coordinate groups %s", g.System())
	}
	c := dispatch.Class{Backend: dispatch.Columnar, Dimension: g.Dimension(), Flavor: flavor}
	return assemble(c, g, extras)
}

// Columns returns the columns of v, coordinates first, keyed by name.
func Columns(v dispatch.Vector) (map[string]numeric.Array, bool) {
	s, ok := v.(source)
	if !ok {
		return nil, false
	}
	d := s.data()
	out := make(map[string]numeric.Array)
	sys := d.groups.System()
	elems := d.groups.Elements(sys.Dimension())
	i := 0
	for _, k := range sys.Kinds() {
		for _, name := range k.Names() {
			out[name] = elems[i]
			i++
		}
	}
	for _, f := range d.extras {
		out[f.Name] = f.Value
	}
	return out, true
}
