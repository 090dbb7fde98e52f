package coords

import (
	"sort"
	"strings"
)

// Field is one named coordinate value passed to a keyword constructor.
type Field[E any] struct {
	Name  string
	Value E
}

// Named is shorthand for Field{Name: name, Value: v}.
func Named[E any](name string, v E) Field[E] { return Field[E]{Name: name, Value: v} }

// Gathered is the result of Gather.
type Gathered[E any] struct {
	Groups   Groups[E]
	Momentum bool
	// Extras holds the fields that are not coordinates, in input order.
	Extras []Field[E]
}

// momentumAliases maps momentum synonyms to the generic coordinate name.
var momentumAliases = map[string]string{
	"px":     "x",
	"py":     "y",
	"pt":     "rho",
	"pz":     "z",
	"E":      "t",
	"e":      "t",
	"energy": "t",
	"M":      "tau",
	"m":      "tau",
	"mass":   "tau",
}

var genericNames = map[string]bool{
	"x": true, "y": true, "rho": true, "phi": true,
	"z": true, "theta": true, "eta": true,
	"t": true, "tau": true,
}

// Canonical returns the generic coordinate name for name and whether name is
// a momentum synonym. ok is false for names that are not coordinates.
func Canonical(name string) (generic string, momentum, ok bool) {
	if genericNames[name] {
		return name, false, true
	}
	if g, found := momentumAliases[name]; found {
		return g, true, true
	}
	return "", false, false
}

// Gather validates a keyword construction and builds the coordinate groups.
func Gather[E any](fields ...Field[E]) (Gathered[E], error) {
	var out Gathered[E]
	values := make(map[string]E, len(fields))
	for _, f := range fields {
		generic, momentum, ok := Canonical(f.Name)
		if !ok {
			out.Extras = append(out.Extras, f)
			continue
		}
		if _, dup := values[generic]; dup {
			return Gathered[E]{}, Ambiguousf("duplicate coordinates (through momentum-aliases): %s", f.Name)
		}
		values[generic] = f.Value
		out.Momentum = out.Momentum || momentum
	}

	has := func(name string) bool { _, ok := values[name]; return ok }

	switch {
	case (has("x") || has("y")) && (has("rho") || has("phi")):
		return Gathered[E]{}, Ambiguousf("specify x= and y= or rho= and phi=, but not both")
	case has("x") && has("y"):
		out.Groups.Az = AzimuthalXY[E]{X: values["x"], Y: values["y"]}
	case has("rho") && has("phi"):
		out.Groups.Az = AzimuthalRhoPhi[E]{Rho: values["rho"], Phi: values["phi"]}
	default:
		return Gathered[E]{}, unrecognizedCombination(fields)
	}

	lon := countPresent(has, "z", "theta", "eta")
	if lon > 1 {
		return Gathered[E]{}, Ambiguousf("specify z= or theta= or eta=, but not more than one")
	}
	switch {
	case has("z"):
		out.Groups.Lon = LongitudinalZ[E]{Z: values["z"]}
	case has("theta"):
		out.Groups.Lon = LongitudinalTheta[E]{Theta: values["theta"]}
	case has("eta"):
		out.Groups.Lon = LongitudinalEta[E]{Eta: values["eta"]}
	}

	temp := countPresent(has, "t", "tau")
	if temp > 1 {
		return Gathered[E]{}, Ambiguousf("specify t= or tau=, but not more than one")
	}
	if temp == 1 && lon == 0 {
		return Gathered[E]{}, unrecognizedCombination(fields)
	}
	switch {
	case has("t"):
		out.Groups.Temp = TemporalT[E]{T: values["t"]}
	case has("tau"):
		out.Groups.Temp = TemporalTau[E]{Tau: values["tau"]}
	}
	return out, nil
}

func countPresent(has func(string) bool, names ...string) int {
	n := 0
	for _, name := range names {
		if has(name) {
			n++
		}
	}
	return n
}

func unrecognizedCombination[E any](fields []Field[E]) error {
	given := make([]string, 0, len(fields))
	for _, f := range fields {
		given = append(given, f.Name)
	}
	sort.Strings(given)
	return Unrecognizedf("unrecognized combination of coordinates %s, allowed combinations are: %s",
		strings.Join(given, ", "), AllowedCombinations())
}

// AllowedCombinations lists every accepted keyword combination.
func AllowedCombinations() string {
	var parts []string
	for _, dim := range []Dimension{Dim2, Dim3, Dim4} {
		for _, sys := range Systems(dim) {
			var names []string
			for _, k := range sys.Kinds() {
				for _, n := range k.Names() {
					names = append(names, n+"=")
				}
			}
			parts = append(parts, "("+strings.Join(names, " ")+")")
		}
	}
	return strings.Join(parts, " ")
}
