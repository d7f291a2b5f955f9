package indicators

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueKind enumerates the closed set of parameter payload types. Array-ness
// is not a separate kind; a Value of any kind holds one or more elements.
type ValueKind int

const (
	Number ValueKind = iota
	Select
	Boolean
	String
)

func (k ValueKind) String() string {
	switch k {
	case Number:
		return "number"
	case Select:
		return "select"
	case Boolean:
		return "boolean"
	case String:
		return "string"
	}
	return "unknown"
}

// Value is a closed sum over parameter payloads: a scalar or array of
// numbers, select choices, booleans, or strings. The zero Value is invalid.
type Value struct {
	kind  ValueKind
	nums  []float64
	strs  []string
	bools []bool
}

// Num returns a scalar number Value.
func Num(v float64) Value { return Value{kind: Number, nums: []float64{v}} }

// Nums returns a number-array Value.
func Nums(vs ...float64) Value { return Value{kind: Number, nums: vs} }

// Sel returns a scalar select Value.
func Sel(s string) Value { return Value{kind: Select, strs: []string{s}} }

// Sels returns a select-array Value.
func Sels(ss ...string) Value { return Value{kind: Select, strs: ss} }

// Bool returns a scalar boolean Value.
func Bool(b bool) Value { return Value{kind: Boolean, bools: []bool{b}} }

// Bools returns a boolean-array Value.
func Bools(bs ...bool) Value { return Value{kind: Boolean, bools: bs} }

// Str returns a scalar string Value.
func Str(s string) Value { return Value{kind: String, strs: []string{s}} }

// Strs returns a string-array Value.
func Strs(ss ...string) Value { return Value{kind: String, strs: ss} }

func (v Value) Kind() ValueKind { return v.kind }

// Len returns the number of elements the Value carries.
func (v Value) Len() int {
	switch v.kind {
	case Number:
		return len(v.nums)
	case Select, String:
		return len(v.strs)
	case Boolean:
		return len(v.bools)
	}
	return 0
}

// at returns the scalar element for instance i, clamping to the last element
// when i runs past the end (broadcast policy).
func (v Value) at(i int) Value {
	if n := v.Len() - 1; i > n {
		i = n
	}
	switch v.kind {
	case Number:
		return Num(v.nums[i])
	case Select:
		return Sel(v.strs[i])
	case Boolean:
		return Bool(v.bools[i])
	default:
		return Str(v.strs[i])
	}
}

// String renders the value the way it would be typed on a command line:
// scalars bare, arrays comma separated.
func (v Value) String() string {
	parts := make([]string, 0, v.Len())
	switch v.kind {
	case Number:
		for _, n := range v.nums {
			parts = append(parts, strconv.FormatFloat(n, 'g', -1, 64))
		}
	case Boolean:
		for _, b := range v.bools {
			parts = append(parts, strconv.FormatBool(b))
		}
	default:
		parts = append(parts, v.strs...)
	}
	return strings.Join(parts, ",")
}

// ParamSpec declares one named parameter of an indicator: its default value
// and the metadata a parameter editor needs to render it.
type ParamSpec struct {
	Default Value

	// Numeric bounds; advisory metadata for editors, not enforced here.
	Min, Max, Step float64
	HasRange       bool

	// Options lists the allowed choices for Select parameters.
	Options []string
}

// Param pairs a parameter name with its spec. Order matters: titles embed
// numeric values in declaration order.
type Param struct {
	Name string
	Spec ParamSpec
}

func numParam(def float64, min, max, step float64) ParamSpec {
	return ParamSpec{Default: Num(def), Min: min, Max: max, Step: step, HasRange: true}
}

// Resolved maps each parameter name to a concrete scalar for one instance.
type Resolved struct {
	vals map[string]Value
}

// Float returns the numeric value of name. Resolution guarantees presence.
func (r Resolved) Float(name string) float64 { return r.vals[name].nums[0] }

// Period returns the numeric value of name as an integer period.
func (r Resolved) Period(name string) int { return int(r.vals[name].nums[0]) }

// Text returns the select or string value of name.
func (r Resolved) Text(name string) string { return r.vals[name].strs[0] }

// Flag returns the boolean value of name.
func (r Resolved) Flag(name string) bool { return r.vals[name].bools[0] }

// resolve merges overrides onto the definition's parameter table and fans the
// result out into one Resolved set per instance. The instance count is the
// longest resolved array; shorter arrays broadcast by clamping to their last
// element.
func resolve(def *Definition, overrides map[string]Value) ([]Resolved, error) {
	if len(def.Params) == 0 {
		return nil, fmt.Errorf("%w: %s has an empty parameter table", ErrInvalidParams, def.Name)
	}

	known := make(map[string]ParamSpec, len(def.Params))
	for _, p := range def.Params {
		known[p.Name] = p.Spec
	}
	for name, v := range overrides {
		spec, ok := known[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s has no parameter %q", ErrInvalidParams, def.Name, name)
		}
		if v.Kind() != spec.Default.Kind() {
			return nil, fmt.Errorf("%w: %s.%s wants %s, got %s",
				ErrInvalidParams, def.Name, name, spec.Default.Kind(), v.Kind())
		}
		if v.Len() == 0 {
			return nil, fmt.Errorf("%w: %s.%s override is empty", ErrInvalidParams, def.Name, name)
		}
	}

	instances := 1
	arrays := make(map[string]Value, len(def.Params))
	for _, p := range def.Params {
		arr := p.Spec.Default
		if ov, ok := overrides[p.Name]; ok {
			arr = ov
		}
		if arr.Len() == 0 {
			return nil, fmt.Errorf("%w: %s.%s has no default", ErrInvalidParams, def.Name, p.Name)
		}
		arrays[p.Name] = arr
		if n := arr.Len(); n > instances {
			instances = n
		}
	}

	out := make([]Resolved, instances)
	for i := range out {
		vals := make(map[string]Value, len(def.Params))
		for name, arr := range arrays {
			vals[name] = arr.at(i)
		}
		out[i] = Resolved{vals: vals}
	}
	return out, nil
}

// paramTag renders the resolved numeric parameters for embedding in figure
// titles, in declaration order: "12" for a single period, "9/3/3" for three.
func paramTag(def *Definition, r Resolved) string {
	parts := make([]string, 0, len(def.Params))
	for _, p := range def.Params {
		if p.Spec.Default.Kind() != Number {
			continue
		}
		parts = append(parts, strconv.FormatFloat(r.Float(p.Name), 'g', -1, 64))
	}
	return strings.Join(parts, "/")
}
