package calculator

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnknownCriterion = errors.New("unknown criterion")
	ErrUnknownOption    = errors.New("unknown option")
)

// Criteria is an ordered set of criteria. Methods never mutate the
// receiver; they return an updated copy.
type Criteria []Criterion

// DefaultCriteria returns the built-in criteria with nothing selected and
// the gender-specific option lists for the sought gender.
func DefaultCriteria(lookingForMale bool) Criteria {
	out := make(Criteria, len(builtinCriteria))
	for i, c := range builtinCriteria {
		out[i] = c.clone()
	}
	return out.WithGender(lookingForMale)
}

func (cs Criteria) Clone() Criteria {
	out := make(Criteria, len(cs))
	for i, c := range cs {
		out[i] = c.clone()
	}
	return out
}

func (cs Criteria) index(name string) int {
	for i, c := range cs {
		if c.Name == name {
			return i
		}
	}
	return -1
}

func (cs Criteria) Get(name string) (Criterion, bool) {
	i := cs.index(name)
	if i < 0 {
		return Criterion{}, false
	}
	return cs[i], true
}

// Select sets the selection of one criterion. An empty value clears it.
func (cs Criteria) Select(name, value string) (Criteria, error) {
	i := cs.index(name)
	if i < 0 {
		return cs, fmt.Errorf("%w: %q", ErrUnknownCriterion, name)
	}
	if value != "" {
		if _, ok := cs[i].Option(value); !ok {
			return cs, fmt.Errorf("%w: %q for %s", ErrUnknownOption, value, name)
		}
	}
	out := cs.Clone()
	out[i].Selected = value
	return out, nil
}

// SelectAll applies a criterion name -> value map. It stops on the first
// invalid entry, checking names in sorted order.
func (cs Criteria) SelectAll(values map[string]string) (Criteria, error) {
	names := make([]string, 0, len(values))
	for n := range values {
		names = append(names, n)
	}
	sort.Strings(names)

	out := cs
	for _, n := range names {
		var err error
		out, err = out.Select(n, values[n])
		if err != nil {
			return cs, err
		}
	}
	return out, nil
}

// WithGender switches gender-specific criteria to the option list of the
// sought gender and clears their selections. Other selections are kept.
func (cs Criteria) WithGender(lookingForMale bool) Criteria {
	out := cs.Clone()
	for i := range out {
		if !out[i].GenderSpecific() {
			continue
		}
		if lookingForMale {
			out[i].Options = cloneOptions(out[i].MaleOptions)
		} else {
			out[i].Options = cloneOptions(out[i].FemaleOptions)
		}
		out[i].Selected = ""
	}
	return out
}

func (cs Criteria) Reset() Criteria {
	out := cs.Clone()
	for i := range out {
		out[i].Selected = ""
	}
	return out
}

// Selections returns the active non-"any" choices keyed by criterion name.
func (cs Criteria) Selections() map[string]string {
	out := make(map[string]string)
	for _, c := range cs {
		if opt, ok := c.selectedOption(); ok {
			out[c.Name] = opt.Value
		}
	}
	return out
}

// Key is a canonical string for the inputs of Compute.
func Key(cs Criteria, lookingForMale bool, region string) string {
	sel := cs.Selections()
	names := make([]string, 0, len(sel))
	for n := range sel {
		names = append(names, n)
	}
	sort.Strings(names)

	var b strings.Builder
	if lookingForMale {
		b.WriteString("m|")
	} else {
		b.WriteString("f|")
	}
	b.WriteString(resolveRegion(region).Value)
	for _, n := range names {
		b.WriteString("|")
		b.WriteString(n)
		b.WriteString("=")
		b.WriteString(sel[n])
	}
	return b.String()
}
