package script

import (
	"strings"

	"github.com/d5/tengo/v2"

	"github.com/LilRicefield/saints-dragons/ability"
)

func engine(a *ability.Ability) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	counter := func(name string, get func() int) {
		values[name] = &tengo.UserFunction{Name: name, Value: func(...tengo.Object) (tengo.Object, error) {
			return &tengo.Int{Value: int64(get())}, nil
		}}
	}
	counter("ticks_in_section", a.TicksInSection)
	counter("ticks_in_use", a.TicksInUse)
	counter("section_index", a.SectionIndex)

	values["phase"] = &tengo.UserFunction{Name: "phase", Value: func(...tengo.Object) (tengo.Object, error) {
		s, ok := a.CurrentSection()
		if !ok {
			return &tengo.String{Value: ""}, nil
		}
		return &tengo.String{Value: s.Phase.String()}, nil
	}}

	values["name"] = &tengo.UserFunction{Name: "name", Value: func(...tengo.Object) (tengo.Object, error) {
		return &tengo.String{Value: a.Type().Name()}, nil
	}}

	values["play_animation"] = &tengo.UserFunction{Name: "play_animation", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		a.User().PlayAnimation(ability.Animation{
			Controller: objectAsString(args[0]),
			Clip:       objectAsString(args[1]),
		})
		return tengo.TrueValue, nil
	}}

	values["play_sound"] = &tengo.UserFunction{Name: "play_sound", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		s := ability.Sound{Name: objectAsString(args[0]), Volume: 1, Pitch: 1}
		if len(args) > 1 {
			if v, ok := tengo.ToFloat64(args[1]); ok {
				s.Volume = v
			}
		}
		if len(args) > 2 {
			if v, ok := tengo.ToFloat64(args[2]); ok {
				s.Pitch = v
			}
		}
		ability.PlaySound(a.User(), s)
		return tengo.TrueValue, nil
	}}

	values["next_section"] = &tengo.UserFunction{Name: "next_section", Value: func(...tengo.Object) (tengo.Object, error) {
		a.NextSection()
		return tengo.TrueValue, nil
	}}

	values["complete"] = &tengo.UserFunction{Name: "complete", Value: func(...tengo.Object) (tengo.Object, error) {
		a.Complete()
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
