// Package script runs ability hooks written in tengo. A script may define
// any of:
//
//	begin_section := func(engine, phase) { ... }
//	end_section := func(engine, phase) { ... }
//	tick_using := func(engine) { ... }
//
// engine exposes the ability's counters and presentation requests.
package script

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/LilRicefield/saints-dragons/prefabs"
)

const (
	hookBegin = "begin_section"
	hookEnd   = "end_section"
	hookTick  = "tick_using"
)

var hookDecl = regexp.MustCompile(`(?m)^\s*(begin_section|end_section|tick_using)\s*:=`)

// Program is a compiled ability script. Behaviors clone it, so one Program
// can back any number of ability instances.
type Program struct {
	name     string
	compiled *tengo.Compiled
	hooks    map[string]bool
}

// Load compiles a script from prefabs/scripts.
func Load(name string) (*Program, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	return Compile(name, src)
}

// Compile builds a Program from source and runs its top level once.
func Compile(name string, src []byte) (*Program, error) {
	hooks := map[string]bool{}
	for _, m := range hookDecl.FindAllSubmatch(src, -1) {
		hooks[string(m[1])] = true
	}

	full := string(src) + "\n" + dispatch(hooks)
	s := tengo.NewScript([]byte(full))
	_ = s.Add("__hook", "")
	_ = s.Add("__phase", "")
	_ = s.Add("__engine", map[string]any{})
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("script: init %s: %w", name, err)
	}
	return &Program{name: name, compiled: compiled, hooks: hooks}, nil
}

func dispatch(hooks map[string]bool) string {
	var b strings.Builder
	first := true
	branch := func(hook, call string) {
		if !hooks[hook] {
			return
		}
		if first {
			b.WriteString("if ")
			first = false
		} else {
			b.WriteString(" else if ")
		}
		fmt.Fprintf(&b, "__hook == %q {\n\t%s\n}", hook, call)
	}
	branch(hookBegin, "begin_section(__engine, __phase)")
	branch(hookEnd, "end_section(__engine, __phase)")
	branch(hookTick, "tick_using(__engine)")
	return b.String()
}

func (p *Program) Name() string { return p.name }

// Defines reports whether the script declares hook.
func (p *Program) Defines(hook string) bool { return p.hooks[hook] }
