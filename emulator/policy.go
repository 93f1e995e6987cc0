package emulator

import (
	"errors"
	"iter"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/sp16/cpu"
)

// StopPolicy is an external stopping rule, checked before every fetch.
type StopPolicy interface {
	Stop(cp *cpu.Cpu) (stop bool, err error)
}

// StopOnValue stops when the accumulator holds the value.
type StopOnValue uint16

func (sv StopOnValue) Stop(cp *cpu.Cpu) (stop bool, err error) {
	stop = cp.A == uint16(sv)
	return
}

// StopAfter stops once the CPU has executed the given number of ticks.
type StopAfter int

func (sa StopAfter) Stop(cp *cpu.Cpu) (stop bool, err error) {
	stop = cp.Ticks >= int(sa)
	return
}

// StopExpr stops when a Starlark boolean expression is true.
//
// The expression sees the registers as ip, sp and a, the tick count as
// ticks, a mem(addr) builtin that reads memory, and every integer define of
// the emulator (ie SP_LIMIT).
type StopExpr struct {
	Expr string

	thread *starlark.Thread
	env    starlark.StringDict
	fn     *starlark.Function
	cpu    *cpu.Cpu
}

// NewStopExpr compiles the expression once, against the given defines.
func NewStopExpr(expr string, defines iter.Seq2[string, string]) (se *StopExpr, err error) {
	se = &StopExpr{
		Expr:   expr,
		thread: &starlark.Thread{Name: "stop"},
	}

	se.env = starlark.StringDict{}
	for key, str := range defines {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Non-integer defines are not visible.
			continue
		}
		se.env[key] = starlark.MakeInt64(v64)
	}
	se.env["mem"] = starlark.NewBuiltin("mem", se.mem)
	se.bind(&cpu.Cpu{})

	opts := syntax.FileOptions{}
	se.fn, err = starlark.ExprFuncOptions(&opts, "stop", expr, se.env)
	if err != nil {
		se = nil
		return
	}

	return
}

// bind sets the CPU state names the expression reads.
func (se *StopExpr) bind(cp *cpu.Cpu) {
	se.cpu = cp
	se.env["ip"] = starlark.MakeInt(int(cp.Ip))
	se.env["sp"] = starlark.MakeInt(int(cp.Sp))
	se.env["a"] = starlark.MakeInt(int(cp.A))
	se.env["ticks"] = starlark.MakeInt(cp.Ticks)
}

// Stop evaluates the expression against the current CPU state.
func (se *StopExpr) Stop(cp *cpu.Cpu) (stop bool, err error) {
	se.bind(cp)

	rc, err := starlark.Call(se.thread, se.fn, nil, nil)
	if err != nil {
		return
	}

	st_bool, ok := rc.(starlark.Bool)
	if !ok {
		err = errors.Join(ErrPolicyResult, errors.New(f("%v is a %v, not a bool", rc.String(), rc.Type())))
		return
	}

	stop = bool(st_bool)
	return
}

// mem is the Starlark builtin mem(addr).
func (se *StopExpr) mem(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var addr int
	err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &addr)
	if err != nil {
		return
	}

	if addr < 0 || addr >= cpu.MEMORY_WORDS {
		err = errors.New(f("mem: address %v out of range", addr))
		return
	}

	value = starlark.MakeInt(int(se.cpu.Memory.Ram[addr]))
	return
}
