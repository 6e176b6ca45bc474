package runtime

import (
	"errors"
	"testing"
)

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("a", NumberValue{Val: 1})

	val, err := env.Get("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, ok := val.(NumberValue); !ok || got.Val != 1 {
		t.Fatalf("expected number 1, got %#v", val)
	}
}

func TestEnvironmentGetWalksOutward(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("a", StringValue{Val: "outer"})
	inner := global.Extend().Extend()

	val, err := inner.Get("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, ok := val.(StringValue); !ok || got.Val != "outer" {
		t.Fatalf("expected outer binding, got %#v", val)
	}
	if inner.Depth() != 2 || global.Depth() != 0 {
		t.Fatalf("unexpected depths %d/%d", inner.Depth(), global.Depth())
	}
}

func TestEnvironmentUndefinedLookup(t *testing.T) {
	env := NewEnvironment(nil).Extend()
	_, err := env.Get("missing")
	var undef *UndefinedError
	if !errors.As(err, &undef) || undef.Name != "missing" {
		t.Fatalf("expected undefined error for 'missing', got %v", err)
	}
	if err.Error() != "Undefined variable 'missing'" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestEnvironmentAssignNeverCreates(t *testing.T) {
	env := NewEnvironment(nil)
	if err := env.Assign("x", NumberValue{Val: 1}); err == nil {
		t.Fatalf("expected assign to undefined name to fail")
	}
	if env.Has("x") {
		t.Fatalf("failed assign must not create a binding")
	}
}

func TestEnvironmentAssignUpdatesNearestBinding(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("a", NumberValue{Val: 1})
	block := global.Extend()

	if err := block.Assign("a", NumberValue{Val: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if block.Has("a") {
		t.Fatalf("assign must not define in the child scope")
	}
	val, _ := global.Get("a")
	if got := val.(NumberValue); got.Val != 2 {
		t.Fatalf("expected outer binding updated to 2, got %#v", val)
	}
}

func TestEnvironmentShadowing(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("a", NumberValue{Val: 1})
	block := global.Extend()
	block.Define("a", NumberValue{Val: 2})

	inner, _ := block.Get("a")
	outer, _ := global.Get("a")
	if inner.(NumberValue).Val != 2 || outer.(NumberValue).Val != 1 {
		t.Fatalf("expected shadowed 2 and outer 1, got %#v / %#v", inner, outer)
	}
	if keys := block.Keys(); len(keys) != 1 || keys[0] != "a" {
		t.Fatalf("unexpected keys %v", keys)
	}
	snap := block.Snapshot()
	snap["b"] = Nil
	if block.Has("b") {
		t.Fatalf("snapshot must be a copy")
	}
}

func TestKindNames(t *testing.T) {
	cases := []struct {
		val  Value
		want string
	}{
		{NumberValue{Val: 1}, "number"},
		{StringValue{Val: "s"}, "string"},
		{BoolValue{Val: true}, "bool"},
		{NilValue{}, "nil"},
		{&FunctionValue{Name: "f"}, "function"},
		{NativeFunctionValue{Name: "clock"}, "native_function"},
	}
	for _, tc := range cases {
		if got := tc.val.Kind().String(); got != tc.want {
			t.Fatalf("expected %s, got %s", tc.want, got)
		}
	}
}

func TestEnvironmentExtendLinksParent(t *testing.T) {
	global := NewEnvironment(nil)
	if global.Parent() != nil {
		t.Fatalf("expected global scope to have no parent")
	}
	block := global.Extend()
	call := block.Extend()
	if call.Parent() != block || block.Parent() != global {
		t.Fatalf("expected Extend to link each child to its creator")
	}
	if call.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", call.Depth())
	}

	call.Define("local", BoolValue{Val: true})
	if block.Has("local") || global.Has("local") {
		t.Fatalf("expected child binding to stay out of enclosing scopes")
	}
}
