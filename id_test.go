package mui

import (
	"hash/fnv"
	"testing"
)

func TestHashBytesMatchesFNV1a(t *testing.T) {
	for _, s := range []string{"", "a", "foobar", "!scrollbary", "Test Window"} {
		h := fnv.New32a()
		h.Write([]byte(s))
		want := ID(h.Sum32())
		if got := HashBytes(hashInitial, []byte(s)); got != want {
			t.Errorf("HashBytes(%q) = %#x, want %#x", s, got, want)
		}
		if got := hashString(hashInitial, s); got != want {
			t.Errorf("hashString(%q) = %#x, want %#x", s, got, want)
		}
	}
}

func TestGetIDDeterministicAndScoped(t *testing.T) {
	ctx := newTestContext()
	runFrame(t, ctx, func() {
		a1 := ctx.GetID("button")
		a2 := ctx.GetID("button")
		if a1 != a2 {
			t.Errorf("same label gave %#x and %#x", a1, a2)
		}
		if ctx.LastID() != a2 {
			t.Errorf("LastID = %#x, want %#x", ctx.LastID(), a2)
		}

		ctx.PushID("scope")
		scoped := ctx.GetID("button")
		ctx.PopID()
		if scoped == a1 {
			t.Error("ID inside a scope should differ from the unscoped one")
		}
		if again := ctx.GetID("button"); again != a1 {
			t.Errorf("after PopID got %#x, want %#x", again, a1)
		}
	})
}

func TestGetIDPtr(t *testing.T) {
	ctx := newTestContext()
	var a, b float64
	runFrame(t, ctx, func() {
		if ctx.GetIDPtr(&a) != ctx.GetIDPtr(&a) {
			t.Error("same address should hash the same")
		}
		if ctx.GetIDPtr(&a) == ctx.GetIDPtr(&b) {
			t.Error("different addresses should hash differently")
		}
	})

	err := ctx.Frame(func() {
		ctx.GetIDPtr(a)
	})
	if err == nil {
		t.Fatal("expected an error for a non-pointer value")
	}
}

func TestWithIDOverridesAddress(t *testing.T) {
	ctx := newTestContext()
	var a, b bool
	runFrame(t, ctx, func() {
		idA := ctx.widgetID(&a, applyOptions([]Option{WithID("flag")}))
		idB := ctx.widgetID(&b, applyOptions([]Option{WithID("flag")}))
		if idA != idB {
			t.Errorf("WithID should key both values the same: %#x vs %#x", idA, idB)
		}
	})
}
