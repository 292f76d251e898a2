package mui

import (
	"encoding/binary"
	"reflect"
)

// ID identifies a widget across frames. It is the only handle that links a
// widget call in one frame to the state it left behind in the previous one.
type ID uint32

const (
	hashInitial ID = 2166136261 // FNV-1a 32-bit offset basis
	hashPrime   ID = 16777619
)

// HashBytes folds b into seed with FNV-1a.
func HashBytes(seed ID, b []byte) ID {
	h := seed
	for _, c := range b {
		h = (h ^ ID(c)) * hashPrime
	}
	return h
}

func hashString(seed ID, s string) ID {
	h := seed
	for i := 0; i < len(s); i++ {
		h = (h ^ ID(s[i])) * hashPrime
	}
	return h
}

func hashUint64(seed ID, v uint64) ID {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return HashBytes(seed, b[:])
}

// idSeed returns the top of the ID stack, or the FNV basis when empty.
func (ctx *Context) idSeed() ID {
	if top, ok := ctx.idStack.peek(); ok {
		return top
	}
	return hashInitial
}

// GetID returns the ID of a string label in the current ID scope.
func (ctx *Context) GetID(label string) ID {
	ctx.lastID = hashString(ctx.idSeed(), label)
	return ctx.lastID
}

// GetIDBytes returns the ID of raw bytes in the current ID scope.
func (ctx *Context) GetIDBytes(b []byte) ID {
	ctx.lastID = HashBytes(ctx.idSeed(), b)
	return ctx.lastID
}

// GetIDInt returns the ID of an integer in the current ID scope.
// The integer is hashed as 8 little-endian bytes.
func (ctx *Context) GetIDInt(n int) ID {
	ctx.lastID = hashUint64(ctx.idSeed(), uint64(n))
	return ctx.lastID
}

// GetIDPtr returns the ID of the address p points to. The pointed-to value
// must not move or be reused by another widget while the ID is in use; pass
// WithID to widgets when that cannot be guaranteed.
func (ctx *Context) GetIDPtr(p any) ID {
	v := reflect.ValueOf(p)
	if v.Kind() != reflect.Pointer && v.Kind() != reflect.UnsafePointer || v.IsNil() {
		violation("get id", ErrNotPointer, "%T", p)
	}
	ctx.lastID = hashUint64(ctx.idSeed(), uint64(v.Pointer()))
	return ctx.lastID
}

// LastID returns the most recently produced ID.
func (ctx *Context) LastID() ID {
	return ctx.lastID
}

// PushID opens an ID scope keyed by a string.
// All IDs produced until the matching PopID are derived from it.
func (ctx *Context) PushID(label string) {
	ctx.idStack.push(ctx.GetID(label))
}

// PushIDInt opens an ID scope keyed by an integer, typically a loop index.
func (ctx *Context) PushIDInt(n int) {
	ctx.idStack.push(ctx.GetIDInt(n))
}

// PushIDPtr opens an ID scope keyed by an address.
func (ctx *Context) PushIDPtr(p any) {
	ctx.idStack.push(ctx.GetIDPtr(p))
}

// PopID closes the innermost ID scope.
func (ctx *Context) PopID() {
	ctx.idStack.pop()
}

// widgetID keys a widget by its WithID token when one was supplied,
// otherwise by the address of the value it edits.
func (ctx *Context) widgetID(ptr any, o options) ID {
	if key := GetOpt(o, OptID); key != "" {
		return ctx.GetID(key)
	}
	return ctx.GetIDPtr(ptr)
}

// labelID keys a widget by its label unless WithID overrides it.
func (ctx *Context) labelID(label string, o options) ID {
	if key := GetOpt(o, OptID); key != "" {
		return ctx.GetID(key)
	}
	return ctx.GetID(label)
}
