package mui

// Flag is a set of boolean widget options.
type Flag uint32

const (
	FlagAlignCenter Flag = 1 << iota
	FlagAlignRight
	FlagNoInteract
	FlagNoFrame
	FlagNoResize
	FlagNoScroll
	FlagNoClose
	FlagNoTitle
	FlagHoldFocus
	FlagAutoSize
	FlagPopup
	FlagClosed
	FlagExpanded
)

// Option configures a widget call.
type Option func(*options)

// options holds the flags plus typed extension values.
type options struct {
	flags      Flag
	extensions map[string]any
}

func (o options) has(f Flag) bool {
	return o.flags&f != 0
}

func (o options) with(f Flag) options {
	o.flags |= f
	return o
}

// OptKey is a typed key for widget options.
//
// Example:
//
//	var OptCustomThing = mui.NewOptKey("customThing", defaultValue)
//	ctx.Button("go", mui.WithOpt(OptCustomThing, value))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name.
func (k OptKey[T]) Name() string { return k.name }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value, or the key's default when unset.
func GetOpt[T any](o options, key OptKey[T]) T {
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	_, ok := o.extensions[key.name]
	return ok
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to build custom widgets.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyFlags applies options and returns the resulting flag set.
func ApplyFlags(opts []Option) Flag {
	return applyOptions(opts).flags
}

// Built-in option keys.
var (
	OptID        = NewOptKey("id", "")
	OptStep      = NewOptKey[float64]("step", 0)
	OptPrecision = NewOptKey("precision", 2)
	OptMaxLength = NewOptKey("maxLength", 0)
)

// WithFlags sets raw flags.
func WithFlags(f Flag) Option { return func(o *options) { o.flags |= f } }

// WithID keys the widget by a caller-chosen token instead of its label or
// the address of its value. Use it when the bound value can move between
// frames or when two widgets share a label.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithStep snaps sliders to multiples of step.
func WithStep(step float64) Option { return WithOpt(OptStep, step) }

// WithPrecision sets the number of decimals shown by sliders and number
// fields.
func WithPrecision(digits int) Option { return WithOpt(OptPrecision, digits) }

// MaxLength caps the byte length of a text box. Typed input beyond it is
// dropped; a bound value already longer than n aborts the frame with
// ErrCapacityExceeded.
func MaxLength(n int) Option { return WithOpt(OptMaxLength, n) }

func AlignCenter() Option { return WithFlags(FlagAlignCenter) }
func AlignRight() Option  { return WithFlags(FlagAlignRight) }

// NoInteract makes a control ignore hover and focus.
func NoInteract() Option { return WithFlags(FlagNoInteract) }

// NoFrame skips the background of a control, window or panel.
func NoFrame() Option { return WithFlags(FlagNoFrame) }

func NoResize() Option { return WithFlags(FlagNoResize) }
func NoScroll() Option { return WithFlags(FlagNoScroll) }
func NoClose() Option  { return WithFlags(FlagNoClose) }
func NoTitle() Option  { return WithFlags(FlagNoTitle) }

// HoldFocus keeps focus after the mouse button is released.
func HoldFocus() Option { return WithFlags(FlagHoldFocus) }

// AutoSize fits a window to its content every frame.
func AutoSize() Option { return WithFlags(FlagAutoSize) }

// Closed makes a window start closed; it stays closed until opened through
// its container.
func Closed() Option { return WithFlags(FlagClosed) }

// Expanded makes a header or tree node start expanded.
func Expanded() Option { return WithFlags(FlagExpanded) }
