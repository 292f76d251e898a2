// Package mui is the frame engine of a small immediate-mode GUI.
//
// Every frame the application feeds input into the Context, calls widget
// functions, and hands the resulting command list to a renderer. There is
// no widget tree: a widget is recognized from one frame to the next only by
// its ID, a 32-bit FNV-1a hash of its label (or of the address of the value
// it edits) seeded by the enclosing ID scope.
//
// # Frame
//
//	ctx := mui.NewContext(metrics)
//	for running {
//	    // feed platform events
//	    ctx.Input().SetMousePos(x, y)
//	    ctx.Input().SetMouseButton(mui.MouseLeft, down)
//
//	    err := ctx.Frame(func() {
//	        ctx.Window("Demo", mui.Rect{X: 40, Y: 40, W: 300, H: 450})(func() {
//	            ctx.LayoutRow(0, 86, -1)
//	            ctx.Label("Volume:")
//	            ctx.Slider(&volume, 0, 1)
//	        })
//	    })
//	    if err != nil {
//	        // a scope was left open or a fixed capacity was exceeded
//	    }
//	    for cmd := range ctx.Commands() {
//	        // draw cmd
//	    }
//	}
//
// # State
//
// Windows, popups and panels keep their position, scroll offset and open
// flag in a fixed pool of 48 containers; headers and tree nodes keep their
// expansion in a second pool of the same size. Slots that are not used for
// a frame become candidates for reuse, oldest first. Needing more live
// containers than slots within one frame is a programming error.
//
// # Output
//
// Commands are appended while widgets run. Each window owns a contiguous
// range of the buffer framed by two jump commands; End sorts windows by
// z-index and links the ranges so that Commands yields them back to front.
// Renderers only ever see clip, rect, text and icon commands.
//
// # Errors
//
// Unbalanced scopes (Begin*/End*, PushID/PopID, PushClip/PopClip) and
// exhausted capacities are programming errors. They abort the frame with a
// *PreconditionError: Frame and End return it, the frame is discarded and
// the next frame starts clean. Text typed into a numeric field that is not
// a number leaves the value unchanged and is reported by EditErr.
package mui
