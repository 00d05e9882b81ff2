// Package callback lets C code that only knows "function pointer + void*
// userdata" call Go closures.
//
// A closure is wrapped into a Context, a small integer that is safe to keep
// in C memory. The C side gets the Context as userdata together with the
// pointer of a trampoline, a fixed-signature Go function exported through
// purego that turns the Context back into the closure and calls it:
//
//	ctx := callback.Wrap(func(id TimerID, interval uint32) uint32 { ... })
//	fn := callback.Trampoline(callback.Call2[TimerID, uint32, uint32])
//	sdlAddTimer(ms, fn, ctx)
//
// Four lifetimes are provided:
//
//   - Single-owner: Wrap, then either the CallOnce/InvokeOnce trampolines
//     (freed on first call) or the Call/Invoke trampolines plus an explicit
//     Release.
//   - Keyed: Keyed[K, V, Tag] keeps many values addressed by key in one
//     process-wide map per type-argument set. Tag partitions otherwise
//     identical registries.
//   - Singleton: Singleton[F] keeps one value per F for C APIs with a
//     single global callback slot. The slot has its own stable Context, so a
//     userdata read back from C can be recognized as ours.
//
// Trampoline, the only part that needs purego, is built for 64-bit
// desktop targets (amd64 and arm64, excluding iOS and Android). Everything
// else here is plain Go and builds everywhere, so the same closures can be
// driven from Go on any platform.
//
// Trampolines come in two shapes because C APIs disagree on where userdata
// goes: CallN/InvokeN take the Context first, CallSuffixedN/InvokeSuffixedN
// take it last. Call variants return a result, Invoke variants do not.
//
// Contexts are typed by the exact func type passed to Wrap: a trampoline
// such as Call2[A, B, R] resolves func(A, B) R and nothing else. Named
// callback types meant for trampolines should therefore be aliases
// (type TimerFunc = func(TimerID, uint32) uint32).
//
// Nothing in this package returns errors. Absent entries produce zero
// values; a Context of the wrong type panics, and every trampoline recovers
// panics before they can unwind into C.
package callback
