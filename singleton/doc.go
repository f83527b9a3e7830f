// Package singleton shows three ways of providing a process-wide instance.
//
//   - Holder is initialized eagerly during package initialization and is only reachable via Instance.
//     The Go runtime runs package initialization exactly once, in a single goroutine, before any
//     code of an importing package, so there is no window where two Holders could exist.
//
//   - StaticInstance is a counter-example of a lazy singleton: the first call to GetStaticInstance
//     creates the instance, every further call fails with ErrAlreadyInitialized. The check-then-act is
//     mutex-guarded here, but callers still can't get at the instance twice, which defeats the point
//     of a singleton. Don't copy it.
//
//   - Lazy is the way to do lazy construction: it wraps sync.OnceValue, so the build function
//     runs once, even under concurrent first access, and every caller receives the same value.
package singleton
