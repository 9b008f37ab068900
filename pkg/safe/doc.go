// Package safe holds the fatal-abort primitives and small error utilities
// shared by the opt and res subpackages.
//
// Two failure strategies coexist on purpose:
//   - recoverable absence or failure is data (opt.Option, res.Result) and
//     never panics
//   - Panic/Todo/Unreachable signal a contract violation by the caller and
//     abort; they are not meant to be recovered from
package safe
