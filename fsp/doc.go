// Package fsp orchestrates the boot-stage invocations of the external
// memory/silicon initialization module and verifies the hand-off data the
// module produces before the platform is allowed to proceed.
//
// # Overview
//
// The module is opaque: it is handed a working copy of its own default
// configuration, invoked through a fixed entry convention, and reports back a
// status code plus a hand-off record list (see package hob). Nothing the
// module reports is trusted until the consistency validator has cross-checked
// the records against the boot loader's own memory accounting.
//
// # Flow
//
// One boot stage runs, in order: boot-mode selection, configuration
// resolution and copy, customization hooks, invocation, accounting
// initialization or recovery, consistency validation, and configuration
// persistence. The whole sequence is single-threaded and synchronous; it
// executes before the platform has a scheduler, so there is no cancellation
// and no retry. A hang inside the module is unrecoverable at this layer.
//
// # Fatal conditions
//
// Structural errors (zero configuration offsets, a nil record list despite a
// success status) and module-reported failures halt immediately with a
// distinct diagnostic post code. Record-level inconsistencies are accumulated
// across all validation checks and evaluated once, so the diagnostics reflect
// the complete picture rather than the first failure found. The one exception
// is the protected-execution-memory under-allocation check, which halts on
// the spot because continuing would let unrelated code overwrite protected
// memory.
//
// # State ownership
//
// The Stage struct owns all cross-call state: the resolved module image, the
// located record list, and the collaborator handles. There is no package
// level mutable state.
package fsp
