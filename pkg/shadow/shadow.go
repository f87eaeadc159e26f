// Copyright 2023 The Shadowcall Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package shadow defines the contract between syscall hooks and the
// shadow-memory validator that owns per-byte validity state.
//
// The validator itself lives in the host tool; this package only pins down
// the four primitives the hooks are allowed to call, together with test and
// debugging implementations of them.
package shadow

import (
	"shadowcall.dev/shadowcall/pkg/hostarch"
)

// Validator receives memory-range annotations from syscall hooks.
//
// Every method must treat a zero addr or a zero length as a no-op. The
// validator handles its own synchronization; hooks may call these methods
// concurrently from any thread. Implementations decide how to report
// violations (abort, diagnostic, continue); hooks never see the outcome.
type Validator interface {
	// PreRead asserts that [addr, addr+length) is initialized. Called
	// before the real operation, for memory the kernel will read.
	PreRead(addr hostarch.Addr, length uint64)

	// PreWrite asserts that [addr, addr+length) is addressable, though not
	// necessarily initialized. Called before the real operation, for
	// memory the kernel may fill.
	PreWrite(addr hostarch.Addr, length uint64)

	// PostRead is informational: the kernel read [addr, addr+length)
	// during the operation.
	PostRead(addr hostarch.Addr, length uint64)

	// PostWrite marks [addr, addr+length) as now fully initialized.
	// Called after the real operation, only for ranges the kernel
	// actually populated.
	PostWrite(addr hostarch.Addr, length uint64)
}

// AccessKind distinguishes the four validator primitives.
type AccessKind int

// Access kinds, in pre-before-post order.
const (
	PreReadAccess AccessKind = iota
	PreWriteAccess
	PostReadAccess
	PostWriteAccess
)

// String implements fmt.Stringer.String.
func (k AccessKind) String() string {
	switch k {
	case PreReadAccess:
		return "pre-read"
	case PreWriteAccess:
		return "pre-write"
	case PostReadAccess:
		return "post-read"
	case PostWriteAccess:
		return "post-write"
	default:
		return "unknown"
	}
}

// Access records a single primitive invocation: one ephemeral memory range
// and the annotation applied to it.
type Access struct {
	Kind AccessKind
	Addr hostarch.Addr
	Len  uint64
}
