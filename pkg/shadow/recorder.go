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

package shadow

import (
	"sync"

	"shadowcall.dev/shadowcall/pkg/hostarch"
)

// Recorder is a Validator that records every primitive call, in order.
// It is used by this module's own tests and is exported for integrators
// testing their dispatch wiring.
//
// Unlike a real validator, Recorder logs null-addr and zero-length calls
// too: hooks are required to skip absent optional arguments themselves, and
// a recorder that filtered such calls would mask a missing null check.
//
// The zero value is ready to use.
type Recorder struct {
	mu       sync.Mutex
	accesses []Access
}

// PreRead implements Validator.PreRead.
func (r *Recorder) PreRead(addr hostarch.Addr, length uint64) {
	r.record(Access{Kind: PreReadAccess, Addr: addr, Len: length})
}

// PreWrite implements Validator.PreWrite.
func (r *Recorder) PreWrite(addr hostarch.Addr, length uint64) {
	r.record(Access{Kind: PreWriteAccess, Addr: addr, Len: length})
}

// PostRead implements Validator.PostRead.
func (r *Recorder) PostRead(addr hostarch.Addr, length uint64) {
	r.record(Access{Kind: PostReadAccess, Addr: addr, Len: length})
}

// PostWrite implements Validator.PostWrite.
func (r *Recorder) PostWrite(addr hostarch.Addr, length uint64) {
	r.record(Access{Kind: PostWriteAccess, Addr: addr, Len: length})
}

func (r *Recorder) record(a Access) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accesses = append(r.accesses, a)
}

// Accesses returns a copy of the recorded calls in issue order.
func (r *Recorder) Accesses() []Access {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Access(nil), r.accesses...)
}

// Reset discards all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accesses = nil
}
