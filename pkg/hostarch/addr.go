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

package hostarch

// Addr is an address in the instrumented program's address space. It is an
// opaque handle from this package's point of view: the hook layer never
// dereferences one, it only forwards ranges built from them.
type Addr uintptr

// AddLength returns v + length, and whether that sum did not overflow.
func (v Addr) AddLength(length uint64) (end Addr, ok bool) {
	end = v + Addr(length)
	// The sum wrapped iff it is smaller than either operand.
	ok = end >= v && uint64(end-v) == length
	return
}
