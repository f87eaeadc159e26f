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

package hooks

import (
	"shadowcall.dev/shadowcall/pkg/hostarch"
)

// Argument is one raw syscall argument register.
//
// The accessor methods perform the conversion appropriate for the declared
// kernel type of the argument, taking signedness and width into account;
// prefer them over reading Value directly.
type Argument struct {
	Value uintptr
}

// Arguments is the set of arguments passed to a syscall.
type Arguments [6]Argument

// Pointer returns the argument as a target address.
func (a Argument) Pointer() hostarch.Addr {
	return hostarch.Addr(a.Value)
}

// Int returns the int32 representation of a 32-bit signed integer argument.
func (a Argument) Int() int32 {
	return int32(a.Value)
}

// Uint returns the uint32 representation of a 32-bit unsigned integer
// argument.
func (a Argument) Uint() uint32 {
	return uint32(a.Value)
}

// Int64 returns the int64 representation of a 64-bit signed integer
// argument.
func (a Argument) Int64() int64 {
	return int64(a.Value)
}

// Uint64 returns the uint64 representation of a 64-bit unsigned integer
// argument.
func (a Argument) Uint64() uint64 {
	return uint64(a.Value)
}

// SizeT returns the uint64 representation of a size_t argument.
func (a Argument) SizeT() uint64 {
	return uint64(a.Value)
}
