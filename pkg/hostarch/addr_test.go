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

//go:build amd64 || arm64

package hostarch

import (
	"math"
	"testing"
)

func TestAddLength(t *testing.T) {
	for _, test := range []struct {
		addr   Addr
		length uint64
		end    Addr
		ok     bool
	}{
		{addr: 0x1000, length: 0x100, end: 0x1100, ok: true},
		{addr: 0x1000, length: 0, end: 0x1000, ok: true},
		{addr: math.MaxUint64 - 10, length: 10, end: math.MaxUint64, ok: true},
		{addr: math.MaxUint64 - 10, length: 11, ok: false},
		{addr: math.MaxUint64, length: math.MaxUint64, ok: false},
	} {
		end, ok := test.addr.AddLength(test.length)
		if ok != test.ok {
			t.Errorf("%#x.AddLength(%#x): ok = %t, want %t", test.addr, test.length, ok, test.ok)
			continue
		}
		if ok && end != test.end {
			t.Errorf("%#x.AddLength(%#x) = %#x, want %#x", test.addr, test.length, end, test.end)
		}
	}
}
