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
	"fmt"

	"shadowcall.dev/shadowcall/pkg/abi/linux"
	"shadowcall.dev/shadowcall/pkg/hostarch"
)

// copyInMessageHeader64 decodes a struct msghdr from target memory.
func copyInMessageHeader64(m Memory, addr hostarch.Addr, msg *linux.MessageHeader64) error {
	var buf [linux.SizeOfMessageHeader64]byte
	if _, err := m.CopyIn(addr, buf[:]); err != nil {
		return fmt.Errorf("reading msghdr at %#x: %w", addr, err)
	}
	msg.UnmarshalBytes(buf[:])
	return nil
}

// copyInIovec decodes the i'th element of the iovec array at base from
// target memory.
func copyInIovec(m Memory, base hostarch.Addr, i uint64, iov *linux.Iovec) error {
	addr, ok := base.AddLength(i * linux.SizeOfIovec)
	if !ok {
		return fmt.Errorf("iovec array at %#x overflows at element %d", base, i)
	}
	var buf [linux.SizeOfIovec]byte
	if _, err := m.CopyIn(addr, buf[:]); err != nil {
		return fmt.Errorf("reading iovec at %#x: %w", addr, err)
	}
	iov.UnmarshalBytes(buf[:])
	return nil
}
