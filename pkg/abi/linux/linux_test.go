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

package linux

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageHeader64Layout(t *testing.T) {
	// Pin the field offsets, not just the total size; the hooks trust
	// these when walking kernel-updated headers.
	msg := MessageHeader64{
		Name:       0x1111111111111111,
		NameLen:    0x22222222,
		Iov:        0x3333333333333333,
		IovLen:     0x4444444444444444,
		Control:    0x5555555555555555,
		ControlLen: 0x6666666666666666,
		Flags:      0x77777777,
	}
	var buf [SizeOfMessageHeader64]byte
	msg.MarshalBytes(buf[:])

	assert.Equal(t, byte(0x11), buf[0], "Name at offset 0")
	assert.Equal(t, byte(0x22), buf[8], "NameLen at offset 8")
	assert.Equal(t, byte(0x00), buf[12], "padding after NameLen")
	assert.Equal(t, byte(0x33), buf[16], "Iov at offset 16")
	assert.Equal(t, byte(0x44), buf[24], "IovLen at offset 24")
	assert.Equal(t, byte(0x55), buf[32], "Control at offset 32")
	assert.Equal(t, byte(0x66), buf[40], "ControlLen at offset 40")
	assert.Equal(t, byte(0x77), buf[48], "Flags at offset 48")

	var got MessageHeader64
	got.UnmarshalBytes(buf[:])
	assert.Equal(t, msg, got)
}

func TestIovecLayout(t *testing.T) {
	iov := Iovec{Base: 0x1111111111111111, Len: 0x2222222222222222}
	var buf [SizeOfIovec]byte
	iov.MarshalBytes(buf[:])
	assert.Equal(t, byte(0x11), buf[0], "Base at offset 0")
	assert.Equal(t, byte(0x22), buf[8], "Len at offset 8")

	var got Iovec
	got.UnmarshalBytes(buf[:])
	assert.Equal(t, iov, got)
}
