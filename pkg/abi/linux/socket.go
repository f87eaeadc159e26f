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
	"shadowcall.dev/shadowcall/pkg/hostarch"
)

// SizeOfMessageHeader64 is the size of a MessageHeader64 in bytes.
const SizeOfMessageHeader64 = 56

// MessageHeader64 represents struct msghdr on 64-bit Linux, as used by
// sendmsg(2) and recvmsg(2). The kernel updates IovLen, ControlLen and Flags
// in place during recvmsg.
type MessageHeader64 struct {
	// Name is the optional pointer to a network address buffer.
	Name uint64

	// NameLen is the length of the address buffer.
	NameLen uint32
	_       uint32

	// Iov is a pointer to an array of IovLen Iovecs.
	Iov uint64

	// IovLen is the number of Iovecs in the scatter/gather array.
	IovLen uint64

	// Control is the optional pointer to ancillary control data.
	Control uint64

	// ControlLen is the length of the control data buffer.
	ControlLen uint64

	// Flags on the sent/received message.
	Flags int32
	_     int32
}

// SizeBytes returns the marshalled size of a MessageHeader64.
func (*MessageHeader64) SizeBytes() int {
	return SizeOfMessageHeader64
}

// MarshalBytes serializes m into the first SizeOfMessageHeader64 bytes of
// dst.
func (m *MessageHeader64) MarshalBytes(dst []byte) {
	hostarch.ByteOrder.PutUint64(dst[0:8], m.Name)
	hostarch.ByteOrder.PutUint32(dst[8:12], m.NameLen)
	hostarch.ByteOrder.PutUint32(dst[12:16], 0)
	hostarch.ByteOrder.PutUint64(dst[16:24], m.Iov)
	hostarch.ByteOrder.PutUint64(dst[24:32], m.IovLen)
	hostarch.ByteOrder.PutUint64(dst[32:40], m.Control)
	hostarch.ByteOrder.PutUint64(dst[40:48], m.ControlLen)
	hostarch.ByteOrder.PutUint32(dst[48:52], uint32(m.Flags))
	hostarch.ByteOrder.PutUint32(dst[52:56], 0)
}

// UnmarshalBytes deserializes m from the first SizeOfMessageHeader64 bytes
// of src.
func (m *MessageHeader64) UnmarshalBytes(src []byte) {
	m.Name = hostarch.ByteOrder.Uint64(src[0:8])
	m.NameLen = hostarch.ByteOrder.Uint32(src[8:12])
	m.Iov = hostarch.ByteOrder.Uint64(src[16:24])
	m.IovLen = hostarch.ByteOrder.Uint64(src[24:32])
	m.Control = hostarch.ByteOrder.Uint64(src[32:40])
	m.ControlLen = hostarch.ByteOrder.Uint64(src[40:48])
	m.Flags = int32(hostarch.ByteOrder.Uint32(src[48:52]))
}
