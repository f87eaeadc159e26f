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

package linux

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

// The descriptors must match the host's own kernel ABI wherever the host is
// one of the supported targets; x/sys/unix is the ground truth for that.
func TestSizesMatchHostABI(t *testing.T) {
	assert.EqualValues(t, unsafe.Sizeof(unix.Iovec{}), SizeOfIovec, "iovec")
	assert.EqualValues(t, unsafe.Sizeof(unix.Msghdr{}), SizeOfMessageHeader64, "msghdr")
	assert.EqualValues(t, unsafe.Sizeof(unix.Timespec{}), SizeOfTimespec, "timespec")
	assert.EqualValues(t, unsafe.Sizeof(unix.Timeval{}), SizeOfTimeval, "timeval")
	assert.EqualValues(t, unsafe.Sizeof(unix.Rusage{}), SizeOfRusage, "rusage")
}
