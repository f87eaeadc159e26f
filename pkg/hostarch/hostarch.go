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

// Package hostarch holds target-address arithmetic shared by the ABI
// descriptors and the hook rules. All supported ABIs are 64-bit
// little-endian.
package hostarch

import (
	"encoding/binary"
)

// ByteOrder is the byte order of every supported target ABI.
var ByteOrder = binary.LittleEndian
