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

// Package linux mirrors the kernel-visible structure layouts consumed by the
// hook rules, for 64-bit little-endian Linux (amd64 and arm64 share all of
// these layouts).
//
// The structures here are pure shape: read-only views over kernel- or
// caller-supplied memory. Field order, widths and padding must match the
// target kernel ABI exactly; a port to another pointer width requires a
// sibling descriptor package, not edits here.
package linux
