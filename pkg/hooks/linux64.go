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

// The built-in tables bind the rules to raw syscall numbers per ABI. Raw
// numbers (rather than golang.org/x/sys constants) keep every table
// buildable on every platform, so cross-arch tooling and tests see all of
// them at once. Syscalls absent from a table are an intentional coverage
// gap and get no-op hooks from Table.Hooks.

// LinuxAMD64 is the hook table for linux/amd64.
var LinuxAMD64 = NewTable("linux/amd64", map[Sysno]Rule{
	0:   ReadRule,         // read
	47:  RecvmsgRule,      // recvmsg
	61:  Wait4Rule,        // wait4
	78:  GetdentsRule,     // getdents
	127: SigpendingRule,   // rt_sigpending
	217: Getdents64Rule,   // getdents64
	228: ClockGettimeRule, // clock_gettime
	229: ClockGetresRule,  // clock_getres
})

// LinuxARM64 is the hook table for linux/arm64. arm64 never had the legacy
// getdents or waitpid entry points, so only the modern forms appear.
var LinuxARM64 = NewTable("linux/arm64", map[Sysno]Rule{
	61:  Getdents64Rule,   // getdents64
	63:  ReadRule,         // read
	113: ClockGettimeRule, // clock_gettime
	114: ClockGetresRule,  // clock_getres
	136: SigpendingRule,   // rt_sigpending
	212: RecvmsgRule,      // recvmsg
	260: Wait4Rule,        // wait4
})
