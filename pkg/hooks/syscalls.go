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
	"shadowcall.dev/shadowcall/pkg/abi/linux"
	"shadowcall.dev/shadowcall/pkg/hostarch"
)

// The rules below cover three return-value conventions:
//
//   - byte-count: a positive return is the number of bytes written into a
//     single output buffer, which may be fewer than requested (read,
//     getdents);
//   - zero-is-success: zero means success, any other value leaves outputs
//     unmarked (rt_sigpending, clock_gettime, clock_getres);
//   - positive-is-success: the sign signals success but the magnitude is a
//     pid or similar, unrelated to any byte count (wait4, waitpid,
//     recvmsg's header-described buffers).
//
// Nullable pointer arguments are skipped when null on both sides; marking
// through a null optional argument would be a false positive, not caution.

// sizeOfInt32 is the size of the C int status word filled in by the wait
// family.
const sizeOfInt32 = 4

// Rules for the syscalls with registered hook pairs. A rule carries no
// per-arch information; the per-arch tables bind these to numbers.
var (
	ReadRule         = Rule{Name: "read", Pre: readPre, Post: readPost}
	RecvmsgRule      = Rule{Name: "recvmsg", Pre: recvmsgPre, Post: recvmsgPost}
	SigpendingRule   = Rule{Name: "rt_sigpending", Pre: sigpendingPre, Post: sigpendingPost}
	GetdentsRule     = Rule{Name: "getdents", Pre: getdentsPre, Post: getdentsPost}
	Getdents64Rule   = Rule{Name: "getdents64", Pre: getdentsPre, Post: getdentsPost}
	Wait4Rule        = Rule{Name: "wait4", Pre: wait4Pre, Post: wait4Post}
	WaitpidRule      = Rule{Name: "waitpid", Pre: waitpidPre, Post: waitpidPost}
	ClockGettimeRule = Rule{Name: "clock_gettime", Pre: clockPre, Post: clockPost}
	ClockGetresRule  = Rule{Name: "clock_getres", Pre: clockPre, Post: clockPost}
)

// read(2): ssize_t read(int fd, void *buf, size_t count).
//
// Byte-count convention: the kernel fills at most count bytes and returns
// how many.

func readPre(t Context, args Arguments) {
	buf := args[1].Pointer()
	count := args[2].SizeT()
	if buf != 0 {
		t.PreWrite(buf, count)
	}
}

func readPost(t Context, args Arguments, rv int64) {
	buf := args[1].Pointer()
	count := args[2].SizeT()
	if rv <= 0 || buf == 0 {
		return
	}
	n := uint64(rv)
	if n > count {
		n = count
	}
	t.PostWrite(buf, n)
}

// getdents(2)/getdents64(2): the kernel packs at most count bytes of
// variable-length records into buf and returns the packed size. Both ABI
// widths share the hook pair; only the record layout inside the buffer
// differs, and the hooks never look inside it.

func getdentsPre(t Context, args Arguments) {
	dirp := args[1].Pointer()
	count := uint64(args[2].Uint())
	if dirp != 0 {
		t.PreWrite(dirp, count)
	}
}

func getdentsPost(t Context, args Arguments, rv int64) {
	dirp := args[1].Pointer()
	count := uint64(args[2].Uint())
	if rv <= 0 || dirp == 0 {
		return
	}
	// Exactly the returned size is initialized, never the full capacity.
	n := uint64(rv)
	if n > count {
		n = count
	}
	t.PostWrite(dirp, n)
}

// rt_sigpending(2): int rt_sigpending(sigset_t *set, size_t sigsetsize).
//
// Zero-is-success convention over a fixed-size output.

func sigpendingPre(t Context, args Arguments) {
	if set := args[0].Pointer(); set != 0 {
		t.PreWrite(set, linux.SignalSetSize)
	}
}

func sigpendingPost(t Context, args Arguments, rv int64) {
	set := args[0].Pointer()
	if rv != 0 || set == 0 {
		return
	}
	t.PostWrite(set, linux.SignalSetSize)
}

// clock_gettime(2)/clock_getres(2): int (clockid_t clk, struct timespec *tp).
//
// Zero-is-success convention; tp is nullable (clock_getres allows a null
// result pointer).

func clockPre(t Context, args Arguments) {
	if tp := args[1].Pointer(); tp != 0 {
		t.PreWrite(tp, linux.SizeOfTimespec)
	}
}

func clockPost(t Context, args Arguments, rv int64) {
	tp := args[1].Pointer()
	if rv != 0 || tp == 0 {
		return
	}
	t.PostWrite(tp, linux.SizeOfTimespec)
}

// wait4(2): pid_t wait4(pid_t pid, int *wstatus, int options,
// struct rusage *rusage).
//
// Positive-is-success convention: the return is a pid, unrelated to output
// sizes. wstatus and rusage are independently nullable; the absence of one
// never suppresses marking of the other.

func wait4Pre(t Context, args Arguments) {
	if status := args[1].Pointer(); status != 0 {
		t.PreWrite(status, sizeOfInt32)
	}
	if rusage := args[3].Pointer(); rusage != 0 {
		t.PreWrite(rusage, linux.SizeOfRusage)
	}
}

func wait4Post(t Context, args Arguments, rv int64) {
	if rv <= 0 {
		return
	}
	if status := args[1].Pointer(); status != 0 {
		t.PostWrite(status, sizeOfInt32)
	}
	if rusage := args[3].Pointer(); rusage != 0 {
		t.PostWrite(rusage, linux.SizeOfRusage)
	}
}

// waitpid(2): pid_t waitpid(pid_t pid, int *wstatus, int options).
//
// Same convention as wait4 without the rusage output. 64-bit Linux has no
// waitpid syscall (libc lowers it to wait4), so this rule appears in no
// built-in table; interposition layers hooking the libc boundary, and
// future 32-bit tables, bind it themselves.

func waitpidPre(t Context, args Arguments) {
	if status := args[1].Pointer(); status != 0 {
		t.PreWrite(status, sizeOfInt32)
	}
}

func waitpidPost(t Context, args Arguments, rv int64) {
	if rv <= 0 {
		return
	}
	if status := args[1].Pointer(); status != 0 {
		t.PostWrite(status, sizeOfInt32)
	}
}

// recvmsg(2): ssize_t recvmsg(int sockfd, struct msghdr *msg, int flags).
//
// The caller initializes the header, so the pre-hook read-marks it whole.
// On success the kernel has scattered payload across the header's iovec
// array and appended ancillary data to its control buffer, so the post-hook
// re-reads the header (the kernel updates it in place) and marks what it
// describes.

func recvmsgPre(t Context, args Arguments) {
	if msgAddr := args[1].Pointer(); msgAddr != 0 {
		t.PreRead(msgAddr, linux.SizeOfMessageHeader64)
	}
}

func recvmsgPost(t Context, args Arguments, rv int64) {
	msgAddr := args[1].Pointer()
	if rv <= 0 || msgAddr == 0 {
		return
	}
	var msg linux.MessageHeader64
	if err := copyInMessageHeader64(t, msgAddr, &msg); err != nil {
		// Unreadable header: mark nothing rather than guess.
		return
	}
	// The element count comes from target memory and may be corrupt or
	// hostile; the kernel itself never accepts more than UIO_MAXIOV, so
	// clamp before iterating.
	count := msg.IovLen
	if count > linux.UIO_MAXIOV {
		count = linux.UIO_MAXIOV
	}
	if msg.Iov != 0 {
		for i := uint64(0); i < count; i++ {
			var iov linux.Iovec
			if err := copyInIovec(t, hostarch.Addr(msg.Iov), i, &iov); err != nil {
				break
			}
			if iov.Base != 0 {
				t.PostWrite(hostarch.Addr(iov.Base), iov.Len)
			}
		}
	}
	// The control buffer is marked whenever the call succeeded, even with
	// an empty scatter/gather array.
	if msg.Control != 0 {
		t.PostWrite(hostarch.Addr(msg.Control), msg.ControlLen)
	}
}
