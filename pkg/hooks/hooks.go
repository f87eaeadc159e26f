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

// Package hooks maps syscall numbers to pairs of shadow-validation hooks.
//
// For each supported syscall a pre-hook declares which argument memory the
// kernel will read or fill, and a post-hook marks, conditioned on the return
// value, the subset of that memory the kernel actually populated. Hooks are
// pure functions over the argument list: they hold no state, never block,
// and issue nothing but validator calls. The dispatcher that intercepts the
// syscall invokes the pre-hook, performs the real call, then invokes the
// post-hook with the unmodified return value.
package hooks

import (
	"fmt"

	"shadowcall.dev/shadowcall/pkg/hostarch"
	"shadowcall.dev/shadowcall/pkg/shadow"
)

// Sysno is a syscall number. Its meaning depends on the table it is looked
// up in; the same rule may sit behind different numbers on different arches.
type Sysno uintptr

// Memory provides read access to the instrumented program's address space.
// Hooks use it to decode kernel-updated structures such as msghdr; they
// never write through it and never retain addresses past their own return.
type Memory interface {
	// CopyIn copies len(dst) bytes starting at addr into dst, returning
	// the number of bytes copied. A short copy returns an error.
	CopyIn(addr hostarch.Addr, dst []byte) (int, error)
}

// Context is the environment a hook runs against: the shadow validator to
// annotate and the target memory to decode from. The dispatcher supplies one
// per intercepted call; a single Context may be shared across threads since
// hooks hold no state of their own.
type Context interface {
	shadow.Validator
	Memory
}

// PreHook runs immediately before the real syscall.
type PreHook func(t Context, args Arguments)

// PostHook runs immediately after the real syscall. rv is the raw kernel
// return value, passed through unchanged by the dispatcher; each rule
// applies its own success predicate to it.
type PostHook func(t Context, args Arguments, rv int64)

// Rule binds one syscall to its hook pair. Rules are immutable and
// stateless; either hook may be nil, meaning no validation on that side.
type Rule struct {
	// Name is the syscall name, for tooling and diagnostics only.
	Name string

	Pre  PreHook
	Post PostHook
}

func nopPre(Context, Arguments)         {}
func nopPost(Context, Arguments, int64) {}

// Table maps syscall numbers to rules for one ABI. It is built once at
// startup and read-only afterwards, so lookups need no locking.
type Table struct {
	// Name identifies the ABI the numbers belong to, e.g. "linux/amd64".
	Name string

	rules map[Sysno]Rule
}

// NewTable returns a Table over a copy of rules. The input map cannot carry
// duplicate keys by construction, and the copy keeps later mutation of the
// caller's map from leaking in, which together give the one-rule-per-sysno,
// immutable-after-registration property.
func NewTable(name string, rules map[Sysno]Rule) *Table {
	t := &Table{
		Name:  name,
		rules: make(map[Sysno]Rule, len(rules)),
	}
	for no, r := range rules {
		if r.Name == "" {
			panic(fmt.Sprintf("unnamed hook rule for syscall %d in table %q", no, name))
		}
		t.rules[no] = r
	}
	return t
}

// Lookup returns the rule registered for sysno, and whether one exists.
func (t *Table) Lookup(sysno Sysno) (Rule, bool) {
	r, ok := t.rules[sysno]
	return r, ok
}

// Hooks returns the hook pair for sysno. Both returned hooks are always
// callable: an unregistered syscall, or a registered rule with a missing
// side, yields a no-op. Unregistered syscalls are a documented coverage gap,
// not an error.
func (t *Table) Hooks(sysno Sysno) (PreHook, PostHook) {
	r := t.rules[sysno]
	pre, post := r.Pre, r.Post
	if pre == nil {
		pre = nopPre
	}
	if post == nil {
		post = nopPost
	}
	return pre, post
}

// Rules returns a snapshot of the registered rules, for tooling.
func (t *Table) Rules() map[Sysno]Rule {
	out := make(map[Sysno]Rule, len(t.rules))
	for no, r := range t.rules {
		out[no] = r
	}
	return out
}

// Tables returns the built-in per-arch tables, keyed by arch name.
func Tables() map[string]*Table {
	return map[string]*Table{
		"amd64": LinuxAMD64,
		"arm64": LinuxARM64,
	}
}
