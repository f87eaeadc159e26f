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
	"testing"

	"shadowcall.dev/shadowcall/pkg/hostarch"
	"shadowcall.dev/shadowcall/pkg/shadow"
)

// testMemory is a sparse target address space assembled from segments.
type testMemory struct {
	segs map[hostarch.Addr][]byte
}

func newTestMemory() *testMemory {
	return &testMemory{segs: make(map[hostarch.Addr][]byte)}
}

func (m *testMemory) add(addr hostarch.Addr, b []byte) {
	m.segs[addr] = b
}

// CopyIn implements Memory.CopyIn.
func (m *testMemory) CopyIn(addr hostarch.Addr, dst []byte) (int, error) {
	for base, seg := range m.segs {
		if addr < base {
			continue
		}
		off := uint64(addr - base)
		if off+uint64(len(dst)) <= uint64(len(seg)) {
			return copy(dst, seg[off:]), nil
		}
	}
	return 0, fmt.Errorf("no mapping for [%#x, %#x)", addr, uint64(addr)+uint64(len(dst)))
}

// testContext combines a recording validator with a fake target memory.
type testContext struct {
	*shadow.Recorder
	*testMemory
}

func newTestContext() *testContext {
	return &testContext{
		Recorder:   new(shadow.Recorder),
		testMemory: newTestMemory(),
	}
}

func TestHooksNeverNil(t *testing.T) {
	for _, table := range []*Table{LinuxAMD64, LinuxARM64} {
		// Sysno 1<<40 is unregistered everywhere.
		pre, post := table.Hooks(Sysno(1 << 40))
		if pre == nil || post == nil {
			t.Fatalf("%s: Hooks() returned nil for unregistered syscall", table.Name)
		}
		tc := newTestContext()
		pre(tc, Arguments{})
		post(tc, Arguments{}, 1)
		if got := tc.Accesses(); len(got) != 0 {
			t.Errorf("%s: no-op hooks issued %d validator calls", table.Name, len(got))
		}
	}
}

func TestLookupUnregistered(t *testing.T) {
	if r, ok := LinuxAMD64.Lookup(Sysno(1 << 40)); ok {
		t.Errorf("Lookup of unregistered syscall succeeded with rule %q", r.Name)
	}
}

func TestTableCopiesRules(t *testing.T) {
	rules := map[Sysno]Rule{1: ReadRule}
	table := NewTable("test", rules)
	rules[2] = RecvmsgRule
	delete(rules, 1)
	if _, ok := table.Lookup(1); !ok {
		t.Error("rule removed from source map disappeared from table")
	}
	if _, ok := table.Lookup(2); ok {
		t.Error("rule added to source map after construction appeared in table")
	}
}

func TestRulesSnapshot(t *testing.T) {
	snap := LinuxAMD64.Rules()
	delete(snap, 0)
	if _, ok := LinuxAMD64.Lookup(0); !ok {
		t.Error("mutating the Rules() snapshot changed the table")
	}
}

func TestUnnamedRulePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewTable accepted an unnamed rule")
		}
	}()
	NewTable("test", map[Sysno]Rule{1: {Pre: readPre}})
}

func TestBuiltinTables(t *testing.T) {
	tables := Tables()
	for _, arch := range []string{"amd64", "arm64"} {
		table, ok := tables[arch]
		if !ok {
			t.Fatalf("no built-in table for %s", arch)
		}
		if len(table.Rules()) == 0 {
			t.Errorf("%s table is empty", table.Name)
		}
	}
	// Spot-check well-known numbers.
	if r, ok := tables["amd64"].Lookup(0); !ok || r.Name != "read" {
		t.Errorf("amd64 syscall 0 = %q, want read", r.Name)
	}
	if r, ok := tables["arm64"].Lookup(63); !ok || r.Name != "read" {
		t.Errorf("arm64 syscall 63 = %q, want read", r.Name)
	}
}
