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

package shadow

import (
	"github.com/sirupsen/logrus"

	"shadowcall.dev/shadowcall/pkg/hostarch"
)

// TraceValidator wraps another Validator and logs every primitive call at
// debug level. Dispatchers insert it when diagnosing shadow-state drift;
// hooks themselves never log.
type TraceValidator struct {
	inner  Validator
	logger logrus.FieldLogger
}

// NewTraceValidator returns a TraceValidator forwarding to inner and logging
// to logger.
func NewTraceValidator(inner Validator, logger logrus.FieldLogger) *TraceValidator {
	return &TraceValidator{inner: inner, logger: logger}
}

func (v *TraceValidator) trace(kind AccessKind, addr hostarch.Addr, length uint64) {
	v.logger.WithFields(logrus.Fields{
		"kind": kind.String(),
		"addr": addr,
		"len":  length,
	}).Debug("shadow annotation")
}

// PreRead implements Validator.PreRead.
func (v *TraceValidator) PreRead(addr hostarch.Addr, length uint64) {
	v.trace(PreReadAccess, addr, length)
	v.inner.PreRead(addr, length)
}

// PreWrite implements Validator.PreWrite.
func (v *TraceValidator) PreWrite(addr hostarch.Addr, length uint64) {
	v.trace(PreWriteAccess, addr, length)
	v.inner.PreWrite(addr, length)
}

// PostRead implements Validator.PostRead.
func (v *TraceValidator) PostRead(addr hostarch.Addr, length uint64) {
	v.trace(PostReadAccess, addr, length)
	v.inner.PostRead(addr, length)
}

// PostWrite implements Validator.PostWrite.
func (v *TraceValidator) PostWrite(addr hostarch.Addr, length uint64) {
	v.trace(PostWriteAccess, addr, length)
	v.inner.PostWrite(addr, length)
}
