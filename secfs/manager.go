// Copyright 2025 Fsown Authors
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
//
// SPDX-License-Identifier: Apache-2.0

package secfs

import (
	"log/slog"
)

// Manager is the public surface for ownership and permission changes. It is
// a stateless façade over the resolver, descriptor accessor, privilege guard
// and permission translator; it owns no buffers and caches nothing across
// calls. Concurrent mutations of the same path are not coordinated here --
// callers needing atomicity across resolve-then-apply must serialize
// externally.
type Manager struct {
	Resolver  Resolver
	Access    DescriptorAccessor
	Guard     PrivilegeGuard
	Translate Translator
	// Log receives one diagnostic line per failure, carrying the operation
	// and the backend error. Defaults to slog.Default.
	Log *slog.Logger
}

// NewManager returns a Manager wired to the platform implementations.
func NewManager() *Manager {
	return &Manager{
		Resolver:  NewResolver(),
		Access:    NewDescriptorAccessor(),
		Guard:     NewPrivilegeGuard(),
		Translate: NewTranslator(),
	}
}

func (m *Manager) log() *slog.Logger {
	if m.Log != nil {
		return m.Log
	}
	return slog.Default()
}

// OwnerGroup returns the account name of the principal owning path. The
// first failure encountered (descriptor access or reverse resolution) is
// returned as-is.
func (m *Manager) OwnerGroup(path string) (string, error) {
	owner, err := m.Access.Owner(path)
	if err != nil {
		return "", err
	}
	return m.Resolver.ResolveID(owner)
}

// SetOwnerGroup makes the named group the owner of path. Ownership changes
// are best-effort in this domain: failures are reported through the
// diagnostic log and the boolean result, never raised to the caller. The
// take-ownership privilege is enabled only for the duration of the
// descriptor write and is always disabled afterwards, even when the write
// fails. An unresolvable name returns false without touching the privilege
// or the descriptor.
func (m *Manager) SetOwnerGroup(path string, groupName string) bool {
	group, err := m.Resolver.ResolveName(groupName)
	if err != nil {
		m.log().Error("owner change: group resolution failed",
			"path", path, "group", groupName, "err", err)
		return false
	}

	err = m.Guard.WithPrivilege(SeTakeOwnershipPrivilege, func() error {
		return m.Access.SetOwner(path, group)
	})
	if err != nil {
		// Privilege was explicitly elevated for this write, so a denial
		// here is unexpected, unlike in SetGroupPermissions.
		m.log().Error("owner change failed",
			"path", path, "group", groupName, "err", err)
		return false
	}
	return true
}

// SetGroupPermissions rewrites path's DACL to grant perms to the principal
// currently owning path, plus an unconditional full-control entry for the
// built-in administrators group. The current owner is reused as the target
// group; permissions always apply to whoever owns the file.
//
// A permission denial from the DACL write is the expected terminal outcome
// for unprivileged callers and is logged at debug level only; every other
// failure is reported as an unexpected condition. The distinction is
// surfaced through diagnostics, not the return value.
func (m *Manager) SetGroupPermissions(path string, perms PermissionSet) bool {
	owner, err := m.Access.Owner(path)
	if err != nil {
		m.log().Error("permission change: owner lookup failed",
			"path", path, "err", err)
		return false
	}

	dacl, err := m.Translate.BuildDACL(owner, perms)
	if err != nil {
		m.log().Error("permission change: ACL construction failed",
			"path", path, "perms", perms.String(), "err", err)
		return false
	}
	defer dacl.Close()

	if err := m.Access.SetDACL(path, dacl); err != nil {
		if IsPermissionDenied(err) {
			m.log().Debug("permission change denied",
				"path", path, "perms", perms.String())
		} else {
			m.log().Error("permission change failed",
				"path", path, "perms", perms.String(), "err", err)
		}
		return false
	}
	return true
}
