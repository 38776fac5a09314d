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
	"fmt"
	"strings"
)

// PermissionSet is the abstract access intent for a group: any combination
// of read, write and execute. An empty set is valid and grants nothing.
type PermissionSet uint8

const (
	PermRead PermissionSet = 1 << iota
	PermWrite
	PermExecute
)

// Has reports whether every bit in q is present in p.
func (p PermissionSet) Has(q PermissionSet) bool {
	return p&q == q
}

func (p PermissionSet) String() string {
	var parts []string
	if p.Has(PermRead) {
		parts = append(parts, "read")
	}
	if p.Has(PermWrite) {
		parts = append(parts, "write")
	}
	if p.Has(PermExecute) {
		parts = append(parts, "execute")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// ParsePermission parses a single permission name such as "read" or "w".
func ParsePermission(s string) (PermissionSet, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "read", "r":
		return PermRead, nil
	case "write", "w":
		return PermWrite, nil
	case "execute", "exec", "x":
		return PermExecute, nil
	case "", "none":
		return 0, nil
	default:
		return 0, fmt.Errorf("unknown permission %q", s)
	}
}

// ParsePermissionSet parses a comma-separated permission list, e.g.
// "read,write". The empty string parses to the empty set.
func ParsePermissionSet(s string) (PermissionSet, error) {
	var set PermissionSet
	if strings.TrimSpace(s) == "" {
		return set, nil
	}
	for _, part := range strings.Split(s, ",") {
		p, err := ParsePermission(part)
		if err != nil {
			return 0, err
		}
		set |= p
	}
	return set, nil
}
