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

// Package manifest loads YAML manifests describing the ownership and group
// permissions to enforce on a set of paths.
package manifest

import (
	"fmt"

	"github.com/fsown/fsown/secfs"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Entry describes one path whose ownership and group permissions should be
// applied. Owner is optional; when empty, ownership is left unchanged. Allow
// is optional; when absent, permissions are left unchanged, while an
// explicitly empty list revokes all group access.
type Entry struct {
	Path  string   `yaml:"path"`
	Owner string   `yaml:"owner,omitempty"`
	Allow []string `yaml:"allow,omitempty"`
}

// Permissions parses the entry's allow list into a permission set.
func (e Entry) Permissions() (secfs.PermissionSet, error) {
	var set secfs.PermissionSet
	for _, name := range e.Allow {
		p, err := secfs.ParsePermission(name)
		if err != nil {
			return 0, err
		}
		set |= p
	}
	return set, nil
}

// Manifest is an ordered list of entries, applied first to last.
type Manifest struct {
	Entries []Entry `yaml:"entries"`
}

// Load reads and validates a manifest from path.
func Load(fs afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if len(m.Entries) == 0 {
		return nil, fmt.Errorf("manifest %s has no entries", path)
	}
	for i, e := range m.Entries {
		if e.Path == "" {
			return nil, fmt.Errorf("manifest %s: entry %d has no path", path, i)
		}
		if _, err := e.Permissions(); err != nil {
			return nil, fmt.Errorf("manifest %s: entry %d (%s): %w", path, i, e.Path, err)
		}
	}
	return &m, nil
}
