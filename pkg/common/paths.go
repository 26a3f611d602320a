// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/samber/lo"

	"laptudirm.com/x/movement/pkg/event"
	"laptudirm.com/x/movement/pkg/internal/util"
)

const FilePermissions = 0755

var (
	// Directory is the root of movement's per-user files.
	Directory = filepath.Join(xdg.Home, "movement")

	// EventsDirectory holds saved event files which can be referred to
	// by name instead of by path.
	EventsDirectory = filepath.Join(Directory, "events")
)

// ErrEventNotFound is returned by FindEvent when the reference is neither
// an event file nor a saved event.
var ErrEventNotFound = errors.New("event not found")

// TryMkdir creates the given directory and its parents if needed.
func TryMkdir(dir string) error {
	return os.MkdirAll(dir, FilePermissions)
}

// FindEvent resolves an event reference into the path of its file. The
// reference is either the path to an event file or the name of an event
// saved in the given directory.
func FindEvent(dir, ref string) (string, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return ref, nil
	}

	for _, ext := range event.Extensions {
		path := filepath.Join(dir, ref+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrEventNotFound, ref)
}

// ListEvents returns the names of the events saved in the given
// directory, in natural order.
func ListEvents(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries = lo.Filter(entries, func(entry os.DirEntry, _ int) bool {
		return !entry.IsDir() && lo.Contains(event.Extensions, strings.ToLower(filepath.Ext(entry.Name())))
	})

	names := lo.Uniq(lo.Map(entries, func(entry os.DirEntry, _ int) string {
		return strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
	}))

	sort.Slice(names, func(i, j int) bool {
		return util.NaturalLess(names[i], names[j])
	})

	return names, nil
}
