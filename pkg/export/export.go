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

package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Style selects how rows are terminated.
type Style int

const (
	// StyleCompat terminates every row with ",\r\n", which is what the
	// scoring programs reading these movements expect.
	StyleCompat Style = iota

	// StyleStandard writes plain CSV with "\r\n" line endings.
	StyleStandard
)

// ErrStyle is returned for an unknown Style or style name.
var ErrStyle = errors.New("export: unknown style")

// ParseStyle parses the name of a Style. An empty name is StyleCompat.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "compat", "":
		return StyleCompat, nil
	case "standard":
		return StyleStandard, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrStyle, name)
	}
}

// String returns the name of the Style.
func (style Style) String() string {
	switch style {
	case StyleCompat:
		return "compat"
	case StyleStandard:
		return "standard"
	default:
		return "unknown"
	}
}

// Write writes the given records to w as CSV in the given style.
func Write(w io.Writer, records [][]string, style Style) error {
	switch style {
	case StyleStandard:
		writer := csv.NewWriter(w)
		writer.UseCRLF = true
		return writer.WriteAll(records)

	case StyleCompat:
		var row bytes.Buffer
		writer := csv.NewWriter(&row)

		for _, record := range records {
			row.Reset()
			if err := writer.Write(record); err != nil {
				return err
			}
			writer.Flush()
			if err := writer.Error(); err != nil {
				return err
			}

			// Swap the writer's "\n" for the compat terminator.
			line := bytes.TrimSuffix(row.Bytes(), []byte("\n"))
			if _, err := w.Write(append(line, ",\r\n"...)); err != nil {
				return err
			}
		}

		return nil

	default:
		return fmt.Errorf("%w: %d", ErrStyle, style)
	}
}

// WriteFile writes the given records to the named file, creating or
// truncating it.
func WriteFile(name string, records [][]string, style Style) (err error) {
	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: %w", cerr)
		}
	}()

	if err := Write(file, records, style); err != nil {
		return fmt.Errorf("export %s: %w", name, err)
	}

	return nil
}
