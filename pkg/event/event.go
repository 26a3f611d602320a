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

package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/movement/pkg/export"
	"laptudirm.com/x/movement/pkg/grid"
	"laptudirm.com/x/movement/pkg/schedule"
)

var (
	// ErrNoSections is returned for events without any section.
	ErrNoSections = errors.New("event: no sections")

	// ErrFraction is returned when a whole number field holds a
	// fractional value.
	ErrFraction = errors.New("event: expected a whole number")
)

// Event describes a movement made up of one or more independently
// seeded sections which are joined into a single grid.
type Event struct {
	// Name of the event, also used for the default output file.
	Name string `mapstructure:"name"`

	// Highest board set number, or -1 for a new set every round.
	Boards int `mapstructure:"boards"`

	// File to write the movement to.
	Output string `mapstructure:"output"`

	// Row terminator style, either compat or standard.
	Style string `mapstructure:"style"`

	Sections []Section `mapstructure:"sections"`

	// Displayed team number of each joined column.
	Order []int `mapstructure:"order"`
}

// Section is a single round robin of an event.
type Section struct {
	Teams   int   `mapstructure:"teams"`
	Double  bool  `mapstructure:"double"`
	Mapping []int `mapstructure:"mapping"`
}

// Extensions lists the file extensions recognised as event files.
var Extensions = []string{".yaml", ".yml", ".json"}

// Load reads the event file at the given path. JSON files are recognised
// by their extension, everything else is read as YAML.
func Load(path string) (*Event, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(file, &raw)
	} else {
		err = yaml.Unmarshal(file, &raw)
	}

	if err != nil {
		return nil, fmt.Errorf("event %s: %w", path, err)
	}

	event, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("event %s: %w", path, err)
	}

	if event.Name == "" {
		event.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if event.Output == "" {
		event.Output = event.Name + ".csv"
	}

	return event, nil
}

// Decode builds an Event out of its generic representation.
func Decode(raw map[string]any) (*Event, error) {
	event := Event{Boards: grid.DefaultBoardSets}

	// mapstructure flattens hook errors into strings, so the first one is
	// kept aside to be returned as is.
	var fraction error
	hook := func(from reflect.Type, to reflect.Type, data any) (any, error) {
		data, err := rejectFractions(from, to, data)
		if err != nil && fraction == nil {
			fraction = err
		}
		return data, err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		DecodeHook:       hook,
		Result:           &event,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		if fraction != nil {
			return nil, fraction
		}
		return nil, err
	}

	if err := event.Validate(); err != nil {
		return nil, err
	}

	return &event, nil
}

// rejectFractions stops JSON numbers with a fractional part from being
// truncated into integer fields.
func rejectFractions(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float64 && from.Kind() != reflect.Float32 {
		return data, nil
	}

	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}

	value := reflect.ValueOf(data).Float()
	if value != math.Trunc(value) {
		return nil, fmt.Errorf("%w: %v", ErrFraction, value)
	}

	return data, nil
}

// Validate checks the parts of the event which can be checked without
// generating it.
func (event *Event) Validate() error {
	if len(event.Sections) == 0 {
		return ErrNoSections
	}

	_, err := export.ParseStyle(event.Style)
	return err
}

// Build generates, joins, and formats the sections of the event.
func (event *Event) Build() (*grid.Grid, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}

	sections := make([]schedule.Matrix, len(event.Sections))
	for i, section := range event.Sections {
		matches, err := schedule.Generate(section.Teams, schedule.Options{
			Double:  section.Double,
			Mapping: section.Mapping,
		})
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i+1, err)
		}

		sections[i] = matches
	}

	matches, err := schedule.Join(sections, event.Order)
	if err != nil {
		return nil, err
	}

	logrus.Debugf(
		"joined %d sections into %d tables: %v",
		len(sections), matches.Teams(),
		lo.Map(event.Sections, func(section Section, _ int) int {
			return section.Teams
		}),
	)

	return grid.Format(matches, event.Boards)
}

// Export builds the event and writes it to its output file.
func (event *Event) Export() error {
	style, err := export.ParseStyle(event.Style)
	if err != nil {
		return err
	}

	movement, err := event.Build()
	if err != nil {
		return err
	}

	return export.WriteFile(event.Output, movement.Records(), style)
}
