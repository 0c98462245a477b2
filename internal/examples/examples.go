// Copyright 2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package examples holds the types used by the examples in ./example_test.go.
package examples

//go:generate go run ../tools/fieldgen

// Person is a record with a generated field view.
//
//hypertuple:fields
type Person struct {
	Name string
	Age  int
}

// Condition is the weather at a station.
type Condition int32

const (
	ConditionUnspecified Condition = iota
	ConditionSunny
	ConditionRainy
	ConditionOvercast
)

func (c Condition) String() string {
	switch c {
	case ConditionSunny:
		return "sunny"
	case ConditionRainy:
		return "rainy"
	case ConditionOvercast:
		return "overcast"
	default:
		return "unspecified"
	}
}

// Station is a weather station report. It has no generated view, so it is
// bound by reflection.
type Station struct {
	ID          string    `json:"station"`
	Frequency   float32   `json:"frequency"`
	Temperature float32   `json:"temperature"`
	Pressure    float32   `json:"pressure"`
	WindSpeed   float32   `json:"wind_speed"`
	Conditions  Condition `json:"conditions"`
}

// Stations returns some weather reports.
func Stations() []Station {
	return []Station{
		{ID: "KAD93", Frequency: 162.525, Temperature: 11.3, Pressure: 30.08, WindSpeed: 2.3, Conditions: ConditionOvercast},
		{ID: "KHB60", Frequency: 162.55, Temperature: 13.7, Pressure: 28.09, WindSpeed: 1.9, Conditions: ConditionOvercast},
	}
}
