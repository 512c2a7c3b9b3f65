// Copyright 2016, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"os"
	"strconv"
)

// Environment variables
const (
	GIMI_KLV_MAX_ITERATIONS  = "GIMI_KLV_MAX_ITERATIONS"
	GIMI_KLV_UNSIGNED_ANGLES = "GIMI_KLV_UNSIGNED_ANGLES"
)

// GetKLVMaxIterations returns the KLV decode iteration bound from the
// GIMI_KLV_MAX_ITERATIONS environment variable, or zero if it is unset
// or unusable, meaning the decoder default applies
func GetKLVMaxIterations() int {
	raw, ok := os.LookupEnv(GIMI_KLV_MAX_ITERATIONS)
	if !ok {
		return 0
	}
	bound, err := strconv.Atoi(raw)
	if err != nil || bound <= 0 {
		LogAlert(&BasicLogContext{}, "Ignoring unusable "+GIMI_KLV_MAX_ITERATIONS+" value: "+raw)
		return 0
	}
	return bound
}

// UseUnsignedAngles returns true if the GIMI_KLV_UNSIGNED_ANGLES
// environment variable asks for corner angles to be decoded from
// unsigned rather than signed 32-bit values
func UseUnsignedAngles() (bool, error) {
	return strconv.ParseBool(os.Getenv(GIMI_KLV_UNSIGNED_ANGLES))
}
