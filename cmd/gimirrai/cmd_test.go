// Copyright 2018, RadiantBlue Technologies, Inc.
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

package main

import (
	"encoding/binary"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ricardogsilva/gimirrai/klv"
	"github.com/ricardogsilva/gimirrai/util"
)

// General test mocks and utils

func writeRawPayload(t *testing.T) string {
	angle := func(tag byte, raw int32) []byte {
		out := []byte{tag, 4}
		payload := make([]byte, 4)
		binary.BigEndian.PutUint32(payload, uint32(raw))
		return append(out, payload...)
	}
	var payload []byte
	payload = append(payload, angle(82, 536870912)...)
	payload = append(payload, angle(83, -536870912)...)
	payload = append(payload, angle(86, 268435456)...)
	payload = append(payload, angle(87, 536870912)...)
	payload = append(payload, 1, 2, 0x00, 0x00)

	path := filepath.Join(t.TempDir(), "payload.klv")
	assert.Nil(t, ioutil.WriteFile(path, payload, 0644))
	return path
}

func TestCreateCliApp_Commands(t *testing.T) {
	// Tested code
	app := createCliApp()

	// Asserts
	assert.Equal(t, "gimirrai", app.Name)
	names := make([]string, 0, len(app.Commands))
	for _, command := range app.Commands {
		names = append(names, command.Name)
	}
	assert.Contains(t, names, "info")
	assert.Contains(t, names, "vrt")
	assert.Contains(t, names, "version")
}

func TestInfo_RawPayload(t *testing.T) {
	// Mock
	path := writeRawPayload(t)
	app := createCliApp()

	// Tested code
	err := app.Run([]string{"gimirrai", "info", "--raw", "--width", "640", "--height", "480", path})

	// Asserts
	assert.Nil(t, err)
}

func TestNewDecoder_ReadsEnvironment(t *testing.T) {
	// Mock
	os.Setenv(util.GIMI_KLV_MAX_ITERATIONS, "123")
	os.Setenv(util.GIMI_KLV_UNSIGNED_ANGLES, "true")
	defer os.Unsetenv(util.GIMI_KLV_MAX_ITERATIONS)
	defer os.Unsetenv(util.GIMI_KLV_UNSIGNED_ANGLES)

	// Tested code
	decoder := newDecoder(&util.BasicLogContext{})

	// Asserts
	assert.Equal(t, 123, decoder.MaxIterations)
	assert.Equal(t, klv.UnsignedAngles, decoder.Angles)
}
