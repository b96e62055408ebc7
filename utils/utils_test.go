// Copyright 2022 Board of Trustees of the University of Illinois.
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

package utils

import (
	"testing"

	"gotest.tools/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Acme Eco", "acme-eco"},
		{"  Acme   Eco  ", "acme-eco"},
		{"Acme & Sons, Ltd.", "acme-sons-ltd"},
		{"Café 24/7", "café-24-7"},
		{"---", ""},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, Slugify(c.name), c.want)
	}
}
