// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package textmerge_test

import (
	"fmt"

	"znkr.io/multidiff/textmerge"
)

var revisions = []string{
	`[server]
host = localhost
port = 8080
`,
	`[server]
host = 0.0.0.0
port = 8080
tls = true
`,
	`[server]
host = localhost
port = 9090
`,
}

func ExampleCombined() {
	fmt.Print(textmerge.Combined(revisions))
	// Output:
	// +++ [server]
	// + + host = localhost
	//  +  host = 0.0.0.0
	// ++  port = 8080
	//  +  tls = true
	//   + port = 9090
}

func ExampleTable() {
	fmt.Print(textmerge.Table(revisions))
	// Output:
	// | Line             | Appears in | 0 | 1 | 2 |
	// |------------------|------------|---|---|---|
	// | [server]         | 0, 1, 2    | 1 | 1 | 1 |
	// | host = localhost | 0, 2       | 2 | - | 2 |
	// | host = 0.0.0.0   | 1          | - | 2 | - |
	// | port = 8080      | 0, 1       | 3 | 3 | - |
	// | tls = true       | 1          | - | 4 | - |
	// | port = 9090      | 2          | - | - | 3 |
}
