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

package multidiff

import "znkr.io/multidiff/internal/config"

// Option configures the behavior of merge functions.
type Option = config.Option

// Linear aligns inputs using the linear space variant of Myers' algorithm instead of a table of
// longest common subsequences.
//
// By default, every alignment step allocates a table with one cell per pair of elements. Steps that
// would need a table of more than 4Mi cells use Myers' algorithm anyway, so memory use is always
// bounded. With this option, every step uses it: memory use is linear and the runtime is O(ND)
// where N is the length of both sides and D is the number of unaligned elements. The result is
// still optimal, but it may break ties between equally long alignments differently.
func Linear() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Mode = config.ModeLinear
		return config.Linear
	}
}
