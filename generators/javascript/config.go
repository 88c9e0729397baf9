// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package javascript

// Options are the target options of the JavaScript generator.
type Options struct {
	// FreezeEnums wraps enum objects in Object.freeze. Defaults to true.
	FreezeEnums bool `option:"freezeEnums"`
}

// Config holds configuration for JavaScript generation.
type Config struct {
	Source  string
	Options Options
}
