// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"github.com/albertocavalcante/contractgen/generator"
	"github.com/albertocavalcante/contractgen/generators/c"
	"github.com/albertocavalcante/contractgen/generators/docs"
	"github.com/albertocavalcante/contractgen/generators/golang"
	"github.com/albertocavalcante/contractgen/generators/java"
	"github.com/albertocavalcante/contractgen/generators/javascript"
	"github.com/albertocavalcante/contractgen/generators/kotlin"
	"github.com/albertocavalcante/contractgen/generators/objc"
	"github.com/albertocavalcante/contractgen/generators/php"
	"github.com/albertocavalcante/contractgen/generators/proto"
	"github.com/albertocavalcante/contractgen/generators/ruby"
)

func init() {
	generator.Register(c.NewGenerator())
	generator.Register(objc.NewGenerator())
	generator.Register(php.NewGenerator())
	generator.Register(ruby.NewGenerator())
	generator.Register(javascript.NewGenerator())
	generator.Register(java.NewGenerator())
	generator.Register(golang.NewGenerator())
	generator.Register(kotlin.NewGenerator())
	generator.Register(proto.NewGenerator())
	generator.Register(docs.NewGenerator())
}
