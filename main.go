// Copyright 2025 The DateMap Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/jcodagnone/datemap/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
