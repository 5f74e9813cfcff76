// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package fnerrors

import (
	"fmt"
	"io"

	"github.com/kr/text"
	"github.com/morikuni/aec"
)

// Format writes a user-facing description of err to w, with the failure body
// indented under a colored heading.
func Format(w io.Writer, err error) {
	heading := "Failed:"
	if IsBadInput(err) {
		heading = "Invalid input:"
	} else if IsInternal(err) {
		heading = "Internal error:"
	}

	fmt.Fprintln(w, aec.RedF.Apply(heading))

	sub := text.NewIndentWriter(w, []byte("  "))
	fmt.Fprintln(sub, err.Error())
}
