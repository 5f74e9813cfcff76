// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package colors

import "github.com/morikuni/aec"

func Faded(str string) string {
	return aec.LightBlackF.Apply(str)
}

func Bold(str string) string {
	return aec.Bold.Apply(str)
}

func Green(str string) string {
	return aec.GreenF.Apply(str)
}

func Red(str string) string {
	return aec.RedF.Apply(str)
}
