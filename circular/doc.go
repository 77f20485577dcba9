// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package circular simulates a safe dial: positions 0..Size-1 arranged in a
// circle, turned left (toward lower numbers) or right by a number of clicks.
// It counts how often the dial points at 0, either at the end of each
// rotation or on any click.
package circular
