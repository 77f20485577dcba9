// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package grid provides a 2-dimensional bitmap and the neighbour-counting
// operations used to decide which paper rolls a forklift can reach.
package grid
