// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen builds small randomized word-level netlists and AIGs for
// this toolkit's property-based tests. Every generator here takes an
// explicit *rand.Rand rather than reaching for a package-level one, so a
// failing property-based test reports the seed that reproduces it and a
// caller decides for itself whether repeated runs share a source or get
// independent ones.
package gen
