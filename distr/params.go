// Copyright 2026 The go-distpiece Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr

// MaxPoleExponent is the pole-detection threshold used by the beta
// family. The left edge is declared a pole when alpha < 2 and
// |alpha-1| exceeds this value (symmetrically for beta on the right
// edge). The default is negative, so every sub-quadratic edge shape is
// routed through pole-aware integration, including near-singular
// shapes a hard alpha < 1 test would treat as regular.
var MaxPoleExponent = -1e-2
