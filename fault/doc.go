// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Each error belongs to a class which decides how the caller treats
// it: decoding, verification and conflict errors reject a request,
// remote and ledger errors leave a synchronisation step for the next
// planning cycle.
package fault
