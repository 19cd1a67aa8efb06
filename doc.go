// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package hwrand provides uniformly distributed random integers and floating
point values sourced from the x86 RDSEED and RDRAND hardware instructions
when the running processor supports them, and from a freshly seeded software
engine otherwise.

# Quality Tiers

Every request names one of two tiers:

  - Secure uses RDSEED, which returns values conditioned directly from the
    processor entropy source and is suitable for seeding other generators.
  - Fast uses RDRAND, which returns values from an on-chip generator that is
    periodically reseeded from the same entropy source.  It is still of
    cryptographic quality; the difference is throughput, not strength.

Both instructions may transiently fail under contention.  Failed attempts are
retried in a busy loop until they succeed.  A Generator created with a
non-zero Config.MaxRetries instead gives up after that many consecutive
failures and returns an error with the kind ErrRetryExhausted.

When the instruction for the requested tier is unavailable, the request is
served by a ChaCha20 engine freshly seeded from the operating system entropy
source.  The Secure tier never substitutes RDRAND for RDSEED.

Capability detection happens once per process on first use and never fails.
Processors and targets without the instructions simply use the software
engine for every request.

# Widths

32-bit operations exist on every target.  The 64-bit operations (Uint64,
Range64, SecureUint64 and friends) are only defined on 64-bit targets, so
code that must build everywhere should not reference them.  Generator.Raw
reports ErrUnsupportedWidth when asked for Bits64 on 32-bit targets.

# Ranges

Bounded integer requests return values in the closed interval [min, max]
without modulo bias.  Each request keys a call-local engine with 256 bits
drawn through the requested tier, so Secure range requests are backed by
RDSEED when it is available.  When min equals max, min is returned without
consuming any entropy.  When min exceeds max, an error with the kind
ErrInvalidRange is returned.

Floating point requests return values in [min, max] as well.  Both bounds
must be finite.

IMPORTANT: the floating point functions without explicit bounds, such as
SecureFloat64, draw from [0, math.MaxFloat64] (or [0, math.MaxFloat32]).
That is practically unbounded in magnitude and almost every result is
astronomically large.  Callers that want a unit interval must request it with
SecureFloat64Range(0, 1).

# Concurrency

The package-level functions and Generator methods are safe for concurrent
use.  No state is shared between calls after capability detection; every call
constructs its own engine.
*/
package hwrand
