// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.
//
// h3lis200dl provides a driver for the ST H3LIS200DL high-g 3-axis
// accelerometer connected over I²C.
//
// Range: ±100g or ±200g full scale
//
// Resolution: 7 significant bits per axis, left justified
//
// Output: acceleration in g per axis
//
// The device powers up in power-down mode with all three axes enabled; the
// driver switches it to normal mode on creation. Readings are scaled using
// the full-scale range configured through the driver, without re-reading the
// range register on every sample.
//
// For detailed information, refer to the [datasheet].
//
// [datasheet]: https://www.st.com/resource/en/datasheet/h3lis200dl.pdf
package h3lis200dl
