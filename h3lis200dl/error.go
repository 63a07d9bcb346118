// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package h3lis200dl

import "fmt"

// DeviceNotFoundError is returned by NewI2C when the WHO_AM_I register does
// not identify an H3LIS200DL. No control register is written in that case.
type DeviceNotFoundError struct {
	Addr uint16
	ID   byte
}

func (e *DeviceNotFoundError) Error() string {
	return fmt.Sprintf("h3lis200dl: no device at %#02x: identity %#02x, expected %#02x", e.Addr, e.ID, chipID)
}

// InvalidValueError is returned by setters when the supplied value is outside
// the set of codes the hardware defines. The register is left untouched.
type InvalidValueError struct {
	Setting string
	Value   byte
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("h3lis200dl: %#02x is not a valid %s setting", e.Value, e.Setting)
}
