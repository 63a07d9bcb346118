// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package h3lis200dl

import (
	"fmt"
	"log"
	"time"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// ExampleNewI2C reads the acceleration at ±200g every 100ms for one second.
// Use i2c-tools to find the bus and confirm the device answers at 0x19:
//
//	sudo i2cdetect -y 1
func ExampleNewI2C() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use i2creg to find the first available I²C bus. Generally I2C1 on a
	// Raspberry Pi.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	d, err := NewI2C(b, &DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Halt()

	if err := d.SetRange(Range200G); err != nil {
		log.Fatal(err)
	}

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for i := 0; i < 10; i++ {
		<-ticker.C
		acc, err := d.Acceleration()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(acc)
	}
}
