package cpu

import "time"

// https://www.nesdev.org/wiki/CPU#Frequencies
// https://www.nesdev.org/wiki/Cycle_reference_chart#Clock_rates

// Tick is the wall-clock duration of one NTSC 6502 clock cycle
// (1.789773 MHz), used only by RunRealTime. Step itself is not
// cycle-counted: like the emulators this core is descended from, all the
// work of an instruction happens at once and cycle timing is applied
// afterwards as a uniform delay.
var (
	tick = 1e9 / 1789773 // cannot be inlined into time.Duration, even with cast
	Tick = time.Nanosecond * time.Duration(tick)
)

// RunRealTime steps the CPU in a loop, sleeping one Tick between each
// instruction so a host watching memory or peripheral state can observe
// the program running at approximately original hardware speed. It
// returns when Step reports a decode error.
func (c *CPU) RunRealTime() error {
	for {
		if err := c.Step(); err != nil {
			return err
		}
		time.Sleep(Tick)
	}
}
