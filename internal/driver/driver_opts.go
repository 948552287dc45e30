package driver

import "time"

type Opt func(*Driver)

func WithTickLength(tickLength time.Duration) Opt {
	return func(d *Driver) {
		d.tickLength = tickLength
	}
}
