package sensors

import (
	"fmt"

	dht "github.com/MichaelS11/go-dht"
)

// DHTTrigger adapts the DHT11 driver to the env.Trigger contract. The
// driver keeps its own re-trigger guard and reports "called too soon" the
// same way as a checksum failure, as an error.
type DHTTrigger struct {
	dev *dht.DHT
}

// NewDHTTrigger binds the DHT11 on the given GPIO pin.
func NewDHTTrigger(pin string) (*DHTTrigger, error) {
	if err := dht.HostInit(); err != nil {
		return nil, fmt.Errorf("dht host init: %w", err)
	}

	dev, err := dht.NewDHT(pin, dht.Celsius, "dht11")
	if err != nil {
		return nil, fmt.Errorf("dht init on %s: %w", pin, err)
	}
	return &DHTTrigger{dev: dev}, nil
}

// Trigger requests one measurement and returns Celsius temperature and
// relative humidity.
func (t *DHTTrigger) Trigger() (float64, float64, error) {
	humidity, temperature, err := t.dev.Read()
	if err != nil {
		return 0, 0, fmt.Errorf("dht read: %w", err)
	}
	return temperature, humidity, nil
}
