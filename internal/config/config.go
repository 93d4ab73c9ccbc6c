package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration values.
type Config struct {
	// I2C bus shared by the display and the ADC. Empty selects the first
	// available bus.
	I2CBus string

	// ADC / LDR channels
	ADCI2CAddr  uint16
	LDR1Channel int
	LDR2Channel int

	// Combined temperature/humidity sensor
	DHTPin           string
	EnvMinIntervalMS int // minimum ms between DHT triggers

	// Reading indicator LED
	IndicatorPin      string
	IndicatorOntimeMS int

	// Pipeline
	CycleIntervalMS int     // ms between refresh cycles
	MaxDeltaPct     float64 // LDR agreement tolerance, percent

	// Verbose enables the per-cycle reading log line.
	Verbose bool
}

// Default returns the compiled-in configuration matching the reference
// wiring diagram.
func Default() *Config {
	return &Config{
		I2CBus:            "",
		ADCI2CAddr:        0x48,
		LDR1Channel:       0,
		LDR2Channel:       1,
		DHTPin:            "GPIO12",
		EnvMinIntervalMS:  2000,
		IndicatorPin:      "GPIO25",
		IndicatorOntimeMS: 125,
		CycleIntervalMS:   15000,
		MaxDeltaPct:       25.0,
		Verbose:           false,
	}
}

// Load reads the configuration file and returns a Config struct. A missing
// file is not an error: the defaults stand on their own so the monitor can
// run straight from power-up without any provisioning.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	file, err := os.Open(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, cfg.validate()
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=VALUE
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config line %d: %q", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if err := cfg.setValue(key, value); err != nil {
			return nil, fmt.Errorf("config line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setValue sets a config value based on the key.
func (c *Config) setValue(key, value string) error {
	switch key {
	case "I2C_BUS":
		c.I2CBus = value

	case "ADC_I2C_ADDR":
		addr, err := strconv.ParseUint(value, 0, 16)
		if err != nil {
			return fmt.Errorf("invalid ADC_I2C_ADDR %q: %w", value, err)
		}
		c.ADCI2CAddr = uint16(addr)
	case "LDR1_CHANNEL":
		ch, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid LDR1_CHANNEL %q: %w", value, err)
		}
		c.LDR1Channel = ch
	case "LDR2_CHANNEL":
		ch, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid LDR2_CHANNEL %q: %w", value, err)
		}
		c.LDR2Channel = ch

	case "DHT_PIN":
		c.DHTPin = value
	case "ENV_MIN_INTERVAL_MS":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid ENV_MIN_INTERVAL_MS %q: %w", value, err)
		}
		c.EnvMinIntervalMS = interval

	case "INDICATOR_PIN":
		c.IndicatorPin = value
	case "INDICATOR_ONTIME_MS":
		ontime, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid INDICATOR_ONTIME_MS %q: %w", value, err)
		}
		c.IndicatorOntimeMS = ontime

	case "CYCLE_INTERVAL_MS":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid CYCLE_INTERVAL_MS %q: %w", value, err)
		}
		c.CycleIntervalMS = interval
	case "MAX_DELTA_PCT":
		pct, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid MAX_DELTA_PCT %q: %w", value, err)
		}
		c.MaxDeltaPct = pct

	case "VERBOSE":
		verbose, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid VERBOSE %q: %w", value, err)
		}
		c.Verbose = verbose

	default:
		return fmt.Errorf("unknown config key: %q", key)
	}

	return nil
}

// validate checks that all fields hold usable values.
func (c *Config) validate() error {
	if c.LDR1Channel < 0 || c.LDR1Channel > 3 {
		return fmt.Errorf("LDR1_CHANNEL must be 0-3, got %d", c.LDR1Channel)
	}
	if c.LDR2Channel < 0 || c.LDR2Channel > 3 {
		return fmt.Errorf("LDR2_CHANNEL must be 0-3, got %d", c.LDR2Channel)
	}
	if c.LDR1Channel == c.LDR2Channel {
		return fmt.Errorf("LDR1_CHANNEL and LDR2_CHANNEL must differ, both are %d", c.LDR1Channel)
	}
	if c.DHTPin == "" {
		return fmt.Errorf("DHT_PIN is required")
	}
	// The DHT11 driver enforces its own 2s re-trigger guard. Keeping the
	// application-level interval at or above it means the driver guard is
	// never the one that fires.
	if c.EnvMinIntervalMS < 2000 {
		return fmt.Errorf("ENV_MIN_INTERVAL_MS must be at least 2000, got %d", c.EnvMinIntervalMS)
	}
	if c.IndicatorOntimeMS <= 0 {
		return fmt.Errorf("INDICATOR_ONTIME_MS must be positive, got %d", c.IndicatorOntimeMS)
	}
	if c.CycleIntervalMS < 1000 {
		return fmt.Errorf("CYCLE_INTERVAL_MS must be at least 1000, got %d", c.CycleIntervalMS)
	}
	if c.MaxDeltaPct <= 0 {
		return fmt.Errorf("MAX_DELTA_PCT must be positive, got %v", c.MaxDeltaPct)
	}
	return nil
}
