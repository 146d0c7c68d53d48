package main

const (
	DefaultFilename  = "main/Kconfig.sensor_pins"
	DefaultGenerator = "kconfig-sensor-pins"
)

const configFile = `
# NOTE: Pins are in reference to ESP32 GPIO numbers

# Kconfig fragment to write, relative to the working directory
Filename = "main/Kconfig.sensor_pins"

[[Descriptor]]
	Name = "SPV_SENSOR_MICROPHONE_CS"
	Prompt = "Microphone Chip Select"
	Help = "Pin to use as the Pmod MIC3 microphone's chip select."
	Default = 13
[[Descriptor]]
	Name = "SPV_SENSOR_LUMINOSITY_CS"
	Prompt = "Luminosity sensor Chip Select"
	Help = "Pin to use as the Pmod ALS luminosity sensor's chip select."
	Default = 14
[[Descriptor]]
	Name = "SPV_SENSOR_SPI_SCK"
	Prompt = "SPI SCK pin"
	Help = "Pin to use as SCK."
	Default = 25
[[Descriptor]]
	Name = "SPV_SENSOR_SPI_MISO"
	Prompt = "SPI MISO pin"
	Help = "Pin to use as MISO."
	Default = 26
[[Descriptor]]
	Name = "SPV_SENSOR_I2C_SDA"
	Prompt = "I²C SDA pin"
	Help = "Pin to use as SDA."
	Default = 33
[[Descriptor]]
	Name = "SPV_SENSOR_I2C_SCL"
	Prompt = "I²C SCL pin"
	Help = "Pin to use as SCL."
	Default = 32

# Only pins with a GPIO <-> RTC mapping are listed.
# Strapping pins are commented out:
#   GPIO 0 / RTC 11, GPIO 2 / RTC 12, GPIO 12 / RTC 15, GPIO 15 / RTC 13
# Input only pins are commented out:
#   GPIO 34 / RTC 4, GPIO 35 / RTC 5, GPIO 36 / RTC 0,
#   GPIO 37 / RTC 1, GPIO 38 / RTC 2, GPIO 39 / RTC 3
[[Pin]]
	GPIO = 4
	RTC = 10
[[Pin]]
	GPIO = 13
	RTC = 14
[[Pin]]
	GPIO = 14
	RTC = 16
[[Pin]]
	GPIO = 25
	RTC = 6
[[Pin]]
	GPIO = 26
	RTC = 7
[[Pin]]
	GPIO = 27
	RTC = 17
[[Pin]]
	GPIO = 32
	RTC = 9
[[Pin]]
	GPIO = 33
	RTC = 8
`
