package imageframe

import "fmt"

// ImageFormat identifies how pixels are laid out in a frame.
//
// The numeric values match the MediaPipe ImageFormat enum so that formats can
// be passed across a processing-pipeline boundary as plain integers.
type ImageFormat uint8

const (
	// FormatUnknown is the zero value. It has no channel metadata.
	FormatUnknown ImageFormat = 0

	// FormatSrgb is 8-bit RGB (3 channels, 1 byte each).
	FormatSrgb ImageFormat = 1

	// FormatSrgba is 8-bit RGBA with straight alpha (4 channels, 1 byte each).
	FormatSrgba ImageFormat = 2

	// FormatGray8 is 8-bit grayscale.
	FormatGray8 ImageFormat = 3

	// FormatGray16 is 16-bit grayscale in host byte order.
	FormatGray16 ImageFormat = 4

	// FormatSrgb48 is 16-bit-per-channel RGB.
	FormatSrgb48 ImageFormat = 7

	// FormatSrgba64 is 16-bit-per-channel RGBA.
	FormatSrgba64 ImageFormat = 8

	// FormatVec32f1 is a single 32-bit float channel.
	FormatVec32f1 ImageFormat = 9

	// FormatLab8 is 8-bit CIE L*a*b*.
	FormatLab8 ImageFormat = 10

	// FormatSbgra is 8-bit BGRA (4 channels, 1 byte each).
	FormatSbgra ImageFormat = 11

	// FormatVec32f2 is two 32-bit float channels.
	FormatVec32f2 ImageFormat = 12

	// formatCount bounds the lookup table.
	formatCount = 13
)

// FormatInfo contains the layout metadata of a pixel format.
type FormatInfo struct {
	// Channels is the number of channels per pixel.
	Channels int

	// ByteDepth is the number of bytes per channel value.
	ByteDepth int

	// ChannelSize is the size in bytes of the element type of one channel.
	ChannelSize int
}

// formatInfoTable holds metadata for each known format. Gaps in the enum
// keep a zero entry and are treated as unknown.
var formatInfoTable = [formatCount]FormatInfo{
	FormatSrgb:    {Channels: 3, ByteDepth: 1, ChannelSize: 1},
	FormatSrgba:   {Channels: 4, ByteDepth: 1, ChannelSize: 1},
	FormatGray8:   {Channels: 1, ByteDepth: 1, ChannelSize: 1},
	FormatGray16:  {Channels: 1, ByteDepth: 2, ChannelSize: 2},
	FormatSrgb48:  {Channels: 3, ByteDepth: 2, ChannelSize: 2},
	FormatSrgba64: {Channels: 4, ByteDepth: 2, ChannelSize: 2},
	FormatVec32f1: {Channels: 1, ByteDepth: 4, ChannelSize: 4},
	FormatLab8:    {Channels: 3, ByteDepth: 1, ChannelSize: 1},
	FormatSbgra:   {Channels: 4, ByteDepth: 1, ChannelSize: 1},
	FormatVec32f2: {Channels: 2, ByteDepth: 4, ChannelSize: 4},
}

// Info returns the layout metadata for this format.
// Returns ErrFormat for FormatUnknown and for values outside the table.
func (f ImageFormat) Info() (FormatInfo, error) {
	if !f.IsValid() {
		return FormatInfo{}, fmt.Errorf("%w: %v", ErrFormat, f)
	}
	return formatInfoTable[f], nil
}

// IsValid returns true if the format has layout metadata.
func (f ImageFormat) IsValid() bool {
	return f < formatCount && formatInfoTable[f].Channels > 0
}

// Channels returns the number of channels per pixel.
func (f ImageFormat) Channels() (int, error) {
	info, err := f.Info()
	return info.Channels, err
}

// ByteDepth returns the number of bytes per channel value.
func (f ImageFormat) ByteDepth() (int, error) {
	info, err := f.Info()
	return info.ByteDepth, err
}

// ChannelSize returns the element size of one channel in bytes.
func (f ImageFormat) ChannelSize() (int, error) {
	info, err := f.Info()
	return info.ChannelSize, err
}

// RowBytes returns the number of pixel bytes in a row of the given width,
// without padding.
func (i FormatInfo) RowBytes(width int) int {
	return width * i.Channels * i.ByteDepth
}

// String returns a string representation of the format.
func (f ImageFormat) String() string {
	switch f {
	case FormatSrgb:
		return "Srgb"
	case FormatSrgba:
		return "Srgba"
	case FormatGray8:
		return "Gray8"
	case FormatGray16:
		return "Gray16"
	case FormatSrgb48:
		return "Srgb48"
	case FormatSrgba64:
		return "Srgba64"
	case FormatVec32f1:
		return "Vec32f1"
	case FormatLab8:
		return "Lab8"
	case FormatSbgra:
		return "Sbgra"
	case FormatVec32f2:
		return "Vec32f2"
	default:
		return "Unknown"
	}
}
