// Package nametable maps NES background pixel coordinates to PPU
// nametable and attribute table addresses.
package nametable

const (
	BaseAddress     = 0x2000 // first byte of nametable 0
	AttributeOffset = 0x3C0  // attribute table offset inside a nametable

	ScreenWidth  = 256 // visible pixel columns
	ScreenHeight = 240 // visible pixel rows

	TileSize = 8                      // tile width and height in pixels
	Columns  = ScreenWidth / TileSize // tiles per nametable row

	// an attribute byte covers a 4x4 tile area
	attributeBlock   = 4 * TileSize
	attributeColumns = ScreenWidth / attributeBlock
)

// Coordinate is a pixel position on the visible background.
type Coordinate struct {
	X int
	Y int
}

// InBounds returns whether the coordinate lies inside the visible screen.
// Only the upper bounds are checked, negative values pass.
func (c Coordinate) InBounds() bool {
	return c.X < ScreenWidth && c.Y < ScreenHeight
}

// Tile returns the tile column and row that contain the pixel.
func (c Coordinate) Tile() (column, row int) {
	return c.X / TileSize, c.Y / TileSize
}

// Address returns the nametable address of the tile that contains the pixel.
// The result wraps around the 16 bit PPU address space for negative
// coordinates.
func (c Coordinate) Address() uint16 {
	column, row := c.Tile()
	return BaseAddress + uint16(row)*Columns + uint16(column)
}

// AttributeAddress returns the address of the attribute table byte that
// selects the palette of the tile containing the pixel.
func (c Coordinate) AttributeAddress() uint16 {
	column := c.X / attributeBlock
	row := c.Y / attributeBlock
	return BaseAddress + AttributeOffset + uint16(row)*attributeColumns + uint16(column)
}
