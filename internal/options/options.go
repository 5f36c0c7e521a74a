// Package options contains the program options.
package options

// Program options of the coordinate converter.
type Program struct {
	X int // pixel column
	Y int // pixel row

	Attribute bool // also output the attribute table address
	Decimal   bool // output addresses in decimal instead of hex
	Debug     bool // enable debug logging
	Version   bool
}
