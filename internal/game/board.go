package game

// Random is the float source the board generator and crate drops draw from.
type Random interface {
	Next() float64
}

// Board is a Width x Height grid of tiles, indexed [y][x].
type Board struct {
	Width  int
	Height int
	tiles  [][]TileType
}

// NewEmptyBoard returns a board with every cell Empty.
func NewEmptyBoard(width, height int) *Board {
	tiles := make([][]TileType, height)
	for y := range tiles {
		tiles[y] = make([]TileType, width)
	}
	return &Board{Width: width, Height: height, tiles: tiles}
}

// GenerateBoard builds the classic Bomberman layout.
//
// Layout rules:
//   - Border is all Wall
//   - Wall at every position where both X and Y are even
//   - Cells within Manhattan distance 1 of a spawn corner stay clear
//   - Every other cell becomes a Crate with probability crateDensity
//
// Only the crate roll consumes a value from r, in row-major order.
func GenerateBoard(width, height int, r Random, crateDensity float64) *Board {
	b := NewEmptyBoard(width, height)
	spawns := SpawnPositions(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			switch {
			case x == 0 || y == 0 || x == width-1 || y == height-1:
				b.tiles[y][x] = Wall
			case x%2 == 0 && y%2 == 0:
				b.tiles[y][x] = Wall
			case nearSpawn(Position{X: x, Y: y}, spawns):
				b.tiles[y][x] = Empty
			case r.Next() < crateDensity:
				b.tiles[y][x] = Crate
			default:
				b.tiles[y][x] = Empty
			}
		}
	}
	return b
}

func nearSpawn(pos Position, spawns []Position) bool {
	for _, sp := range spawns {
		if pos.Manhattan(sp) <= 1 {
			return true
		}
	}
	return false
}

// InBounds reports whether (x, y) addresses a cell of the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// At returns the tile at (x, y). Out-of-bounds cells read as Wall.
func (b *Board) At(x, y int) TileType {
	if !b.InBounds(x, y) {
		return Wall
	}
	return b.tiles[y][x]
}

// Set changes the tile at (x, y). Out-of-bounds writes are ignored.
func (b *Board) Set(x, y int, t TileType) {
	if b.InBounds(x, y) {
		b.tiles[y][x] = t
	}
}

// CountCrates returns the number of Crate tiles left on the board.
func (b *Board) CountCrates() int {
	n := 0
	for _, row := range b.tiles {
		for _, t := range row {
			if t == Crate {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := NewEmptyBoard(b.Width, b.Height)
	for y := range b.tiles {
		copy(c.tiles[y], b.tiles[y])
	}
	return c
}
