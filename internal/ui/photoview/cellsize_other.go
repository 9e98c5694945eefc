//go:build !unix

package photoview

func getCellSize() (cellW, cellH int) {
	return defaultCellWidth, defaultCellHeight
}
