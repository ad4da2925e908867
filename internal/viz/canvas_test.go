package viz

import "testing"

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 4)

	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1 set, got %#x", c.Grid[0][0])
	}

	c.Set(1, 3)
	if c.Grid[0][0] != 0x2801|0x80 {
		t.Errorf("expected dot 8 added, got %#x", c.Grid[0][0])
	}
}

func TestCanvasUnset(t *testing.T) {
	c := NewCanvas(4, 4)

	c.Set(0, 0)
	c.Set(1, 3)
	c.Unset(0, 0)
	if c.Grid[0][0] != 0x2880 {
		t.Errorf("expected only dot 8 left, got %#x", c.Grid[0][0])
	}

	c.Unset(100, 0) // out of range, no-op
}

func TestCanvasSetOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)

	c.Set(-1, 0)
	c.Set(0, -5)
	c.Set(100, 0)
	c.Set(0, 100)

	for row := range c.Grid {
		for col := range c.Grid[row] {
			if c.Grid[row][col] != 0x2800 {
				t.Fatalf("cell (%d,%d) modified by out-of-bounds set", row, col)
			}
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(0, 0)
	c.Set(3, 7)

	c.Clear()
	for row := range c.Grid {
		for col := range c.Grid[row] {
			if c.Grid[row][col] != 0x2800 {
				t.Fatalf("cell (%d,%d) not cleared", row, col)
			}
		}
	}
}

func TestCanvasDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 19, 39)

	if c.Grid[0][0] == 0x2800 {
		t.Error("start of line not set")
	}
	if c.Grid[9][9] == 0x2800 {
		t.Error("end of line not set")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	s := c.String()

	lines := 0
	for _, r := range s {
		if r == '\n' {
			lines++
		}
	}
	if lines != 2 {
		t.Errorf("expected 2 lines, got %d", lines)
	}
}
