package formats

import (
	"errors"
	"testing"
)

// buildTestTMap creates a small map with a height ramp and one blocked cell.
func buildTestTMap(size int) *TMap {
	m := NewTMap(size)
	for z := 0; z <= size; z++ {
		for x := 0; x <= size; x++ {
			m.SetCorner(x, z, float32(x), float32(x))
		}
	}
	m.SetFlags(1, 1, TerrainBlocked)
	return m
}

func TestTMapRoundTrip(t *testing.T) {
	m := buildTestTMap(4)

	parsed, err := ParseTMap(m.Bytes())
	if err != nil {
		t.Fatalf("ParseTMap failed: %v", err)
	}

	if parsed.Size() != 4 {
		t.Errorf("expected size 4, got %d", parsed.Size())
	}
	if parsed.Version.Major != 1 || parsed.Version.Minor != 0 {
		t.Errorf("expected version 1.0, got %s", parsed.Version)
	}
	if got := parsed.TerrainHeight(3, 2); got != 3 {
		t.Errorf("expected terrain height 3 at (3,2), got %v", got)
	}
	if !parsed.TerrainBlocking(1, 1) {
		t.Error("expected cell (1,1) to block")
	}
	if parsed.TerrainBlocking(2, 2) {
		t.Error("expected cell (2,2) to be clear")
	}
}

func TestTMapBlockingOutOfBounds(t *testing.T) {
	m := buildTestTMap(4)

	// Cells run 1..size; anything outside blocks.
	cases := [][2]int{{0, 1}, {1, 0}, {-1, 2}, {5, 1}, {1, 5}}
	for _, c := range cases {
		if !m.TerrainBlocking(c[0], c[1]) {
			t.Errorf("expected out-of-bounds cell (%d,%d) to block", c[0], c[1])
		}
	}
	// The far corner cell is in range.
	if m.TerrainBlocking(4, 4) {
		t.Error("expected corner cell (4,4) to be clear")
	}
}

func TestParseTMap_InvalidMagic(t *testing.T) {
	data := buildTestTMap(4).Bytes()
	copy(data[0:4], "XXXX")

	if _, err := ParseTMap(data); !errors.Is(err, ErrInvalidTMapMagic) {
		t.Errorf("expected ErrInvalidTMapMagic, got %v", err)
	}
}

func TestParseTMap_UnsupportedVersion(t *testing.T) {
	data := buildTestTMap(4).Bytes()
	data[5] = 9 // major

	if _, err := ParseTMap(data); !errors.Is(err, ErrUnsupportedTMapVersion) {
		t.Errorf("expected ErrUnsupportedTMapVersion, got %v", err)
	}
}

func TestParseTMap_Truncated(t *testing.T) {
	data := buildTestTMap(4).Bytes()

	if _, err := ParseTMap(data[:len(data)/2]); !errors.Is(err, ErrTruncatedTMapData) {
		t.Errorf("expected ErrTruncatedTMapData, got %v", err)
	}
	if _, err := ParseTMap(data[:4]); !errors.Is(err, ErrTruncatedTMapData) {
		t.Errorf("expected ErrTruncatedTMapData for header-only data, got %v", err)
	}
}

func TestTMapHeightRange(t *testing.T) {
	m := buildTestTMap(4)

	min, max := m.HeightRange()
	if min != 0 || max != 4 {
		t.Errorf("expected height range [0,4], got [%v,%v]", min, max)
	}
}

func TestTMapCountBlocked(t *testing.T) {
	m := buildTestTMap(4)
	if got := m.CountBlocked(); got != 1 {
		t.Errorf("expected 1 blocked cell, got %d", got)
	}
}
