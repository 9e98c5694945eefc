package photoview

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"
	"testing"
)

func TestTransmitImageFromPNG_SmallImage(t *testing.T) {
	cmd, err := TransmitImageFromPNG(createTestPNG(t, 10, 10), 1)
	if err != nil {
		t.Fatalf("TransmitImageFromPNG() error: %v", err)
	}

	if !strings.HasPrefix(cmd, escStart) || !strings.HasSuffix(cmd, escEnd) {
		t.Error("command should be wrapped in escStart/escEnd")
	}
	for _, param := range []string{"a=t", "f=100", "i=1", "q=2", "m=0"} {
		if !strings.Contains(cmd, param) {
			t.Errorf("command should contain %s", param)
		}
	}
}

func TestTransmitImageFromPNG_Empty(t *testing.T) {
	if _, err := TransmitImageFromPNG(nil, 1); err == nil {
		t.Error("empty data should be an error")
	}
}

func TestTransmitImageFromPNG_LargeData_Chunked(t *testing.T) {
	// 4000 raw bytes become more than 5300 base64 characters
	data := make([]byte, 4000)
	for i := range data {
		data[i] = byte(i % 256)
	}

	cmd, err := TransmitImageFromPNG(data, 42)
	if err != nil {
		t.Fatalf("TransmitImageFromPNG() error: %v", err)
	}

	if n := strings.Count(cmd, escStart); n != 2 {
		t.Errorf("chunks = %d, want 2", n)
	}

	first, rest, _ := strings.Cut(cmd, escEnd)
	if !strings.Contains(first, "i=42") || !strings.Contains(first, "m=1") {
		t.Errorf("first chunk should carry the id and m=1: %.40q", first)
	}
	if strings.Contains(rest, "i=") {
		t.Error("later chunks should not repeat the image id")
	}
	if !strings.HasPrefix(rest, escStart+"m=0;") {
		t.Error("last chunk should have m=0")
	}
}

func TestTransmitImageFromPNG_Base64Encoded(t *testing.T) {
	data := createTestPNG(t, 10, 10)

	cmd, err := TransmitImageFromPNG(data, 1)
	if err != nil {
		t.Fatalf("TransmitImageFromPNG() error: %v", err)
	}

	start := strings.Index(cmd, ";")
	end := strings.Index(cmd, escEnd)
	decoded, err := base64.StdEncoding.DecodeString(cmd[start+1 : end])
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Error("decoded payload doesn't match original PNG data")
	}
}

func TestTransmitImage_FromImage(t *testing.T) {
	cmd, err := TransmitImage(image.NewRGBA(image.Rect(0, 0, 10, 10)), 5)
	if err != nil {
		t.Fatalf("TransmitImage() error: %v", err)
	}
	if !strings.HasPrefix(cmd, escStart) || !strings.Contains(cmd, "i=5") {
		t.Errorf("unexpected command %.40q", cmd)
	}
}

func TestPlaceImage(t *testing.T) {
	cmd := PlaceImage(42, 5, 10, 8, 4)

	for _, want := range []string{
		"\x1b[s", "\x1b[u", "\x1b[5;10H",
		"a=p", "i=42", "p=1", "c=8", "r=4", "C=1",
	} {
		if !strings.Contains(cmd, want) {
			t.Errorf("command should contain %q", want)
		}
	}
}

func TestPlaceImage_DifferentPositions(t *testing.T) {
	for _, pos := range [][2]int{{1, 1}, {10, 20}, {100, 50}} {
		cmd := PlaceImage(1, pos[0], pos[1], 8, 4)
		want := fmt.Sprintf("\x1b[%d;%dH", pos[0], pos[1])
		if !strings.Contains(cmd, want) {
			t.Errorf("PlaceImage(%d, %d) should position cursor at %q", pos[0], pos[1], want)
		}
	}
}

func TestDeleteImage(t *testing.T) {
	cmd := DeleteImage(42)

	if !strings.HasPrefix(cmd, escStart) || !strings.HasSuffix(cmd, escEnd) {
		t.Error("command should be wrapped in escStart/escEnd")
	}
	for _, param := range []string{"a=d", "d=i", "i=42", "q=2"} {
		if !strings.Contains(cmd, param) {
			t.Errorf("command should contain %s", param)
		}
	}
}

func TestBlankPlaceholder(t *testing.T) {
	tests := []struct {
		width, height int
		wantLines     int
	}{
		{8, 4, 4},
		{10, 2, 2},
		{1, 1, 1},
		{0, 4, 0},
		{8, 0, 0},
		{-1, 4, 0},
	}

	for _, tt := range tests {
		got := BlankPlaceholder(tt.width, tt.height)
		if tt.wantLines == 0 {
			if got != "" {
				t.Errorf("BlankPlaceholder(%d, %d) = %q, want empty", tt.width, tt.height, got)
			}
			continue
		}
		lines := strings.Split(got, "\n")
		if len(lines) != tt.wantLines {
			t.Errorf("BlankPlaceholder(%d, %d) got %d lines, want %d",
				tt.width, tt.height, len(lines), tt.wantLines)
		}
		for i, line := range lines {
			if line != strings.Repeat(" ", tt.width) {
				t.Errorf("BlankPlaceholder(%d, %d) line %d = %q", tt.width, tt.height, i, line)
			}
		}
	}
}

func TestKittyProtocol(t *testing.T) {
	var p ImageProtocol = KittyProtocol{}

	if p.Name() != "kitty" {
		t.Errorf("Name() = %q", p.Name())
	}
	if w, h := TargetPixelSize(p, 10, 5); w != 80 || h != 80 {
		t.Errorf("TargetPixelSize(10, 5) = %dx%d, want 80x80", w, h)
	}
	if cmd := p.Delete(3); cmd != DeleteImage(3) {
		t.Errorf("Delete(3) = %q", cmd)
	}
}
