package codec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dla-ca/internal/core"
)

func testGrid(t *testing.T) *core.Grid {
	t.Helper()
	g := core.Build(core.SeedAllEdges, 7, 5, core.NewRNG(1))
	g.SetFilled(g.Index(3, 2), true)
	g.SetID(g.Index(3, 2), 23)
	g.SetFilled(g.Index(2, 2), true)
	g.SetID(g.Index(2, 2), 24)
	return g
}

func gridsEqual(t *testing.T, want, got *core.Grid) {
	t.Helper()
	if got.W != want.W || got.H != want.H {
		t.Fatalf("loaded grid is %dx%d, want %dx%d", got.W, got.H, want.W, want.H)
	}
	wc, gc := want.Cells(), got.Cells()
	for i := range wc {
		if wc[i] != gc[i] {
			t.Fatalf("cell %d is %+v, want %+v", i, gc[i], wc[i])
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	want := testGrid(t)
	got, err := Unmarshal(Marshal(want))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	gridsEqual(t, want, got)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	want := testGrid(t)
	path := filepath.Join(t.TempDir(), "grid")

	if err := Save(want, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path + Suffix); err != nil {
		t.Fatalf("compressed file missing: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("intermediate file left behind: %v", err)
	}

	got, err := Load(path + Suffix)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	gridsEqual(t, want, got)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("load left its intermediate file behind: %v", err)
	}
}

func TestSaveRefusesOverwrite(t *testing.T) {
	g := testGrid(t)
	path := filepath.Join(t.TempDir(), "grid")
	if err := Save(g, path); err != nil {
		t.Fatalf("first save: %v", err)
	}
	err := Save(g, path)
	if err == nil || !strings.Contains(err.Error(), "refusing to overwrite") {
		t.Fatalf("second save: %v, want overwrite refusal", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.gz")); err == nil {
		t.Fatal("load of a missing file succeeded")
	}
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	cases := map[string][]byte{
		"empty":      nil,
		"short":      {1, 2, 3},
		"huge count": append([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, make([]byte, 32)...),
		"wrong count": func() []byte {
			b := Marshal(core.NewGrid(2, 2))
			b[0] = 3 // count no longer matches width*height
			return b[:8+3*cellWidth+16]
		}(),
		"bad filled byte": func() []byte {
			b := Marshal(core.NewGrid(2, 2))
			b[8] = 7
			return b
		}(),
	}
	for name, data := range cases {
		if _, err := Unmarshal(data); err == nil {
			t.Errorf("%s: unmarshal succeeded", name)
		}
	}
}
