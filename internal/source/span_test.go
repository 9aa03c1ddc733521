package source

import "testing"

func TestFileLineCol(t *testing.T) {
	r := NewRegistry()
	f, err := r.AddVirtual("t.qak", []byte("var x = 1\nvar y = 2\n"))
	if err != nil {
		t.Fatalf("AddVirtual: %v", err)
	}

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{4, 1, 5},
		{10, 2, 1},
		{19, 2, 10},
	}
	for _, c := range cases {
		got := f.LineCol(c.off)
		if got.Line != c.line || got.Col != c.col {
			t.Errorf("LineCol(%d) = %+v, want {%d %d}", c.off, got, c.line, c.col)
		}
	}
}

func TestSpanCover(t *testing.T) {
	r := NewRegistry()
	f, _ := r.AddVirtual("t.qak", []byte("abcdef"))
	a := f.MakeSpan(1, 3)
	b := f.MakeSpan(2, 5)
	cov := a.Cover(b)
	if cov.Start != 1 || cov.End != 5 {
		t.Fatalf("Cover = %+v, want Start=1 End=5", cov)
	}
	if !cov.Contains(a) || !cov.Contains(b) {
		t.Fatalf("Cover does not contain its inputs")
	}
}

func TestSpanEmpty(t *testing.T) {
	r := NewRegistry()
	f, _ := r.AddVirtual("t.qak", []byte("x"))
	s := f.MakeSpan(0, 0)
	if !s.Empty() {
		t.Fatalf("expected empty span")
	}
	if s.Len() != 0 {
		t.Fatalf("expected zero length")
	}
}

func TestTextIsSubsliceOfContent(t *testing.T) {
	r := NewRegistry()
	data := []byte("hello world")
	f, _ := r.AddVirtual("t.qak", data)
	sp := f.MakeSpan(6, 11)
	if string(f.Text(sp)) != "world" {
		t.Fatalf("Text = %q, want %q", f.Text(sp), "world")
	}
}
