package mathfig

import "testing"

func TestGroup_AddSkipsNil(t *testing.T) {
	g := NewGroup()
	g.Add(&Line{Start: V(0, 0, 0), End: V(1, 0, 0)})
	g.Add(nil)
	g.Add(&Dot{Center: V(1, 0, 0)}, nil)
	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}
}

func TestGroup_WalkDepthFirst(t *testing.T) {
	inner := NewGroup(
		&Dot{Center: V(1, 0, 0)},
		&Dot{Center: V(2, 0, 0)},
	)
	outer := NewGroup(
		&Line{Start: V(0, 0, 0), End: V(1, 1, 0)},
		inner,
		&Label{Text: "O", At: V(0, 0, 0)},
	)

	var order []string
	outer.Walk(func(n Node) {
		switch n.(type) {
		case *Line:
			order = append(order, "line")
		case *Dot:
			order = append(order, "dot")
		case *Label:
			order = append(order, "label")
		}
	})

	want := []string{"line", "dot", "dot", "label"}
	if len(order) != len(want) {
		t.Fatalf("visited %d nodes, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestGroup_Translate(t *testing.T) {
	line := &Line{Start: V(0, 0, 0), End: V(1, 0, 0)}
	arc := &Arc{Center: V(2, 3, 0), RX: 1, RY: 0.5}
	g := NewGroup(line, NewGroup(arc))

	g.Translate(V(10, -5, 0))

	if !line.Start.Approx(V(10, -5, 0), 1e-12) || !line.End.Approx(V(11, -5, 0), 1e-12) {
		t.Errorf("line not translated: %+v", line)
	}
	if !arc.Center.Approx(V(12, -2, 0), 1e-12) {
		t.Errorf("nested arc not translated: %+v", arc)
	}
	if arc.RX != 1 || arc.RY != 0.5 {
		t.Errorf("arc radii changed by translation: %+v", arc)
	}
}
