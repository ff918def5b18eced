package tetris

import "testing"

func TestClearNameTable(t *testing.T) {
	cases := []struct {
		n        int
		immobile bool
		want     ClearName
		wantOK   bool
	}{
		{1, false, ClearSingle, true},
		{2, false, ClearDouble, true},
		{3, false, ClearTriple, true},
		{4, false, ClearQuad, true},
		{4, true, ClearQuad, true}, // Quad wins regardless of immobility
		{1, true, ClearAllSpinSingle, true},
		{2, true, ClearAllSpinDouble, true},
		{3, true, ClearAllSpinTriple, true},
		{0, false, "", false},
	}
	for _, c := range cases {
		name, ok := clearName(c.n, c.immobile)
		if ok != c.wantOK || name != c.want {
			t.Errorf("clearName(%d, %v) = (%q, %v), want (%q, %v)", c.n, c.immobile, name, ok, c.want, c.wantOK)
		}
	}
}

func TestCalculateScoreNoClear(t *testing.T) {
	res := calculateScore(DefaultOptions(), false, 0, false, true, 3)
	if res.HasClear {
		t.Error("n=0 should not have a clear")
	}
	if res.ComboOut != 0 {
		t.Errorf("combo after no-clear = %d, want 0", res.ComboOut)
	}
	if !res.B2BOut {
		t.Error("B2B should be preserved (unchanged) across a no-clear placement")
	}
}

func TestCalculateScoreComboSequence(t *testing.T) {
	// S6: five consecutive Singles from combo 0, expect combo 1..5 and
	// attacks single(0) + comboTable[0..4] = 0,0,1,1,1.
	opts := DefaultOptions()
	combo := 0
	wantCombo := []int{1, 2, 3, 4, 5}
	wantAttack := []int{0, 0, 1, 1, 1}
	for i := 0; i < 5; i++ {
		res := calculateScore(opts, false, 1, false, false, combo)
		if res.ComboOut != wantCombo[i] {
			t.Errorf("iteration %d: combo = %d, want %d", i, res.ComboOut, wantCombo[i])
		}
		if res.Attack != wantAttack[i] {
			t.Errorf("iteration %d: attack = %d, want %d", i, res.Attack, wantAttack[i])
		}
		combo = res.ComboOut
	}
}

func TestCalculateScorePerfectClearOverridesAttack(t *testing.T) {
	opts := DefaultOptions()
	res := calculateScore(opts, true, 4, false, false, 0)
	if res.Name != ClearPerfect {
		t.Errorf("name = %q, want Perfect Clear", res.Name)
	}
	if res.Attack != opts.AttackTable.PC {
		t.Errorf("attack = %d, want %d (PC override, not additive)", res.Attack, opts.AttackTable.PC)
	}
}

func TestCalculateScoreB2BBonus(t *testing.T) {
	opts := DefaultOptions()
	withB2B := calculateScore(opts, false, 4, false, true, 0)
	withoutB2B := calculateScore(opts, false, 4, false, false, 0)
	if withB2B.Attack-withoutB2B.Attack != opts.AttackTable.B2BBonus {
		t.Errorf("B2B bonus delta = %d, want %d", withB2B.Attack-withoutB2B.Attack, opts.AttackTable.B2BBonus)
	}
	if !withB2B.B2BOut {
		t.Error("a Quad clear should set the outgoing B2B flag")
	}
}

func TestCancelGarbage(t *testing.T) {
	queue := []GarbageLine{{Delay: 0, Index: 1}, {Delay: 0, Index: 2}, {Delay: 0, Index: 3}, {Delay: 0, Index: 4}}
	remaining, residual, cancelled := cancelGarbage(queue, 4)
	if cancelled != 4 || residual != 0 || len(remaining) != 0 {
		t.Errorf("cancelGarbage(4 lines, attack 4) = (%d remaining, %d residual, %d cancelled)", len(remaining), residual, cancelled)
	}
}

func TestTickGarbageMaterializesZeroDelay(t *testing.T) {
	queue := []GarbageLine{{Delay: 0, Index: 2}, {Delay: 1, Index: 5}}
	remaining, materialized := tickGarbage(queue)
	if len(materialized) != 1 || materialized[0].Index != 2 {
		t.Fatalf("materialized = %+v, want one line at index 2", materialized)
	}
	if len(remaining) != 1 || remaining[0].Delay != 0 {
		t.Fatalf("remaining = %+v, want one line with delay decremented to 0", remaining)
	}
}

func TestInsertGarbageStacksFirstDequeuedHighest(t *testing.T) {
	b := NewBoard(5)
	// index 2 is first dequeued, index 3 is last dequeued: the first
	// dequeued line ends up adjacent to the pre-existing stack (the
	// higher of the two new rows), the last dequeued ends up at the
	// floor (Rows[0]).
	insertGarbage(b, []GarbageLine{{Delay: 0, Index: 2}, {Delay: 0, Index: 3}})
	if len(b.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(b.Rows))
	}
	if b.Rows[1][2] != CellEmpty {
		t.Error("the first-dequeued line's hole should end up in the higher row")
	}
	if b.Rows[0][3] != CellEmpty {
		t.Error("the last-dequeued line's hole should end up at the floor")
	}
}
