package escape

import "testing"

const (
	runeESC = 0x1B
)

func TestRecognizeSGR(t *testing.T) {
	buf := []rune{runeESC, '[', '3', '1', 'm', 'x'}
	n, fam, needMore := Recognize(buf, false)
	if needMore {
		t.Fatalf("Recognize needed more input")
	}
	if fam != FamilySGR {
		t.Errorf("family = %v, want SGR", fam)
	}
	if n != 5 {
		t.Errorf("n = %d, want 5", n)
	}
}

func TestRecognizeCSI(t *testing.T) {
	buf := []rune{runeESC, '[', '2', 'J', 'x'}
	n, fam, needMore := Recognize(buf, false)
	if needMore {
		t.Fatalf("Recognize needed more input")
	}
	if fam != FamilyCSI {
		t.Errorf("family = %v, want CSI", fam)
	}
	if n != 4 {
		t.Errorf("n = %d, want 4", n)
	}
}

func TestRecognizeOSC(t *testing.T) {
	buf := []rune{runeESC, ']', '0', ';', 't', 'i', 't', 'l', 'e', 0x07, 'x'}
	n, fam, needMore := Recognize(buf, false)
	if needMore {
		t.Fatalf("Recognize needed more input")
	}
	if fam != FamilyOSC {
		t.Errorf("family = %v, want OSC", fam)
	}
	if n != 10 {
		t.Errorf("n = %d, want 10", n)
	}
}

func TestRecognizeLEC(t *testing.T) {
	buf := []rune{runeESC, '[', '[', 'A', 'x'}
	n, fam, needMore := Recognize(buf, false)
	if needMore {
		t.Fatalf("Recognize needed more input")
	}
	if fam != FamilyLEC {
		t.Errorf("family = %v, want LEC", fam)
	}
	if n != 4 {
		t.Errorf("n = %d, want 4", n)
	}
}

func TestRecognizeBareESC(t *testing.T) {
	buf := []rune{runeESC, 'c', 'x'}
	n, fam, needMore := Recognize(buf, false)
	if needMore {
		t.Fatalf("Recognize needed more input")
	}
	if fam != FamilyESC {
		t.Errorf("family = %v, want ESC", fam)
	}
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}
}

func TestRecognizeNeedsMoreAtEOF(t *testing.T) {
	buf := []rune{runeESC, '['}
	_, _, needMore := Recognize(buf, false)
	if !needMore {
		t.Fatalf("Recognize should have requested more input")
	}
	n, fam, needMore := Recognize(buf, true)
	if needMore {
		t.Fatalf("Recognize should not need more input at eof")
	}
	if fam != FamilyCSI || n != 2 {
		t.Errorf("at eof: n=%d fam=%v, want n=2 fam=CSI", n, fam)
	}
}

func TestRecognizeNoESCPrefix(t *testing.T) {
	buf := []rune{'a', 'b'}
	n, fam, needMore := Recognize(buf, false)
	if needMore || n != 0 || fam != FamilyNone {
		t.Errorf("Recognize(no esc) = (%d, %v, %v), want (0, FamilyNone, false)", n, fam, needMore)
	}
}

func TestRecognizeOSCInterruptedByESC(t *testing.T) {
	buf := []rune{runeESC, ']', 'a', 'b', runeESC, 'c'}
	n, fam, needMore := Recognize(buf, false)
	if needMore {
		t.Fatalf("Recognize needed more input")
	}
	if fam != FamilyOSC {
		t.Errorf("family = %v, want OSC", fam)
	}
	if n != 4 {
		t.Errorf("n = %d, want 4 (excludes the interrupting ESC)", n)
	}
}
