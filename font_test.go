package linden

import (
	"testing"

	"golang.org/x/image/font/gofont/gobold"
)

func TestFontLibraryDefaultFace(t *testing.T) {
	var lib FontLibrary // zero value serves the default face

	face, err := lib.Face("", 16)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if face.Size() != 16 {
		t.Errorf("Size() = %d, want 16", face.Size())
	}

	w, h := face.Measure("Quit")
	if w <= 0 || h <= 0 {
		t.Errorf("Measure(Quit) = (%v, %v), want positive", w, h)
	}
}

func TestFontLibraryUnknownFamilyFallsBack(t *testing.T) {
	lib := NewFontLibrary()

	face, err := lib.Face("no-such-family", 16)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}

	def, err := lib.Face("", 16)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}

	w1, _ := face.Measure("fallback")
	w2, _ := def.Measure("fallback")
	if w1 != w2 {
		t.Errorf("unknown family measures differently from default: %v vs %v", w1, w2)
	}
}

func TestFontLibraryRegister(t *testing.T) {
	lib := NewFontLibrary()

	if err := lib.Register("bold", gobold.TTF); err != nil {
		t.Fatalf("Register: %v", err)
	}
	face, err := lib.Face("bold", 20)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if w, h := face.Measure("Reset"); w <= 0 || h <= 0 {
		t.Errorf("Measure(Reset) = (%v, %v), want positive", w, h)
	}
}

func TestFontLibraryRegisterRejectsGarbage(t *testing.T) {
	lib := NewFontLibrary()
	if err := lib.Register("bad", []byte("definitely not a font")); err == nil {
		t.Error("Register accepted garbage data")
	}
}

func TestFaceNonPositiveSizeIsInert(t *testing.T) {
	var lib FontLibrary

	face, err := lib.Face("", -3)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if w, h := face.Measure("tiny"); w != 0 || h != 0 {
		t.Errorf("Measure with size -3 = (%v, %v), want (0, 0)", w, h)
	}
}

func TestFaceMeasureEmptyString(t *testing.T) {
	var lib FontLibrary

	face, err := lib.Face("", 14)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if w, h := face.Measure(""); w != 0 || h != 0 {
		t.Errorf("Measure(\"\") = (%v, %v), want (0, 0)", w, h)
	}
}
