// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algebra

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"testing"
)

var encodingTests = []string{
	"0",
	"1",
	"-1",
	"4294967295",
	"-4294967296",
	"18446744073709551617",
	"-123456789012345678901234567890",
}

func TestIntGobEncoding(t *testing.T) {
	var medium bytes.Buffer
	enc := gob.NewEncoder(&medium)
	dec := gob.NewDecoder(&medium)
	for _, test := range encodingTests {
		medium.Reset() // empty buffer for each test case (in case of failures)
		x := MustParseInt(test)
		if err := enc.Encode(x); err != nil {
			t.Errorf("encoding of %s failed: %s", test, err)
			continue
		}
		var y Int
		if err := dec.Decode(&y); err != nil {
			t.Errorf("decoding of %s failed: %s", test, err)
			continue
		}
		if y.Cmp(x) != 0 {
			t.Errorf("transmission of %s failed: got %s want %s", test, &y, x)
		}
	}
}

// Sending a nil Int pointer (inside a slice) on a round trip through gob
// should yield a zero.
func TestGobEncodingNilIntInSlice(t *testing.T) {
	buf := new(bytes.Buffer)
	enc := gob.NewEncoder(buf)
	dec := gob.NewDecoder(buf)

	var in = make([]*Int, 1)
	err := enc.Encode(&in)
	if err != nil {
		t.Errorf("gob encode failed: %q", err)
	}
	var out []*Int
	err = dec.Decode(&out)
	if err != nil {
		t.Fatalf("gob decode failed: %q", err)
	}
	if len(out) != 1 {
		t.Fatalf("wrong len; want 1 got %d", len(out))
	}
	if out[0] == nil || !out[0].IsZero() {
		t.Errorf("transmission of (*Int)(nil) failed: got %v want 0", out[0])
	}
}

func TestIntGobDecodeVersion(t *testing.T) {
	var x Int
	if err := x.GobDecode([]byte{0x7f << 1, 1}); err == nil {
		t.Error("GobDecode accepted an unknown version")
	}
}

func TestFractionGobEncoding(t *testing.T) {
	var medium bytes.Buffer
	enc := gob.NewEncoder(&medium)
	dec := gob.NewDecoder(&medium)
	for _, num := range encodingTests {
		for _, den := range []string{"1", "7", "-4294967297"} {
			medium.Reset()
			x := NewFraction(MustParseInt(num), MustParseInt(den))
			if err := enc.Encode(x); err != nil {
				t.Errorf("encoding of %s failed: %s", x, err)
				continue
			}
			var y Fraction
			if err := dec.Decode(&y); err != nil {
				t.Errorf("decoding of %s failed: %s", x, err)
				continue
			}
			if y.String() != x.String() {
				t.Errorf("transmission of %s failed: got %s", x, &y)
			}
		}
	}
}

func TestFractionGobDecodeErrors(t *testing.T) {
	var f Fraction
	for _, buf := range [][]byte{
		{0, 0},
		{0, 0, 0, 9, 2},
		{0, 0, 0, 1, 2, 0, 0, 0, 1, 2}, // zero denominator
	} {
		if err := f.GobDecode(buf); err == nil {
			t.Errorf("GobDecode(%v) did not fail", buf)
		}
	}
}

func TestIntJSONEncoding(t *testing.T) {
	for _, test := range encodingTests {
		x := MustParseInt(test)
		b, err := json.Marshal(x)
		if err != nil {
			t.Errorf("marshaling of %s failed: %s", x, err)
			continue
		}
		if want := `"` + test + `"`; string(b) != want {
			t.Errorf("json.Marshal(%s) = %s; want %s", x, b, want)
		}
		var y Int
		if err := json.Unmarshal(b, &y); err != nil {
			t.Errorf("unmarshaling of %s failed: %s", x, err)
			continue
		}
		if y.Cmp(x) != 0 {
			t.Errorf("JSON encoding of %s failed: got %s", x, &y)
		}
	}
}

func TestFractionTextEncoding(t *testing.T) {
	x := MustParseFraction("-10/4")
	b, err := x.MarshalText()
	if err != nil || string(b) != "-5/2" {
		t.Fatalf("MarshalText = %s, %v", b, err)
	}
	var y Fraction
	if err := y.UnmarshalText([]byte("6/-9")); err != nil || y.String() != "-2/3" {
		t.Fatalf("UnmarshalText = %s, %v", &y, err)
	}
	if err := y.UnmarshalText([]byte("1/0")); err == nil {
		t.Fatal("UnmarshalText(1/0) did not fail")
	}
}

func TestIntEncodingNil(t *testing.T) {
	var x *Int
	b, err := x.MarshalText()
	if err != nil || string(b) != "<nil>" {
		t.Fatalf("MarshalText(nil) = %s, %v", b, err)
	}
	b, err = x.GobEncode()
	if err != nil || b != nil {
		t.Fatalf("GobEncode(nil) = %v, %v", b, err)
	}
	var z Int
	if err := z.UnmarshalText([]byte("12x")); err == nil {
		t.Fatal("UnmarshalText(12x) did not fail")
	}
}
