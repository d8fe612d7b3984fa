// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paramkit

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"
)

func strPtr(s string) *string {
	return &s
}

func TestIntParamDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"0", 0},
		{"3", 3},
		{"42", 42},
		{"18446744073709551614", 18446744073709551614},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p := NewIntParam("n", false, false)
			if err := p.Parse(strPtr(tt.in)); err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if p.Value != tt.want {
				t.Errorf("Value = %d, want %d", p.Value, tt.want)
			}
			if got := p.ValueString(); got != tt.in {
				t.Errorf("ValueString() = %q, want %q", got, tt.in)
			}
			if !p.IsSet() {
				t.Errorf("IsSet() = false, want true")
			}
		})
	}
}

func TestIntParamHex(t *testing.T) {
	tests := []struct {
		in      string
		want    uint64
		wantStr string
	}{
		{"1f", 0x1f, "1f"},
		{"1F", 0x1f, "1f"},
		{"0x1F", 0x1f, "1f"},
		{"0XdeadBEEF", 0xdeadbeef, "deadbeef"},
		{"0", 0, "0"},
		{"ffffffff", 0xffffffff, "ffffffff"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p := NewIntParam("addr", false, true)
			if err := p.Parse(strPtr(tt.in)); err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if p.Value != tt.want {
				t.Errorf("Value = %#x, want %#x", p.Value, tt.want)
			}
			if got := p.ValueString(); got != tt.wantStr {
				t.Errorf("ValueString() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestIntParamRoundTrip(t *testing.T) {
	for _, v := range []uint64{1, 7, 255, 4096, 1 << 40, 123456789} {
		dec := NewIntParam("d", false, false)
		if err := dec.Parse(strPtr(strconv.FormatUint(v, 10))); err != nil {
			t.Fatalf("dec Parse(%d): %v", v, err)
		}
		if dec.Value != v || dec.ValueString() != strconv.FormatUint(v, 10) {
			t.Errorf("dec round trip %d: Value=%d str=%q", v, dec.Value, dec.ValueString())
		}

		hex := NewIntParam("h", false, true)
		if err := hex.Parse(strPtr("0x" + strconv.FormatUint(v, 16))); err != nil {
			t.Fatalf("hex Parse(%#x): %v", v, err)
		}
		if hex.Value != v || hex.ValueString() != strconv.FormatUint(v, 16) {
			t.Errorf("hex round trip %#x: Value=%#x str=%q", v, hex.Value, hex.ValueString())
		}
	}
}

// intForms returns the accepted spellings of v for the given radix.
func intForms(v uint64, hex bool) []string {
	if !hex {
		s := strconv.FormatUint(v, 10)
		return []string{s, "00" + s}
	}
	s := strconv.FormatUint(v, 16)
	return []string{s, strings.ToUpper(s), "0x" + s, "0X" + strings.ToUpper(s), "0x000" + s}
}

func checkIntRoundTrip(t *testing.T, v uint64, hex bool) {
	t.Helper()
	want := strconv.FormatUint(v, 10)
	if hex {
		want = strconv.FormatUint(v, 16)
	}
	for _, in := range intForms(v, hex) {
		p := NewIntParam("n", false, hex)
		if err := p.Parse(strPtr(in)); err != nil {
			t.Fatalf("Parse(%q) error: %v", in, err)
		}
		if p.Value != v {
			t.Errorf("Parse(%q) Value = %d, want %d", in, p.Value, v)
		}
		if got := p.ValueString(); got != want {
			t.Errorf("Parse(%q) ValueString() = %q, want %q", in, got, want)
		}
	}
}

func TestIntParamLeadingZeros(t *testing.T) {
	tests := []struct {
		in      string
		hex     bool
		want    uint64
		wantStr string
	}{
		{"007", false, 7, "7"},
		{"000", false, 0, "0"},
		{"0x000f", true, 0xf, "f"},
		{"000F", true, 0xf, "f"},
		{"0X00aB", true, 0xab, "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p := NewIntParam("n", false, tt.hex)
			if err := p.Parse(strPtr(tt.in)); err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if p.Value != tt.want || p.ValueString() != tt.wantStr {
				t.Errorf("Parse(%q) = %d (%q), want %d (%q)", tt.in, p.Value, p.ValueString(), tt.want, tt.wantStr)
			}
		})
	}
}

func TestIntParamRandomRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 500 {
		// Spread values over every bit length.
		v := r.Uint64() >> r.UintN(64)
		checkIntRoundTrip(t, v, false)
		checkIntRoundTrip(t, v, true)
	}
	for _, v := range []uint64{0, 1, 9, 10, 15, 16, Unset - 1, Unset} {
		checkIntRoundTrip(t, v, false)
		checkIntRoundTrip(t, v, true)
	}
}

func FuzzIntParam(f *testing.F) {
	for _, v := range []uint64{0, 1, 0xff, 1 << 40, Unset} {
		f.Add(v, false)
		f.Add(v, true)
	}
	f.Fuzz(func(t *testing.T, v uint64, hex bool) {
		checkIntRoundTrip(t, v, hex)
	})
}

func TestIntParamMalformed(t *testing.T) {
	tests := []struct {
		name string
		hex  bool
		in   string
		want uint64
	}{
		{"no digits", false, "abc", 0},
		{"trailing garbage", false, "12abc", 12},
		{"sign not accepted", false, "-5", 0},
		{"hex no digits", true, "zz", 0},
		{"hex trailing", true, "0x1fg", 0x1f},
		{"overflow saturates", false, "99999999999999999999", Unset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewIntParam("n", false, tt.hex)
			err := p.Parse(strPtr(tt.in))
			var ve *ValueError
			if !errors.As(err, &ve) {
				t.Fatalf("Parse(%q) error = %v, want *ValueError", tt.in, err)
			}
			if ve.Param != "n" || ve.Value != tt.in {
				t.Errorf("ValueError = %+v", ve)
			}
			if p.Value != tt.want {
				t.Errorf("Value = %d, want %d", p.Value, tt.want)
			}
		})
	}
}

func TestIntParamNilArg(t *testing.T) {
	p := NewIntParam("n", true, false)
	if err := p.Parse(nil); !errors.Is(err, ErrMissingValue) {
		t.Fatalf("Parse(nil) = %v, want ErrMissingValue", err)
	}
	if p.IsSet() {
		t.Errorf("IsSet() = true after Parse(nil)")
	}
	if p.Value != Unset {
		t.Errorf("Value = %d, want Unset", p.Value)
	}
}

func TestIntParamType(t *testing.T) {
	if got := NewIntParam("a", false, true).Type(); got != "integer: hex" {
		t.Errorf("hex Type() = %q", got)
	}
	if got := NewIntParam("a", false, false).Type(); got != "integer: dec" {
		t.Errorf("dec Type() = %q", got)
	}
	if !NewIntParam("a", false, false).TakesValue() {
		t.Errorf("IntParam.TakesValue() = false")
	}
}

func TestStringParam(t *testing.T) {
	p := NewStringParam("name", false)
	if p.IsSet() {
		t.Fatalf("new StringParam is set")
	}
	if err := p.Parse(nil); !errors.Is(err, ErrMissingValue) {
		t.Fatalf("Parse(nil) = %v, want ErrMissingValue", err)
	}
	for _, in := range []string{"hello", "with space", "-looks-like-a-switch", `q"uote`} {
		if err := p.Parse(strPtr(in)); err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if p.Value != in {
			t.Errorf("Value = %q, want %q", p.Value, in)
		}
		if got, want := p.ValueString(), `"`+in+`"`; got != want {
			t.Errorf("ValueString() = %q, want %q", got, want)
		}
		if !p.IsSet() {
			t.Errorf("IsSet() = false after Parse(%q)", in)
		}
	}
	if err := p.Parse(strPtr("")); err != nil {
		t.Fatalf("Parse(\"\"): %v", err)
	}
	if p.IsSet() {
		t.Errorf("IsSet() = true for empty value")
	}
	if p.Type() != "string" {
		t.Errorf("Type() = %q", p.Type())
	}
}

func TestStringParamCopyTo(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		bufLen  int
		wantN   int
		wantBuf string
	}{
		{"fits", "abc", 8, 4, "abc\x00"},
		{"exact with terminator", "abc", 4, 4, "abc\x00"},
		{"one short", "abcd", 4, 4, "abc\x00"},
		{"truncated", "abcdefgh", 3, 3, "ab\x00"},
		{"single byte", "abc", 1, 1, "\x00"},
		{"empty value", "", 4, 1, "\x00"},
		{"empty buffer", "abc", 0, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewStringParam("s", false)
			p.Value = tt.value
			// Guard bytes past the declared capacity must stay untouched.
			backing := make([]byte, tt.bufLen+4)
			for i := range backing {
				backing[i] = 0xAA
			}
			buf := backing[:tt.bufLen:tt.bufLen]
			n := p.CopyTo(buf)
			if n != tt.wantN {
				t.Errorf("CopyTo() = %d, want %d", n, tt.wantN)
			}
			if got := string(buf[:n]); got != tt.wantBuf {
				t.Errorf("buf = %q, want %q", got, tt.wantBuf)
			}
			for i := tt.bufLen; i < len(backing); i++ {
				if backing[i] != 0xAA {
					t.Fatalf("byte %d past capacity overwritten: %#x", i, backing[i])
				}
			}
		})
	}
}

func TestBoolParam(t *testing.T) {
	tests := []struct {
		name    string
		arg     *string
		want    bool
		wantErr bool
	}{
		{"bare flag", nil, true, false},
		{"zero", strPtr("0"), false, false},
		{"one", strPtr("1"), true, false},
		{"five", strPtr("5"), true, false},
		{"negative", strPtr("-1"), true, false},
		{"malformed", strPtr("yes"), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewBoolParam("verbose", false)
			err := p.Parse(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if p.Value != tt.want {
				t.Errorf("Value = %v, want %v", p.Value, tt.want)
			}
			if p.IsSet() != tt.want {
				t.Errorf("IsSet() = %v, want %v", p.IsSet(), tt.want)
			}
			wantStr := "false"
			if tt.want {
				wantStr = "true"
			}
			if p.ValueString() != wantStr {
				t.Errorf("ValueString() = %q, want %q", p.ValueString(), wantStr)
			}
		})
	}
	if NewBoolParam("b", false).TakesValue() {
		t.Errorf("BoolParam.TakesValue() = true")
	}
	if got := NewBoolParam("b", false).Type(); got != "bool" {
		t.Errorf("Type() = %q", got)
	}
}
