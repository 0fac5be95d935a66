package bmssp

import "testing"

func TestDeriveParams_Zero(t *testing.T) {
	p := DeriveParams(0)
	if p.T != 0 || p.K != 0 || p.L != 0 {
		t.Errorf("DeriveParams(0) = %+v, want zero value", p)
	}
}

func TestDeriveParams_SmallGraphFixed(t *testing.T) {
	for n := 1; n <= 4; n++ {
		p := DeriveParams(n)
		if p.T != 2 || p.K != 2 || p.L != 1 {
			t.Errorf("DeriveParams(%d) = %+v, want {T:2 K:2 L:1}", n, p)
		}
	}
}

func TestDeriveParams_MinimumsHold(t *testing.T) {
	for _, n := range []int{5, 10, 100, 10000} {
		p := DeriveParams(n)
		if p.T < 2 {
			t.Errorf("DeriveParams(%d).T = %d, want >= 2", n, p.T)
		}
		if p.K < 2 {
			t.Errorf("DeriveParams(%d).K = %d, want >= 2", n, p.K)
		}
		if p.L < 1 {
			t.Errorf("DeriveParams(%d).L = %d, want >= 1", n, p.L)
		}
	}
}

func TestDeriveParams_ClampedToN(t *testing.T) {
	p := DeriveParams(5)
	if p.T > 5 || p.K > 5 {
		t.Errorf("DeriveParams(5) = %+v, want T,K <= 5", p)
	}
}

func TestDeriveParams_GrowsWithN(t *testing.T) {
	small := DeriveParams(10)
	large := DeriveParams(100000)
	if large.T <= small.T {
		t.Errorf("expected T to grow with n: DeriveParams(10).T=%d, DeriveParams(100000).T=%d", small.T, large.T)
	}
}
